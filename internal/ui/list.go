package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rotacli/rota/internal/dateutil"
	"github.com/rotacli/rota/internal/shift"
)

func (a *App) listCmd() *cobra.Command {
	var (
		startDate string
		endDate   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List shifts in a date range",
		Long: `List all shifts scheduled within a date range.

If no dates are specified, lists today's shifts.
If only --start is specified, lists shifts for that single day.
If both --start and --end are specified, lists shifts in that range (inclusive).`,
		Example: `  rota list
  rota list --start=2026-09-01
  rota list --start=2026-09-01 --end=2026-09-07`,
		RunE: func(_ *cobra.Command, _ []string) error {
			dateRange, err := dateutil.NewDateRange(startDate, endDate)
			if err != nil {
				return err
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}

			ctx := context.Background()
			shifts, err := store.ListRange(ctx, dateRange.Start, dateRange.End)
			if err != nil {
				return fmt.Errorf("listing shifts: %w", err)
			}

			if len(shifts) == 0 {
				fmt.Println("No shifts found in the specified date range.")
				return nil
			}

			staff, err := store.ListStaff(ctx)
			if err != nil {
				return fmt.Errorf("loading staff: %w", err)
			}
			names := staffNames(staff)

			// Print shifts grouped by date
			var currentDate string
			for _, s := range shifts {
				date := dateutil.ToISODate(s.Date)
				if date != currentDate {
					if currentDate != "" {
						fmt.Println()
					}
					fmt.Println(formatHeader(fmt.Sprintf("=== %s (%s) ===", date, dateutil.WeekdayName(s.DayIndex()))))
					currentDate = date
				}

				marker := " "
				if s.RecurrenceGroupID != "" {
					marker = "↻"
				}
				line := fmt.Sprintf("  #%d %s %s-%s %s", s.ID, marker, s.Start, s.End, s.Title)
				fmt.Print(formatShift(line))
				fmt.Println(formatMuted("  " + assigneeList(s, names)))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&endDate, "end", "", "End date (YYYY-MM-DD, defaults to start date)")

	return cmd
}

func staffNames(staff []*shift.StaffMember) map[int64]string {
	names := make(map[int64]string, len(staff))
	for _, m := range staff {
		names[m.ID] = m.Name
	}
	return names
}

// assigneeList renders a shift's staff as a comma-separated name list.
func assigneeList(s *shift.Shift, names map[int64]string) string {
	if len(s.StaffIDs) == 0 {
		return "(unassigned)"
	}
	out := ""
	for i, id := range s.StaffIDs {
		if i > 0 {
			out += ", "
		}
		if name, ok := names[id]; ok {
			out += name
		} else {
			out += fmt.Sprintf("staff %d", id)
		}
	}
	return out
}
