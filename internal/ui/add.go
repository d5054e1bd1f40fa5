package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rotacli/rota/internal/dateutil"
	"github.com/rotacli/rota/internal/shift"
)

func (a *App) addCmd() *cobra.Command {
	var (
		date   string
		start  string
		end    string
		staff  int64
		repeat string
		until  string
		days   string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new shift",
		Long: `Add a new shift to the rota.

Example:
  rota add "Morning till" --date=2026-09-01 --start=09:00 --end=17:00 --staff=3
  rota add "Night cover" --start=22:00 --end=23:00 --staff=2 --repeat=WEEKLY --until=2026-12-31`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}

			s, err := shift.New(args[0], date, start, end, []int64{staff})
			if err != nil {
				return err
			}

			if repeat != "" {
				endDate, err := dateutil.ParseDate(until)
				if err != nil {
					return fmt.Errorf("--until: %w", err)
				}
				s.IsRecurring = true
				s.Frequency = shift.Frequency(strings.ToUpper(repeat))
				s.RecurrenceEndDate = endDate
				s.DaysOfWeek, err = parseDays(days)
				if err != nil {
					return err
				}
			}

			ctx := context.Background()
			week, err := store.ListWeek(ctx, s.Date)
			if err != nil {
				return fmt.Errorf("loading week: %w", err)
			}

			orch := a.orchestrator()
			res := orch.Save(ctx, s, week.Shifts, orch.NextSeq())
			if res.Failed() {
				return fmt.Errorf("saving shift: %w", res.Err)
			}

			if res.CreatedCount > 1 {
				fmt.Printf("Created %d shifts: %s %s-%s (%s until %s)\n",
					res.CreatedCount, s.Title, s.Start, s.End,
					strings.ToLower(string(s.Frequency)), dateutil.ToISODate(s.RecurrenceEndDate))
			} else {
				fmt.Printf("Created shift: %s %s %s-%s\n",
					s.Title, dateutil.ToISODate(s.Date), s.Start, s.End)
			}
			for _, c := range res.Conflicts {
				fmt.Println(formatWarn(fmt.Sprintf("warning: staff %d already works %s-%s (%s)",
					c.StaffID, c.B.Start, c.B.End, c.B.Title)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Shift date (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM, required)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM, required)")
	cmd.Flags().Int64Var(&staff, "staff", 0, "Staff id (required, see `rota staff`)")
	cmd.Flags().StringVar(&repeat, "repeat", "", "Recurrence: DAILY, WEEKLY, MONTHLY or CUSTOM")
	cmd.Flags().StringVar(&until, "until", "", "Last date of the recurrence (YYYY-MM-DD)")
	cmd.Flags().StringVar(&days, "days", "", "Weekdays for CUSTOM recurrence (0=Mon..6=Sun, comma-separated)")

	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	_ = cmd.MarkFlagRequired("staff")

	return cmd
}

// parseDays parses a comma-separated weekday list, 0=Monday.
func parseDays(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	days := make([]int, 0, len(parts))
	for _, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || d < 0 || d > 6 {
			return nil, fmt.Errorf("invalid weekday %q (want 0-6)", p)
		}
		days = append(days, d)
	}
	return days, nil
}
