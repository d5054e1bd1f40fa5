package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rotacli/rota/internal/dateutil"
	"github.com/rotacli/rota/internal/shift"
)

func (a *App) weekCmd() *cobra.Command {
	var (
		date      string
		publish   bool
		unpublish bool
	)

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show or publish a week's rota",
		Long: `Show the rota for the week containing a date, with per-staff totals.

With --publish or --unpublish, flips the week's published flag instead.`,
		Example: `  rota week
  rota week --date=2026-09-01
  rota week --date=2026-09-01 --publish`,
		RunE: func(_ *cobra.Command, _ []string) error {
			day, err := dateutil.ParseDate(date)
			if err != nil {
				return err
			}
			weekStart := dateutil.WeekStart(day)

			store, err := a.openStore()
			if err != nil {
				return err
			}
			ctx := context.Background()

			if publish || unpublish {
				if publish && unpublish {
					return fmt.Errorf("--publish and --unpublish are mutually exclusive")
				}
				if err := store.SetPublished(ctx, weekStart, publish); err != nil {
					return fmt.Errorf("updating week: %w", err)
				}
				state := "published"
				if unpublish {
					state = "unpublished"
				}
				fmt.Printf("Week of %s %s\n", dateutil.ToISODate(weekStart), state)
				return nil
			}

			week, err := store.ListWeek(ctx, weekStart)
			if err != nil {
				return fmt.Errorf("loading week: %w", err)
			}
			staff, err := store.ListStaff(ctx)
			if err != nil {
				return fmt.Errorf("loading staff: %w", err)
			}

			printWeek(week, staff)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Any date inside the week (YYYY-MM-DD, default: today)")
	cmd.Flags().BoolVar(&publish, "publish", false, "Mark the week as published")
	cmd.Flags().BoolVar(&unpublish, "unpublish", false, "Mark the week as draft")

	return cmd
}

// printWeek renders a week summary with a per-staff hour matrix.
func printWeek(week *shift.WeekSchedule, staff []*shift.StaffMember) {
	state := formatWarn("draft")
	if week.Published {
		state = formatStats("published")
	}
	fmt.Printf("%s  %s\n\n",
		formatHeader(fmt.Sprintf("Week %s – %s", dateutil.ToISODate(week.WeekStart), dateutil.ToISODate(week.WeekEnd))),
		state)

	if len(week.Shifts) == 0 {
		fmt.Println("No shifts scheduled.")
		return
	}

	names := staffNames(staff)
	for day := 0; day < 7; day++ {
		date := week.DayDate(day)
		dayShifts := week.ShiftsOn(date)
		if len(dayShifts) == 0 {
			continue
		}
		fmt.Println(formatHeader(fmt.Sprintf("%s %s", dateutil.WeekdayShortName(day), dateutil.ToISODate(date))))
		for _, s := range dayShifts {
			line := fmt.Sprintf("  %s-%s %-24s", s.Start, s.End, truncate(s.Title, 24))
			fmt.Print(formatShift(line))
			fmt.Println(formatMuted(assigneeList(s, names)))
		}
	}

	views := shift.BuildViews(week.Shifts, week.WeekStart, week.WeekEnd, shift.DefaultHourHeight)
	fmt.Println()
	fmt.Println(formatHeader("Hours"))
	for _, m := range staff {
		total := 0
		for day := 0; day < 7; day++ {
			total += views.StaffMinutesOn(m.ID, dateutil.ToISODate(week.DayDate(day)))
		}
		if total == 0 {
			continue
		}
		fmt.Printf("  %-21s %s\n", truncate(m.Name, 21), formatStats(formatMinutes(total)))
	}
	fmt.Printf("\n%s %s\n", formatMuted("Total scheduled:"), formatStats(formatMinutes(week.TotalMinutes())))
}

// formatMinutes renders minutes as "Xh" or "XhYYm".
func formatMinutes(mins int) string {
	if mins%60 == 0 {
		return fmt.Sprintf("%dh", mins/60)
	}
	return fmt.Sprintf("%dh%02dm", mins/60, mins%60)
}

// truncate shortens a string, padding-safe for narrow terminals.
func truncate(s string, max int) string {
	if w := termWidth(); max > w {
		max = w
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + strings.Repeat(".", 3)
}
