package shift

import (
	"errors"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/rotacli/rota/internal/dateutil"
)

// Recurrence errors.
var (
	ErrCustomNeedsWeekdays = errors.New("custom frequency requires at least one weekday")
	ErrEmptyRecurrence     = errors.New("recurrence rule produced no dates")
)

// maxOccurrences caps a single series expansion so a malformed range
// cannot flood the store.
const maxOccurrences = 1000

// Rule describes how a shift template repeats across a date range.
// DaysOfWeek (Monday-based indices) is only consulted for FrequencyCustom.
type Rule struct {
	Frequency  Frequency
	StartDate  time.Time
	EndDate    time.Time // inclusive
	DaysOfWeek []int
}

// Validate checks the rule is expandable.
func (r Rule) Validate() error {
	if !r.Frequency.Valid() {
		return ErrInvalidFrequency
	}
	if r.EndDate.Before(r.StartDate) {
		return dateutil.ErrEndDateBeforeStart
	}
	if r.Frequency == FrequencyCustom && len(r.DaysOfWeek) == 0 {
		return ErrCustomNeedsWeekdays
	}
	return nil
}

// rruleWeekdays maps Monday-based weekday indices to rrule weekdays.
var rruleWeekdays = []rrule.Weekday{
	rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA, rrule.SU,
}

// ExpandRule expands a recurrence rule into the concrete dates a series
// materializes on, all truncated to midnight local.
//
// Natural cadences: DAILY covers every date in range; WEEKLY repeats on
// StartDate's weekday; MONTHLY repeats on StartDate's day-of-month
// (months lacking that day are skipped, not clamped); CUSTOM repeats
// weekly on each listed weekday.
func ExpandRule(r Rule) ([]time.Time, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	start := dateutil.TruncateToDay(r.StartDate)
	until := dateutil.TruncateToDay(r.EndDate)

	opt := rrule.ROption{
		Dtstart: start,
		Until:   until,
		Count:   maxOccurrences,
	}

	switch r.Frequency {
	case FrequencyDaily:
		opt.Freq = rrule.DAILY
	case FrequencyWeekly:
		opt.Freq = rrule.WEEKLY
	case FrequencyMonthly:
		opt.Freq = rrule.MONTHLY
	case FrequencyCustom:
		opt.Freq = rrule.WEEKLY
		for _, day := range r.DaysOfWeek {
			if day < 0 || day > 6 {
				return nil, fmt.Errorf("weekday index %d out of range", day)
			}
			opt.Byweekday = append(opt.Byweekday, rruleWeekdays[day])
		}
	}

	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, fmt.Errorf("building recurrence rule: %w", err)
	}

	dates := rule.All()
	if len(dates) == 0 {
		return nil, ErrEmptyRecurrence
	}

	out := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		out = append(out, dateutil.TruncateToDay(d))
	}
	return out, nil
}

// Materialize instantiates the template shift on every date the rule
// expands to, stamping each instance with the shared recurrence group id.
// The instances carry no persisted ids; the store assigns those.
func Materialize(template *Shift, r Rule, groupID string) ([]*Shift, error) {
	dates, err := ExpandRule(r)
	if err != nil {
		return nil, err
	}

	instances := make([]*Shift, 0, len(dates))
	for _, d := range dates {
		inst := template.Clone()
		inst.ID = 0
		inst.Date = d
		inst.IsRecurring = true
		inst.RecurrenceGroupID = groupID
		inst.RecurrenceEndDate = dateutil.TruncateToDay(r.EndDate)
		inst.Frequency = r.Frequency
		inst.DaysOfWeek = append([]int(nil), r.DaysOfWeek...)
		instances = append(instances, inst)
	}
	return instances, nil
}
