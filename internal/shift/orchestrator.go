package shift

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/rotacli/rota/internal/dateutil"
)

// SaveKind classifies a pending save. Exactly one kind applies per save.
type SaveKind int

const (
	// SaveSingleCreate persists a brand new non-recurring shift.
	SaveSingleCreate SaveKind = iota
	// SaveSingleUpdate edits an existing non-recurring shift in place.
	SaveSingleUpdate
	// SaveRecurringCreate materializes a new series from a transient shift.
	SaveRecurringCreate
	// SaveRecurringReplace replaces every member of an existing series.
	SaveRecurringReplace
	// SaveSingleToRecurringConvert deletes a persisted single shift and
	// materializes a series in its place.
	SaveSingleToRecurringConvert
)

// String names the kind for user-facing error reports.
func (k SaveKind) String() string {
	switch k {
	case SaveSingleCreate:
		return "create shift"
	case SaveSingleUpdate:
		return "update shift"
	case SaveRecurringCreate:
		return "create recurring series"
	case SaveRecurringReplace:
		return "replace recurring series"
	case SaveSingleToRecurringConvert:
		return "convert shift to series"
	default:
		return "save shift"
	}
}

// SaveOutcome is the tagged result state of a save.
type SaveOutcome int

const (
	// OutcomeSucceeded means every operation in the sequence completed.
	OutcomeSucceeded SaveOutcome = iota
	// OutcomePartiallyFailed means a delete succeeded but the follow-up
	// create failed, leaving the series empty. This inherent race in the
	// two-step replace must be reported, never hidden.
	OutcomePartiallyFailed
	// OutcomeFailed means the save failed before any destructive step.
	OutcomeFailed
)

// SaveResult reports what a save did. Seq orders saves so a stale
// resolution arriving after a newer save can be discarded.
type SaveResult struct {
	Kind    SaveKind
	Outcome SaveOutcome
	Seq     uint64
	Err     error

	// CreatedCount is the number of series instances written on the
	// recurring paths, 1 on the single paths.
	CreatedCount int

	// DeletedGroupID is set on OutcomePartiallyFailed: the series that was
	// removed and could not be recreated.
	DeletedGroupID string

	// Conflicts lists advisory same-staff double-bookings detected against
	// the existing collection. They never block the save.
	Conflicts []Conflict
}

// Failed returns true unless the save fully succeeded.
func (r SaveResult) Failed() bool {
	return r.Outcome != OutcomeSucceeded
}

// Classify decides which save path a shift takes: transient vs persisted
// id picks create vs update, and populated recurrence fields pick the
// recurring paths. Recurrence counts as populated when IsRecurring is set,
// an end date is present, and a CUSTOM frequency carries weekdays.
func Classify(s *Shift) SaveKind {
	recurring := s.IsRecurring &&
		!s.RecurrenceEndDate.IsZero() &&
		(s.Frequency != FrequencyCustom || len(s.DaysOfWeek) > 0)

	switch {
	case !recurring && !s.IsSaved():
		return SaveSingleCreate
	case !recurring:
		return SaveSingleUpdate
	case !s.IsSaved():
		return SaveRecurringCreate
	case s.RecurrenceGroupID != "":
		return SaveRecurringReplace
	default:
		return SaveSingleToRecurringConvert
	}
}

// Orchestrator routes classified saves to the store, sequencing the
// delete-then-create paths strictly so old and new series members never
// coexist. It holds no in-progress edit state; each save carries its own
// shift.
type Orchestrator struct {
	store Store
	seq   atomic.Uint64
}

// NewOrchestrator creates an Orchestrator backed by the given store.
func NewOrchestrator(store Store) *Orchestrator {
	return &Orchestrator{store: store}
}

// NextSeq issues the sequence number for a save about to start. The
// caller keeps the latest issued value and drops results with older Seq.
func (o *Orchestrator) NextSeq() uint64 {
	return o.seq.Add(1)
}

// Save validates, classifies, and executes one save. existing is the
// current same-day collection used for advisory conflict detection; it is
// never mutated. On failure the store is unchanged except for the
// documented partial-failure window on the replace paths.
func (o *Orchestrator) Save(ctx context.Context, s *Shift, existing []*Shift, seq uint64) SaveResult {
	kind := Classify(s)
	result := SaveResult{Kind: kind, Seq: seq}

	if s.Title == "" {
		s.Title = DefaultTitle
	}
	if err := s.Validate(); err != nil {
		result.Outcome = OutcomeFailed
		result.Err = err
		return result
	}

	result.Conflicts = ConflictsWith(s, existing)

	switch kind {
	case SaveSingleCreate:
		return o.singleCreate(ctx, s, result)
	case SaveSingleUpdate:
		return o.singleUpdate(ctx, s, result)
	case SaveRecurringCreate:
		return o.recurringCreate(ctx, s, result)
	case SaveRecurringReplace:
		return o.recurringReplace(ctx, s, result)
	case SaveSingleToRecurringConvert:
		return o.convertToRecurring(ctx, s, result)
	default:
		result.Outcome = OutcomeFailed
		result.Err = fmt.Errorf("unknown save kind %d", kind)
		return result
	}
}

func (o *Orchestrator) singleCreate(ctx context.Context, s *Shift, result SaveResult) SaveResult {
	if err := o.store.CreateShift(ctx, s); err != nil {
		return failed(result, err)
	}
	result.CreatedCount = 1
	return result
}

func (o *Orchestrator) singleUpdate(ctx context.Context, s *Shift, result SaveResult) SaveResult {
	if err := o.store.UpdateShift(ctx, s); err != nil {
		return failed(result, err)
	}
	result.CreatedCount = 1
	return result
}

func (o *Orchestrator) recurringCreate(ctx context.Context, s *Shift, result SaveResult) SaveResult {
	count, err := o.store.BatchCreateRecurring(ctx, o.ruleFor(s), s)
	if err != nil {
		return failed(result, err)
	}
	result.CreatedCount = count
	return result
}

// recurringReplace edits a series as one batch-delete followed by one
// batch-create, never per-instance patches, so the whole series stays
// internally consistent. The create is only issued after the delete
// resolves.
func (o *Orchestrator) recurringReplace(ctx context.Context, s *Shift, result SaveResult) SaveResult {
	groupID := s.RecurrenceGroupID
	if err := o.store.BatchDeleteRecurring(ctx, groupID); err != nil {
		return failed(result, err)
	}

	count, err := o.store.BatchCreateRecurring(ctx, o.ruleFor(s), s)
	if err != nil {
		result.Outcome = OutcomePartiallyFailed
		result.DeletedGroupID = groupID
		result.Err = fmt.Errorf("previous version removed, recreation failed: %w", err)
		return result
	}
	result.CreatedCount = count
	return result
}

// convertToRecurring deletes the single shift first, then materializes
// the series. Creating before deleting would risk a transient
// double-booked slot for the same staff and time.
func (o *Orchestrator) convertToRecurring(ctx context.Context, s *Shift, result SaveResult) SaveResult {
	if err := o.store.DeleteShift(ctx, s.ID); err != nil {
		return failed(result, err)
	}

	count, err := o.store.BatchCreateRecurring(ctx, o.ruleFor(s), s)
	if err != nil {
		result.Outcome = OutcomePartiallyFailed
		result.Err = fmt.Errorf("previous version removed, recreation failed: %w", err)
		return result
	}
	result.CreatedCount = count
	return result
}

// DeleteSingle removes one shift by id.
func (o *Orchestrator) DeleteSingle(ctx context.Context, id int64) error {
	if err := o.store.DeleteShift(ctx, id); err != nil {
		return fmt.Errorf("delete shift: %w", err)
	}
	return nil
}

// DeleteSeries removes every member of a recurrence group.
func (o *Orchestrator) DeleteSeries(ctx context.Context, groupID string) error {
	if err := o.store.BatchDeleteRecurring(ctx, groupID); err != nil {
		return fmt.Errorf("delete recurring series: %w", err)
	}
	return nil
}

// ruleFor derives the recurrence rule from the shift's own fields; the
// series starts on the shift's date.
func (o *Orchestrator) ruleFor(s *Shift) Rule {
	return Rule{
		Frequency:  s.Frequency,
		StartDate:  dateutil.TruncateToDay(s.Date),
		EndDate:    dateutil.TruncateToDay(s.RecurrenceEndDate),
		DaysOfWeek: s.DaysOfWeek,
	}
}

func failed(result SaveResult, err error) SaveResult {
	result.Outcome = OutcomeFailed
	result.Err = fmt.Errorf("%s: %w", result.Kind, err)
	return result
}

// NewGroupID mints the shared identifier members of one series carry.
func NewGroupID() string {
	return uuid.NewString()
}
