package shift

import (
	"context"
	"time"
)

// Store defines the external shift store the core drives. Authentication
// and wire details are the implementation's concern; only the shape
// matters here.
type Store interface {
	// ListWeek returns the WeekSchedule for the week starting at weekStart
	// (a Monday), creating an empty one on demand if absent.
	ListWeek(ctx context.Context, weekStart time.Time) (*WeekSchedule, error)

	// CreateShift persists a new single shift and assigns its id.
	CreateShift(ctx context.Context, s *Shift) error

	// UpdateShift replaces a persisted shift's fields by id.
	UpdateShift(ctx context.Context, s *Shift) error

	// DeleteShift removes a single shift by id.
	DeleteShift(ctx context.Context, id int64) error

	// BatchCreateRecurring materializes a series from the rule and template
	// in one atomic operation, assigning all instances a shared recurrence
	// group id. Returns the number of instances created.
	BatchCreateRecurring(ctx context.Context, r Rule, template *Shift) (int, error)

	// BatchDeleteRecurring removes every member of a recurrence group.
	BatchDeleteRecurring(ctx context.Context, groupID string) error

	// SetPublished flips the published flag on a week.
	SetPublished(ctx context.Context, weekStart time.Time, published bool) error

	// Close releases any resources held by the store.
	Close() error
}

// StaffDirectory supplies the staff list, consumed read-only.
type StaffDirectory interface {
	ListStaff(ctx context.Context) ([]*StaffMember, error)
	CreateStaff(ctx context.Context, m *StaffMember) error
}
