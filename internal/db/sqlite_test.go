package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rotacli/rota/internal/dateutil"
	"github.com/rotacli/rota/internal/shift"
)

// newTestStore creates a temporary SQLite store for testing.
func newTestStore(t *testing.T) *SQLite {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

// seedStaff inserts staff members and returns their assigned ids.
func seedStaff(t *testing.T, store *SQLite, names ...string) []int64 {
	t.Helper()

	ids := make([]int64, 0, len(names))
	for _, name := range names {
		m := &shift.StaffMember{Name: name}
		if err := store.CreateStaff(context.Background(), m); err != nil {
			t.Fatalf("CreateStaff(%q) failed: %v", name, err)
		}
		ids = append(ids, m.ID)
	}
	return ids
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := dateutil.ParseDate(s)
	if err != nil {
		t.Fatalf("parsing date %q: %v", s, err)
	}
	return d
}

func TestListWeek_CreatesRowOnDemand(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	monday := mustDate(t, "2026-08-24")

	week, err := store.ListWeek(ctx, monday)
	if err != nil {
		t.Fatalf("ListWeek failed: %v", err)
	}
	if week.ID == 0 {
		t.Error("expected the week row to be created with an id")
	}
	if week.Published {
		t.Error("a fresh week must start as draft")
	}
	if len(week.Shifts) != 0 {
		t.Errorf("expected empty week, got %d shifts", len(week.Shifts))
	}

	// A second load must find the same row, not insert another.
	again, err := store.ListWeek(ctx, monday)
	if err != nil {
		t.Fatalf("ListWeek (second) failed: %v", err)
	}
	if again.ID != week.ID {
		t.Errorf("week id changed between loads: %d then %d", week.ID, again.ID)
	}
}

func TestListWeek_NormalizesToMonday(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// A Thursday maps to its week's Monday.
	week, err := store.ListWeek(ctx, mustDate(t, "2026-08-27"))
	if err != nil {
		t.Fatalf("ListWeek failed: %v", err)
	}
	if got := dateutil.ToISODate(week.WeekStart); got != "2026-08-24" {
		t.Errorf("week start = %s, want 2026-08-24", got)
	}

	fromMonday, err := store.ListWeek(ctx, mustDate(t, "2026-08-24"))
	if err != nil {
		t.Fatalf("ListWeek (monday) failed: %v", err)
	}
	if fromMonday.ID != week.ID {
		t.Errorf("same week resolved to different rows: %d and %d", week.ID, fromMonday.ID)
	}
}

func TestCreateShift_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	staff := seedStaff(t, store, "Ana", "Ben")

	sh, err := shift.New("Morning till", "2026-08-24", "09:00", "17:00", staff)
	if err != nil {
		t.Fatalf("shift.New failed: %v", err)
	}
	sh.Tasks = []shift.TaskStub{{Title: "Open up", Priority: "high"}}

	if err := store.CreateShift(ctx, sh); err != nil {
		t.Fatalf("CreateShift failed: %v", err)
	}
	if sh.ID == 0 {
		t.Fatal("expected ID to be set after insert")
	}

	week, err := store.ListWeek(ctx, sh.Date)
	if err != nil {
		t.Fatalf("ListWeek failed: %v", err)
	}
	if len(week.Shifts) != 1 {
		t.Fatalf("expected 1 shift, got %d", len(week.Shifts))
	}

	got := week.Shifts[0]
	if got.Title != "Morning till" {
		t.Errorf("Title: got %q, want %q", got.Title, "Morning till")
	}
	if got.Start != "09:00" || got.End != "17:00" {
		t.Errorf("times: got %s-%s, want 09:00-17:00", got.Start, got.End)
	}
	if len(got.StaffIDs) != 2 || got.StaffIDs[0] != staff[0] || got.StaffIDs[1] != staff[1] {
		t.Errorf("StaffIDs: got %v, want %v in position order", got.StaffIDs, staff)
	}
	if len(got.Tasks) != 1 || got.Tasks[0].Title != "Open up" {
		t.Errorf("Tasks: got %v", got.Tasks)
	}
}

func TestUpdateShift(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	staff := seedStaff(t, store, "Ana", "Ben")

	sh, err := shift.New("Evening cover", "2026-08-25", "17:00", "22:00", staff[:1])
	if err != nil {
		t.Fatalf("shift.New failed: %v", err)
	}
	if err := store.CreateShift(ctx, sh); err != nil {
		t.Fatalf("CreateShift failed: %v", err)
	}

	sh.Title = "Late cover"
	sh.End = "23:00"
	sh.StaffIDs = []int64{staff[1]}
	if err := store.UpdateShift(ctx, sh); err != nil {
		t.Fatalf("UpdateShift failed: %v", err)
	}

	week, err := store.ListWeek(ctx, sh.Date)
	if err != nil {
		t.Fatalf("ListWeek failed: %v", err)
	}
	got := week.Shifts[0]
	if got.Title != "Late cover" || got.End != "23:00" {
		t.Errorf("got %q %s-%s, want updated fields", got.Title, got.Start, got.End)
	}
	if len(got.StaffIDs) != 1 || got.StaffIDs[0] != staff[1] {
		t.Errorf("StaffIDs: got %v, want reassigned %v", got.StaffIDs, staff[1:])
	}
}

func TestUpdateShift_NotFound(t *testing.T) {
	store := newTestStore(t)
	staff := seedStaff(t, store, "Ana")

	sh, err := shift.New("Ghost", "2026-08-24", "09:00", "10:00", staff)
	if err != nil {
		t.Fatalf("shift.New failed: %v", err)
	}
	sh.ID = 9999
	err = store.UpdateShift(context.Background(), sh)
	if !errors.Is(err, shift.ErrShiftNotFound) {
		t.Errorf("got %v, want ErrShiftNotFound", err)
	}
}

func TestDeleteShift(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	staff := seedStaff(t, store, "Ana")

	sh, err := shift.New("To remove", "2026-08-24", "09:00", "10:00", staff)
	if err != nil {
		t.Fatalf("shift.New failed: %v", err)
	}
	if err := store.CreateShift(ctx, sh); err != nil {
		t.Fatalf("CreateShift failed: %v", err)
	}

	if err := store.DeleteShift(ctx, sh.ID); err != nil {
		t.Fatalf("DeleteShift failed: %v", err)
	}

	week, err := store.ListWeek(ctx, sh.Date)
	if err != nil {
		t.Fatalf("ListWeek failed: %v", err)
	}
	if len(week.Shifts) != 0 {
		t.Errorf("expected 0 shifts after delete, got %d", len(week.Shifts))
	}
}

func TestDeleteShift_NotFound(t *testing.T) {
	store := newTestStore(t)

	err := store.DeleteShift(context.Background(), 9999)
	if !errors.Is(err, shift.ErrShiftNotFound) {
		t.Errorf("got %v, want ErrShiftNotFound", err)
	}
}

func TestBatchCreateRecurring(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	staff := seedStaff(t, store, "Ana")

	template, err := shift.New("Standup cover", "2024-01-01", "09:00", "10:00", staff)
	if err != nil {
		t.Fatalf("shift.New failed: %v", err)
	}
	rule := shift.Rule{
		Frequency: shift.FrequencyWeekly,
		StartDate: template.Date,
		EndDate:   mustDate(t, "2024-01-22"),
	}

	count, err := store.BatchCreateRecurring(ctx, rule, template)
	if err != nil {
		t.Fatalf("BatchCreateRecurring failed: %v", err)
	}
	if count != 4 {
		t.Fatalf("created %d instances, want 4 weekly Mondays", count)
	}

	got, err := store.ListRange(ctx, mustDate(t, "2024-01-01"), mustDate(t, "2024-01-31"))
	if err != nil {
		t.Fatalf("ListRange failed: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("listed %d shifts, want 4", len(got))
	}

	groupID := got[0].RecurrenceGroupID
	if groupID == "" {
		t.Fatal("expected a recurrence group id to be stamped")
	}
	wantDates := []string{"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22"}
	for i, sh := range got {
		if sh.RecurrenceGroupID != groupID {
			t.Errorf("instance %d group id %q, want shared %q", i, sh.RecurrenceGroupID, groupID)
		}
		if !sh.IsRecurring {
			t.Errorf("instance %d not marked recurring", i)
		}
		if d := dateutil.ToISODate(sh.Date); d != wantDates[i] {
			t.Errorf("instance %d date %s, want %s", i, d, wantDates[i])
		}
		if len(sh.StaffIDs) != 1 || sh.StaffIDs[0] != staff[0] {
			t.Errorf("instance %d staff %v, want template staff", i, sh.StaffIDs)
		}
	}
}

func TestBatchDeleteRecurring(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	staff := seedStaff(t, store, "Ana")

	template, err := shift.New("Standup cover", "2024-01-01", "09:00", "10:00", staff)
	if err != nil {
		t.Fatalf("shift.New failed: %v", err)
	}
	rule := shift.Rule{
		Frequency: shift.FrequencyWeekly,
		StartDate: template.Date,
		EndDate:   mustDate(t, "2024-01-22"),
	}
	if _, err := store.BatchCreateRecurring(ctx, rule, template); err != nil {
		t.Fatalf("BatchCreateRecurring failed: %v", err)
	}

	// An unrelated single shift must survive the group delete.
	single, err := shift.New("One-off", "2024-01-08", "14:00", "16:00", staff)
	if err != nil {
		t.Fatalf("shift.New failed: %v", err)
	}
	if err := store.CreateShift(ctx, single); err != nil {
		t.Fatalf("CreateShift failed: %v", err)
	}

	all, err := store.ListRange(ctx, mustDate(t, "2024-01-01"), mustDate(t, "2024-01-31"))
	if err != nil {
		t.Fatalf("ListRange failed: %v", err)
	}
	var groupID string
	for _, sh := range all {
		if sh.RecurrenceGroupID != "" {
			groupID = sh.RecurrenceGroupID
			break
		}
	}
	if groupID == "" {
		t.Fatal("no group id found")
	}

	if err := store.BatchDeleteRecurring(ctx, groupID); err != nil {
		t.Fatalf("BatchDeleteRecurring failed: %v", err)
	}

	remaining, err := store.ListRange(ctx, mustDate(t, "2024-01-01"), mustDate(t, "2024-01-31"))
	if err != nil {
		t.Fatalf("ListRange failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != single.ID {
		t.Errorf("remaining = %d shifts, want only the one-off", len(remaining))
	}
}

func TestBatchDeleteRecurring_EmptyGroupID(t *testing.T) {
	store := newTestStore(t)

	if err := store.BatchDeleteRecurring(context.Background(), ""); err == nil {
		t.Error("expected error for empty group id")
	}
}

func TestSetPublished(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	monday := mustDate(t, "2026-08-24")

	// Publishing a week that has no row yet creates it.
	if err := store.SetPublished(ctx, monday, true); err != nil {
		t.Fatalf("SetPublished failed: %v", err)
	}
	week, err := store.ListWeek(ctx, monday)
	if err != nil {
		t.Fatalf("ListWeek failed: %v", err)
	}
	if !week.Published {
		t.Error("expected week to be published")
	}

	if err := store.SetPublished(ctx, monday, false); err != nil {
		t.Fatalf("SetPublished (unpublish) failed: %v", err)
	}
	week, err = store.ListWeek(ctx, monday)
	if err != nil {
		t.Fatalf("ListWeek failed: %v", err)
	}
	if week.Published {
		t.Error("expected week back to draft")
	}
}

func TestListRange_Ordering(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	staff := seedStaff(t, store, "Ana")

	fixtures := []struct {
		title string
		date  string
		start string
		end   string
	}{
		{"Tue morning", "2026-08-25", "09:00", "12:00"},
		{"Mon evening", "2026-08-24", "17:00", "22:00"},
		{"Mon morning", "2026-08-24", "08:00", "12:00"},
	}
	for _, f := range fixtures {
		sh, err := shift.New(f.title, f.date, f.start, f.end, staff)
		if err != nil {
			t.Fatalf("shift.New(%q) failed: %v", f.title, err)
		}
		if err := store.CreateShift(ctx, sh); err != nil {
			t.Fatalf("CreateShift(%q) failed: %v", f.title, err)
		}
	}

	got, err := store.ListRange(ctx, mustDate(t, "2026-08-24"), mustDate(t, "2026-08-25"))
	if err != nil {
		t.Fatalf("ListRange failed: %v", err)
	}

	wantOrder := []string{"Mon morning", "Mon evening", "Tue morning"}
	if len(got) != len(wantOrder) {
		t.Fatalf("got %d shifts, want %d", len(got), len(wantOrder))
	}
	for i, sh := range got {
		if sh.Title != wantOrder[i] {
			t.Errorf("position %d: got %q, want %q", i, sh.Title, wantOrder[i])
		}
	}
}

func TestStaffDirectory(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	m := &shift.StaffMember{Name: "Ana", Role: "manager"}
	if err := store.CreateStaff(ctx, m); err != nil {
		t.Fatalf("CreateStaff failed: %v", err)
	}
	if m.ID == 0 {
		t.Error("expected ID to be set after insert")
	}
	seedStaff(t, store, "Ben", "Cleo")

	staff, err := store.ListStaff(ctx)
	if err != nil {
		t.Fatalf("ListStaff failed: %v", err)
	}
	if len(staff) != 3 {
		t.Fatalf("got %d staff, want 3", len(staff))
	}
	if staff[0].Name != "Ana" || staff[0].Role != "manager" {
		t.Errorf("first member = %+v, want Ana the manager", staff[0])
	}
	for i := 1; i < len(staff); i++ {
		if staff[i].ID <= staff[i-1].ID {
			t.Errorf("staff not ordered by id: %d after %d", staff[i].ID, staff[i-1].ID)
		}
	}
}

func TestRecurrenceFieldsRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	staff := seedStaff(t, store, "Ana")

	sh, err := shift.New("Weekend rotation", "2026-08-29", "10:00", "14:00", staff)
	if err != nil {
		t.Fatalf("shift.New failed: %v", err)
	}
	sh.IsRecurring = true
	sh.Frequency = shift.FrequencyCustom
	sh.RecurrenceGroupID = shift.NewGroupID()
	sh.RecurrenceEndDate = mustDate(t, "2026-12-31")
	sh.DaysOfWeek = []int{5, 6}

	if err := store.CreateShift(ctx, sh); err != nil {
		t.Fatalf("CreateShift failed: %v", err)
	}

	got, err := store.ListRange(ctx, sh.Date, sh.Date)
	if err != nil {
		t.Fatalf("ListRange failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d shifts, want 1", len(got))
	}

	loaded := got[0]
	if !loaded.IsRecurring || loaded.Frequency != shift.FrequencyCustom {
		t.Errorf("recurrence flags lost: %+v", loaded)
	}
	if loaded.RecurrenceGroupID != sh.RecurrenceGroupID {
		t.Errorf("group id: got %q, want %q", loaded.RecurrenceGroupID, sh.RecurrenceGroupID)
	}
	if d := dateutil.ToISODate(loaded.RecurrenceEndDate); d != "2026-12-31" {
		t.Errorf("recurrence end: got %s, want 2026-12-31", d)
	}
	if len(loaded.DaysOfWeek) != 2 || loaded.DaysOfWeek[0] != 5 || loaded.DaysOfWeek[1] != 6 {
		t.Errorf("days of week: got %v, want [5 6]", loaded.DaysOfWeek)
	}
}
