// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/rotacli/rota/internal/dateutil"
	"github.com/rotacli/rota/internal/shift"
)

// SQLite implements shift.Store and shift.StaffDirectory using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite store and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// ListWeek returns the WeekSchedule for the week starting at weekStart,
// creating the week row on demand if absent.
func (s *SQLite) ListWeek(ctx context.Context, weekStart time.Time) (*shift.WeekSchedule, error) {
	monday := dateutil.WeekStart(weekStart)
	week := shift.NewWeekSchedule(monday)

	startKey := dateutil.ToISODate(week.WeekStart)
	endKey := dateutil.ToISODate(week.WeekEnd)

	err := s.db.QueryRowContext(ctx,
		`SELECT id, published FROM weeks WHERE week_start = ?`, startKey,
	).Scan(&week.ID, &week.Published)
	if err == sql.ErrNoRows {
		result, insErr := s.db.ExecContext(ctx,
			`INSERT INTO weeks (week_start, week_end) VALUES (?, ?)`, startKey, endKey)
		if insErr != nil {
			return nil, fmt.Errorf("creating week: %w", insErr)
		}
		week.ID, _ = result.LastInsertId()
	} else if err != nil {
		return nil, fmt.Errorf("querying week: %w", err)
	}

	shifts, err := s.listShiftsByDateRange(ctx, startKey, endKey)
	if err != nil {
		return nil, err
	}
	week.Shifts = shifts

	return week, nil
}

// ListRange returns the shifts inside an inclusive date range, ordered by
// date then start time. Used by the CLI list command, which is not bound
// to week windows.
func (s *SQLite) ListRange(ctx context.Context, start, end time.Time) ([]*shift.Shift, error) {
	return s.listShiftsByDateRange(ctx, dateutil.ToISODate(start), dateutil.ToISODate(end))
}

// listShiftsByDateRange loads shifts with their staff and task rows for an
// inclusive ISO date range, ordered by date then start time.
func (s *SQLite) listShiftsByDateRange(ctx context.Context, startKey, endKey string) ([]*shift.Shift, error) {
	query := `
		SELECT id, title, shift_date, start_time, end_time, color,
		       is_recurring, recurrence_group_id, recurrence_end_date,
		       frequency, days_of_week, created_at
		FROM shifts
		WHERE shift_date >= ? AND shift_date <= ?
		ORDER BY shift_date, start_time, id
	`

	rows, err := s.db.QueryContext(ctx, query, startKey, endKey)
	if err != nil {
		return nil, fmt.Errorf("querying shifts: %w", err)
	}
	defer rows.Close()

	var shifts []*shift.Shift
	for rows.Next() {
		sh, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shifts: %w", err)
	}

	for _, sh := range shifts {
		if err := s.loadStaffAndTasks(ctx, sh); err != nil {
			return nil, err
		}
	}

	return shifts, nil
}

func scanShift(rows *sql.Rows) (*shift.Shift, error) {
	var (
		sh         shift.Shift
		date       string
		recEnd     sql.NullString
		daysOfWeek string
		createdAt  string
	)

	err := rows.Scan(
		&sh.ID, &sh.Title, &date, &sh.Start, &sh.End, &sh.Color,
		&sh.IsRecurring, &sh.RecurrenceGroupID, &recEnd,
		&sh.Frequency, &daysOfWeek, &createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning shift: %w", err)
	}

	sh.Date, err = parseStoredDate(date)
	if err != nil {
		return nil, fmt.Errorf("parsing shift date: %w", err)
	}
	if recEnd.Valid && recEnd.String != "" {
		sh.RecurrenceEndDate, err = parseStoredDate(recEnd.String)
		if err != nil {
			return nil, fmt.Errorf("parsing recurrence end date: %w", err)
		}
	}
	sh.DaysOfWeek = parseDaysOfWeek(daysOfWeek)
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		sh.CreatedAt = t
	}

	return &sh, nil
}

func (s *SQLite) loadStaffAndTasks(ctx context.Context, sh *shift.Shift) error {
	staffRows, err := s.db.QueryContext(ctx,
		`SELECT staff_id FROM shift_staff WHERE shift_id = ? ORDER BY position`, sh.ID)
	if err != nil {
		return fmt.Errorf("querying shift staff: %w", err)
	}
	defer staffRows.Close()

	for staffRows.Next() {
		var id int64
		if err := staffRows.Scan(&id); err != nil {
			return fmt.Errorf("scanning shift staff: %w", err)
		}
		sh.StaffIDs = append(sh.StaffIDs, id)
	}
	if err := staffRows.Err(); err != nil {
		return fmt.Errorf("iterating shift staff: %w", err)
	}

	taskRows, err := s.db.QueryContext(ctx,
		`SELECT title, priority FROM shift_tasks WHERE shift_id = ? ORDER BY position`, sh.ID)
	if err != nil {
		return fmt.Errorf("querying shift tasks: %w", err)
	}
	defer taskRows.Close()

	for taskRows.Next() {
		var t shift.TaskStub
		if err := taskRows.Scan(&t.Title, &t.Priority); err != nil {
			return fmt.Errorf("scanning shift task: %w", err)
		}
		sh.Tasks = append(sh.Tasks, t)
	}
	return taskRows.Err()
}

// CreateShift persists a new single shift and assigns its id.
func (s *SQLite) CreateShift(ctx context.Context, sh *shift.Shift) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertShift(ctx, tx, sh); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing shift: %w", err)
	}
	return nil
}

func insertShift(ctx context.Context, tx *sql.Tx, sh *shift.Shift) error {
	query := `
		INSERT INTO shifts (
			title, shift_date, start_time, end_time, color,
			is_recurring, recurrence_group_id, recurrence_end_date,
			frequency, days_of_week, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := sh.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	result, err := tx.ExecContext(ctx, query,
		sh.Title,
		dateutil.ToISODate(sh.Date),
		sh.Start,
		sh.End,
		sh.Color,
		sh.IsRecurring,
		sh.RecurrenceGroupID,
		recurrenceEndValue(sh),
		string(sh.Frequency),
		formatDaysOfWeek(sh.DaysOfWeek),
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting shift: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	sh.ID = id

	return insertShiftChildren(ctx, tx, sh)
}

func insertShiftChildren(ctx context.Context, tx *sql.Tx, sh *shift.Shift) error {
	for i, staffID := range sh.StaffIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO shift_staff (shift_id, staff_id, position) VALUES (?, ?, ?)`,
			sh.ID, staffID, i); err != nil {
			return fmt.Errorf("inserting shift staff: %w", err)
		}
	}
	for i, t := range sh.Tasks {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO shift_tasks (shift_id, position, title, priority) VALUES (?, ?, ?, ?)`,
			sh.ID, i, t.Title, t.Priority); err != nil {
			return fmt.Errorf("inserting shift task: %w", err)
		}
	}
	return nil
}

// UpdateShift replaces a persisted shift's fields by id.
func (s *SQLite) UpdateShift(ctx context.Context, sh *shift.Shift) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE shifts
		SET title = ?, shift_date = ?, start_time = ?, end_time = ?, color = ?,
		    is_recurring = ?, recurrence_group_id = ?, recurrence_end_date = ?,
		    frequency = ?, days_of_week = ?
		WHERE id = ?
	`

	result, err := tx.ExecContext(ctx, query,
		sh.Title,
		dateutil.ToISODate(sh.Date),
		sh.Start,
		sh.End,
		sh.Color,
		sh.IsRecurring,
		sh.RecurrenceGroupID,
		recurrenceEndValue(sh),
		string(sh.Frequency),
		formatDaysOfWeek(sh.DaysOfWeek),
		sh.ID,
	)
	if err != nil {
		return fmt.Errorf("updating shift: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return shift.ErrShiftNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM shift_staff WHERE shift_id = ?`, sh.ID); err != nil {
		return fmt.Errorf("clearing shift staff: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM shift_tasks WHERE shift_id = ?`, sh.ID); err != nil {
		return fmt.Errorf("clearing shift tasks: %w", err)
	}
	if err := insertShiftChildren(ctx, tx, sh); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing shift update: %w", err)
	}
	return nil
}

// DeleteShift removes a single shift by id.
func (s *SQLite) DeleteShift(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM shifts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting shift: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

// BatchCreateRecurring expands the rule against the template and inserts
// every instance in one transaction under a shared recurrence group id.
func (s *SQLite) BatchCreateRecurring(ctx context.Context, r shift.Rule, template *shift.Shift) (int, error) {
	groupID := template.RecurrenceGroupID
	if groupID == "" {
		groupID = shift.NewGroupID()
	}

	instances, err := shift.Materialize(template, r, groupID)
	if err != nil {
		return 0, fmt.Errorf("expanding recurrence: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, inst := range instances {
		if err := insertShift(ctx, tx, inst); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing series: %w", err)
	}
	return len(instances), nil
}

// BatchDeleteRecurring removes every member of a recurrence group.
func (s *SQLite) BatchDeleteRecurring(ctx context.Context, groupID string) error {
	if groupID == "" {
		return fmt.Errorf("empty recurrence group id")
	}
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM shifts WHERE recurrence_group_id = ?`, groupID); err != nil {
		return fmt.Errorf("deleting recurring series: %w", err)
	}
	return nil
}

// SetPublished flips the published flag on a week, creating the week row
// on demand.
func (s *SQLite) SetPublished(ctx context.Context, weekStart time.Time, published bool) error {
	monday := dateutil.WeekStart(weekStart)
	startKey := dateutil.ToISODate(monday)
	endKey := dateutil.ToISODate(monday.AddDate(0, 0, 6))

	result, err := s.db.ExecContext(ctx,
		`UPDATE weeks SET published = ? WHERE week_start = ?`, published, startKey)
	if err != nil {
		return fmt.Errorf("publishing week: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO weeks (week_start, week_end, published) VALUES (?, ?, ?)`,
			startKey, endKey, published); err != nil {
			return fmt.Errorf("creating week: %w", err)
		}
	}
	return nil
}

// ListStaff returns the staff directory ordered by id.
func (s *SQLite) ListStaff(ctx context.Context) ([]*shift.StaffMember, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, role FROM staff ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying staff: %w", err)
	}
	defer rows.Close()

	var staff []*shift.StaffMember
	for rows.Next() {
		var m shift.StaffMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Role); err != nil {
			return nil, fmt.Errorf("scanning staff: %w", err)
		}
		staff = append(staff, &m)
	}
	return staff, rows.Err()
}

// CreateStaff adds a staff member and assigns their id.
func (s *SQLite) CreateStaff(ctx context.Context, m *shift.StaffMember) error {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO staff (name, role) VALUES (?, ?)`, m.Name, m.Role)
	if err != nil {
		return fmt.Errorf("inserting staff: %w", err)
	}
	m.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// parseStoredDate parses a date read back from a DATE column. The driver
// converts DATE decltypes into time.Time, which database/sql stringifies
// as "2006-01-02T00:00:00Z", so accept that midnight form alongside plain
// "2006-01-02" and treat both as local midnight, matching dateutil.ParseDate.
func parseStoredDate(s string) (time.Time, error) {
	if len(s) == 20 && s[10] == 'T' && s[19] == 'Z' {
		s = s[:10]
	}
	return dateutil.ParseDate(s)
}

func recurrenceEndValue(sh *shift.Shift) any {
	if sh.RecurrenceEndDate.IsZero() {
		return nil
	}
	return dateutil.ToISODate(sh.RecurrenceEndDate)
}

func formatDaysOfWeek(days []int) string {
	if len(days) == 0 {
		return ""
	}
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ",")
}

func parseDaysOfWeek(s string) []int {
	if s == "" {
		return nil
	}
	var days []int
	for _, part := range strings.Split(s, ",") {
		if d, err := strconv.Atoi(part); err == nil {
			days = append(days, d)
		}
	}
	return days
}
