package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS staff (
			id   INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS weeks (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			week_start DATE NOT NULL UNIQUE,
			week_end   DATE NOT NULL,
			published  INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS shifts (
			id                  INTEGER PRIMARY KEY AUTOINCREMENT,
			title               TEXT NOT NULL,
			shift_date          DATE NOT NULL,
			start_time          TIME NOT NULL,
			end_time            TIME NOT NULL,
			color               TEXT NOT NULL DEFAULT '',
			is_recurring        INTEGER NOT NULL DEFAULT 0,
			recurrence_group_id TEXT NOT NULL DEFAULT '',
			recurrence_end_date DATE,
			frequency           TEXT NOT NULL DEFAULT '' CHECK(frequency IN ('', 'DAILY', 'WEEKLY', 'MONTHLY', 'CUSTOM')),
			days_of_week        TEXT NOT NULL DEFAULT '',
			created_at          DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS shift_staff (
			shift_id INTEGER NOT NULL REFERENCES shifts(id) ON DELETE CASCADE,
			staff_id INTEGER NOT NULL REFERENCES staff(id),
			position INTEGER NOT NULL,
			PRIMARY KEY (shift_id, staff_id)
		);

		CREATE TABLE IF NOT EXISTS shift_tasks (
			shift_id INTEGER NOT NULL REFERENCES shifts(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			title    TEXT NOT NULL,
			priority TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (shift_id, position)
		);

		CREATE INDEX IF NOT EXISTS idx_shifts_date ON shifts(shift_date);
		CREATE INDEX IF NOT EXISTS idx_shifts_group ON shifts(recurrence_group_id);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	return nil
}
