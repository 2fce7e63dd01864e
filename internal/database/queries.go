package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nepcal/panchanga-api/internal/events"
)

// parseTimestamp parses a timestamp from SQLite TEXT format.
// Tries multiple formats and returns the zero time if parsing fails.
func parseTimestamp(ns sql.NullString) time.Time {
	if !ns.Valid || ns.String == "" {
		return time.Time{}
	}

	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05.999999",
	} {
		if t, err := time.Parse(layout, ns.String); err == nil {
			return t
		}
	}
	return time.Time{}
}

const eventColumns = `
	id, kind, name, name_en, date, detail, detail_en, category, holiday,
	lunar_month, paksha, tithi, start_year, end_year,
	created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }) (*EventRecord, error) {
	var r EventRecord
	var createdAt, updatedAt sql.NullString

	err := row.Scan(
		&r.ID, &r.Kind, &r.Name, &r.NameEn, &r.Date,
		&r.Detail, &r.DetailEn, &r.Category, &r.Holiday,
		&r.LunarMonth, &r.Paksha, &r.Tithi,
		&r.StartYear, &r.EndYear,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	r.CreatedAt = parseTimestamp(createdAt)
	r.UpdatedAt = parseTimestamp(updatedAt)
	return &r, nil
}

// InsertEvent stores one event definition. Re-inserting an identical
// definition updates its mutable fields instead of failing, so imports
// are repeatable.
func (db *DB) InsertEvent(ctx context.Context, r *EventRecord) (int64, error) {
	if err := r.Validate(); err != nil {
		return 0, fmt.Errorf("validate event: %w", err)
	}

	query := `
		INSERT INTO events (
			kind, name, name_en, date, detail, detail_en, category, holiday,
			lunar_month, paksha, tithi, start_year, end_year
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (kind, name, date, lunar_month, paksha, tithi) DO UPDATE SET
			name_en = excluded.name_en,
			detail = excluded.detail,
			detail_en = excluded.detail_en,
			category = excluded.category,
			holiday = excluded.holiday,
			start_year = excluded.start_year,
			end_year = excluded.end_year,
			updated_at = datetime('now')
	`

	res, err := db.ExecContext(ctx, query,
		r.Kind, r.Name, r.NameEn, r.Date,
		r.Detail, r.DetailEn, r.Category, r.Holiday,
		r.LunarMonth, r.Paksha, r.Tithi,
		r.StartYear, r.EndYear,
	)
	if err != nil {
		return 0, fmt.Errorf("insert event: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("event insert id: %w", err)
	}
	return id, nil
}

// ImportEvents stores a batch of event definitions in one transaction.
// Returns the number stored.
func (db *DB) ImportEvents(ctx context.Context, records []EventRecord) (int, error) {
	count := 0
	err := db.WithTx(ctx, func(tx *Tx) error {
		query := `
			INSERT INTO events (
				kind, name, name_en, date, detail, detail_en, category, holiday,
				lunar_month, paksha, tithi, start_year, end_year
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (kind, name, date, lunar_month, paksha, tithi) DO UPDATE SET
				name_en = excluded.name_en,
				detail = excluded.detail,
				detail_en = excluded.detail_en,
				category = excluded.category,
				holiday = excluded.holiday,
				start_year = excluded.start_year,
				end_year = excluded.end_year,
				updated_at = datetime('now')
		`
		stmt, err := tx.PrepareContext(ctx, query)
		if err != nil {
			return fmt.Errorf("prepare insert: %w", err)
		}
		defer stmt.Close()

		for i := range records {
			r := &records[i]
			if err := r.Validate(); err != nil {
				return fmt.Errorf("validate event %d: %w", i, err)
			}
			_, err := stmt.ExecContext(ctx,
				r.Kind, r.Name, r.NameEn, r.Date,
				r.Detail, r.DetailEn, r.Category, r.Holiday,
				r.LunarMonth, r.Paksha, r.Tithi,
				r.StartYear, r.EndYear,
			)
			if err != nil {
				return fmt.Errorf("insert event %q: %w", r.Name, err)
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// GetEvent retrieves one event by id.
// Returns ErrNotFound if it doesn't exist.
func (db *DB) GetEvent(ctx context.Context, id int64) (*EventRecord, error) {
	query := "SELECT" + eventColumns + " FROM events WHERE id = ?"

	r, err := scanEvent(db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query event: %w", err)
	}
	return r, nil
}

// ListEvents returns all stored event definitions, ordered by kind then
// insertion order.
func (db *DB) ListEvents(ctx context.Context) ([]EventRecord, error) {
	query := "SELECT" + eventColumns + " FROM events ORDER BY kind, id"

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var out []EventRecord
	for rows.Next() {
		r, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return out, nil
}

// ListEventsByKind returns stored definitions of one kind.
func (db *DB) ListEventsByKind(ctx context.Context, kind events.Kind) ([]EventRecord, error) {
	query := "SELECT" + eventColumns + " FROM events WHERE kind = ? ORDER BY id"

	rows, err := db.QueryContext(ctx, query, kind)
	if err != nil {
		return nil, fmt.Errorf("query events by kind: %w", err)
	}
	defer rows.Close()

	var out []EventRecord
	for rows.Next() {
		r, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return out, nil
}

// CountEvents returns the total number of stored definitions.
func (db *DB) CountEvents(ctx context.Context) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM events").Scan(&n); err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return n, nil
}

// DeleteEvent removes one event by id.
// Returns ErrNotFound if it doesn't exist.
func (db *DB) DeleteEvent(ctx context.Context, id int64) error {
	res, err := db.ExecContext(ctx, "DELETE FROM events WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete event rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// LoadEventSet reads every stored definition into the matcher's grouped
// set. Called once at startup; the set is immutable afterwards.
func (db *DB) LoadEventSet(ctx context.Context) (*events.Set, error) {
	records, err := db.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	all := make([]events.Event, 0, len(records))
	for i := range records {
		all = append(all, records[i].Event())
	}
	return events.FromEvents(all), nil
}
