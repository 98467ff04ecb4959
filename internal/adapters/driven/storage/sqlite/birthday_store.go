package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/unitbot/internal/core/domain"
	"github.com/custodia-labs/unitbot/internal/core/ports/driven"
)

// birthdayStore implements driven.BirthdayStore.
type birthdayStore struct {
	store *Store
}

var _ driven.BirthdayStore = (*birthdayStore)(nil)

const birthdayColumns = "user_id, day, month, created_at, updated_at"

// Save stores or updates a birthday.
func (s *birthdayStore) Save(ctx context.Context, b domain.Birthday) error {
	if err := b.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO birthdays (user_id, day, month, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			day = excluded.day,
			month = excluded.month,
			updated_at = excluded.updated_at
	`, b.UserID, b.Day, int(b.Month),
		b.CreatedAt.UTC().Format(time.RFC3339), b.UpdatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving birthday: %w", err)
	}
	return nil
}

// Get retrieves the birthday of a user.
func (s *birthdayStore) Get(ctx context.Context, userID string) (*domain.Birthday, error) {
	row := s.store.db.QueryRowContext(ctx,
		"SELECT "+birthdayColumns+" FROM birthdays WHERE user_id = ?", userID)

	b, err := scanBirthday(row)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Delete removes the birthday of a user.
func (s *birthdayStore) Delete(ctx context.Context, userID string) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM birthdays WHERE user_id = ?", userID)
	if err != nil {
		return fmt.Errorf("deleting birthday: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting birthday: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns all birthdays in calendar order.
func (s *birthdayStore) List(ctx context.Context) ([]domain.Birthday, error) {
	return s.query(ctx,
		"SELECT "+birthdayColumns+" FROM birthdays ORDER BY month, day, user_id")
}

// ListByDate returns birthdays on month and day.
func (s *birthdayStore) ListByDate(ctx context.Context, month time.Month, day int) ([]domain.Birthday, error) {
	return s.query(ctx,
		"SELECT "+birthdayColumns+" FROM birthdays WHERE month = ? AND day = ? ORDER BY user_id",
		int(month), day)
}

func (s *birthdayStore) query(ctx context.Context, query string, args ...any) ([]domain.Birthday, error) {
	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying birthdays: %w", err)
	}
	defer rows.Close()

	var result []domain.Birthday //nolint:prealloc // size unknown from query
	for rows.Next() {
		b, err := scanBirthday(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating birthdays: %w", err)
	}
	return result, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanBirthday(row scanner) (*domain.Birthday, error) {
	var (
		b                domain.Birthday
		month            int
		created, updated string
	)
	err := row.Scan(&b.UserID, &b.Day, &month, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning birthday: %w", err)
	}

	b.Month = time.Month(month)
	b.CreatedAt = parseTime(created)
	b.UpdatedAt = parseTime(updated)
	return &b, nil
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
