package quota

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles plan_credits persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// UseCredit atomically checks the monthly quota and deducts one credit.
// It resets the counter to DefaultCredits when last_reset_month is behind the
// current month. Returns ErrQuotaExhausted when 0 rows are updated (quota
// exhausted or user absent).
func (s *Store) UseCredit(ctx context.Context, uid string) error {
	now := time.Now().Format("2006-01")

	tag, err := s.db.Exec(ctx, `
		UPDATE plan_credits SET
			credits_remaining = CASE WHEN last_reset_month != $1 THEN $2 - 1 ELSE credits_remaining - 1 END,
			last_reset_month = $1
		WHERE uid = $3 AND (last_reset_month < $1 OR credits_remaining > 0)
	`, now, DefaultCredits, uid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrQuotaExhausted
	}
	return nil
}

// EnsureUser inserts a new plan_credits row for uid with the default
// allowance. If the row already exists the insert is silently skipped.
func (s *Store) EnsureUser(ctx context.Context, uid string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO plan_credits (uid, credits_remaining, last_reset_month)
		VALUES ($1, $2, $3)
		ON CONFLICT (uid) DO NOTHING
	`, uid, DefaultCredits, time.Now().Format("2006-01"))
	return err
}
