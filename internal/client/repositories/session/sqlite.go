package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mkravchenko/linkvault/internal/client/models"
	"github.com/mkravchenko/linkvault/internal/common"
	"github.com/mkravchenko/linkvault/internal/dbx"
)

const (
	keyToken  = "token"
	keyUserID = "user_id"
	keyEmail  = "email"
)

// SQLiteRepository keeps the session as key/value rows in a local sqlite
// table. Save writes all rows in one transaction, so the store can never
// hold a partial session.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) get(ctx context.Context, q dbx.DBTX, key string) (string, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) set(ctx context.Context, q dbx.DBTX, key string, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

// Load returns the stored session, or (nil, nil) when any field is missing.
func (r *SQLiteRepository) Load(ctx context.Context) (*models.Session, error) {
	token, err := r.get(ctx, r.db, keyToken)
	if err != nil {
		return nil, err
	}
	userID, err := r.get(ctx, r.db, keyUserID)
	if err != nil {
		return nil, err
	}
	email, err := r.get(ctx, r.db, keyEmail)
	if err != nil {
		return nil, err
	}

	s := &models.Session{Token: token, UserID: userID, Email: email}
	if !s.Complete() {
		return nil, nil
	}
	return s, nil
}

// Save stores the session. An incomplete session is rejected with
// common.ErrValidation before anything is written.
func (r *SQLiteRepository) Save(ctx context.Context, s *models.Session) error {
	if !s.Complete() {
		return fmt.Errorf("%w: incomplete session", common.ErrValidation)
	}

	return dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		if err := r.set(ctx, tx, keyToken, s.Token); err != nil {
			return err
		}
		if err := r.set(ctx, tx, keyUserID, s.UserID); err != nil {
			return err
		}
		return r.set(ctx, tx, keyEmail, s.Email)
	})
}

// Clear removes the stored session. Clearing an empty store is a no-op.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
