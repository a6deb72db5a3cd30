package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
)

// auditColumns is the canonical SELECT column list for audit events.
const auditColumns = `id, user_id, user_name, action, success, created_at`

// SQLiteAuditRepo implements AuditRepo using a SQLite database.
type SQLiteAuditRepo struct {
	db *sql.DB
}

// NewSQLiteAuditRepo creates a new SQLiteAuditRepo.
func NewSQLiteAuditRepo(db *sql.DB) *SQLiteAuditRepo {
	return &SQLiteAuditRepo{db: db}
}

func (r *SQLiteAuditRepo) Create(ctx context.Context, e *domain.AuditEvent) error {
	query := `INSERT INTO audit_events (id, user_id, user_name, action, success, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.UserID,
		e.UserName,
		e.Action,
		boolToInt(e.Success),
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting audit event: %w", err)
	}
	return nil
}

func (r *SQLiteAuditRepo) ListSince(ctx context.Context, since time.Time) ([]domain.AuditEvent, error) {
	query := `SELECT ` + auditColumns + ` FROM audit_events
		WHERE created_at >= ? ORDER BY created_at, id`
	return r.queryEvents(ctx, query, since.Format(time.RFC3339))
}

func (r *SQLiteAuditRepo) ListByUserSince(ctx context.Context, userID string, since time.Time) ([]domain.AuditEvent, error) {
	query := `SELECT ` + auditColumns + ` FROM audit_events
		WHERE user_id = ? AND created_at >= ? ORDER BY created_at, id`
	return r.queryEvents(ctx, query, userID, since.Format(time.RFC3339))
}

func (r *SQLiteAuditRepo) queryEvents(ctx context.Context, query string, args ...any) ([]domain.AuditEvent, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing audit events: %w", err)
	}
	defer rows.Close()

	var events []domain.AuditEvent
	for rows.Next() {
		var e domain.AuditEvent
		var successInt int
		var createdAtStr string
		if err := rows.Scan(&e.ID, &e.UserID, &e.UserName, &e.Action, &successInt, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning audit event: %w", err)
		}
		e.Success = intToBool(successInt)
		e.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
