package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
)

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, project_id, title, status, priority, due_date, completed_at,
		estimated_hours, actual_hours, assignee_id, assignee_name, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db *sql.DB
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(db *sql.DB) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (id, project_id, title, status, priority, due_date, completed_at,
		estimated_hours, actual_hours, assignee_id, assignee_name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.ProjectID,
		t.Title,
		string(t.Status),
		string(t.Priority),
		nullableTimeToString(t.DueDate, dateLayout),
		nullableTimeToString(t.CompletedAt, time.RFC3339),
		t.EstimatedHours,
		t.ActualHours,
		nullableStrToValue(t.AssigneeID),
		t.AssigneeName,
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	t, err := scanTaskFrom(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task: %w", ErrNotFound)
	}
	return t, err
}

func (r *SQLiteTaskRepo) List(ctx context.Context, scope TaskScope) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE 1=1`
	var args []any
	if scope.ProjectID != "" {
		query += ` AND project_id = ?`
		args = append(args, scope.ProjectID)
	}
	if scope.AssigneeID != "" {
		query += ` AND assignee_id = ?`
		args = append(args, scope.AssigneeID)
	}
	if scope.ActiveOnly {
		query += ` AND status NOT IN ('completed', 'cancelled')`
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTaskFrom(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET project_id = ?, title = ?, status = ?, priority = ?,
		due_date = ?, completed_at = ?, estimated_hours = ?, actual_hours = ?,
		assignee_id = ?, assignee_name = ?, updated_at = ?
		WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query,
		t.ProjectID,
		t.Title,
		string(t.Status),
		string(t.Priority),
		nullableTimeToString(t.DueDate, dateLayout),
		nullableTimeToString(t.CompletedAt, time.RFC3339),
		t.EstimatedHours,
		t.ActualHours,
		nullableStrToValue(t.AssigneeID),
		t.AssigneeName,
		time.Now().UTC().Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("updating task %s: %w", t.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

type taskScanner interface {
	Scan(dest ...any) error
}

func scanTaskFrom(s taskScanner) (*domain.Task, error) {
	var t domain.Task
	var statusStr, priorityStr, createdAtStr, updatedAtStr string
	var dueDateStr, completedAtStr, assigneeIDStr sql.NullString

	err := s.Scan(
		&t.ID, &t.ProjectID, &t.Title, &statusStr, &priorityStr,
		&dueDateStr, &completedAtStr,
		&t.EstimatedHours, &t.ActualHours,
		&assigneeIDStr, &t.AssigneeName,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.Status = domain.TaskStatus(statusStr)
	t.Priority = domain.TaskPriority(priorityStr)
	t.DueDate = parseNullableTime(dueDateStr, dateLayout)
	t.CompletedAt = parseNullableTime(completedAtStr, time.RFC3339)
	if assigneeIDStr.Valid && assigneeIDStr.String != "" {
		id := assigneeIDStr.String
		t.AssigneeID = &id
	}

	var parseErr error
	t.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	t.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &t, nil
}
