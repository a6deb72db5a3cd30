package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
)

// projectColumns is the canonical SELECT column list for projects.
const projectColumns = `id, name, status, start_date, end_date, created_at, updated_at`

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db *sql.DB
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(db *sql.DB) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: db}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (id, name, status, start_date, end_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		string(p.Status),
		p.StartDate.Format(dateLayout),
		nullableTimeToString(p.EndDate, dateLayout),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanProject(row)
}

func (r *SQLiteProjectRepo) List(ctx context.Context, includeTerminal bool) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	if !includeTerminal {
		query += ` WHERE status NOT IN ('completed', 'cancelled')`
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProjectRows(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET name = ?, status = ?, start_date = ?, end_date = ?, updated_at = ?
		WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query,
		p.Name,
		string(p.Status),
		p.StartDate.Format(dateLayout),
		nullableTimeToString(p.EndDate, dateLayout),
		time.Now().UTC().Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("updating project %s: %w", p.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

type projectScanner interface {
	Scan(dest ...any) error
}

func scanProject(row *sql.Row) (*domain.Project, error) {
	p, err := scanProjectFrom(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project: %w", ErrNotFound)
	}
	return p, err
}

func scanProjectRows(rows *sql.Rows) (*domain.Project, error) {
	return scanProjectFrom(rows)
}

func scanProjectFrom(s projectScanner) (*domain.Project, error) {
	var p domain.Project
	var statusStr, startDateStr, createdAtStr, updatedAtStr string
	var endDateStr sql.NullString

	err := s.Scan(&p.ID, &p.Name, &statusStr, &startDateStr, &endDateStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	p.Status = domain.ProjectStatus(statusStr)
	p.EndDate = parseNullableTime(endDateStr, dateLayout)

	var parseErr error
	p.StartDate, parseErr = time.Parse(dateLayout, startDateStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start_date: %w", parseErr)
	}
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &p, nil
}
