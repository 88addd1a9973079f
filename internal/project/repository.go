package project

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrymomot/cmsnav/integration/database/pg"
)

// Repository persists projects.
type Repository interface {
	List(ctx context.Context) ([]Project, error)
	Get(ctx context.Context, id int64) (Project, error)
	TitleTaken(ctx context.Context, title string, exceptID int64) (bool, error)
	Create(ctx context.Context, p Params) (Project, error)
	Update(ctx context.Context, id int64, p Params) (Project, error)
	Delete(ctx context.Context, id int64) (Project, error)
	SetPosition(ctx context.Context, id int64, position int) error
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const columns = `id, title, link, link_text, description, position, created_at, updated_at`

// SQLRepository implements Repository on refinery_projects.
type SQLRepository struct {
	db *sql.DB
}

func NewSQLRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (Project, error) {
	var p Project
	err := row.Scan(&p.ID, &p.Title, &p.Link, &p.LinkText, &p.Description, &p.Position, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *SQLRepository) List(ctx context.Context) ([]Project, error) {
	rows, err := pg.Conn(ctx, r.db).QueryContext(ctx,
		`SELECT `+columns+` FROM refinery_projects ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (r *SQLRepository) Get(ctx context.Context, id int64) (Project, error) {
	p, err := scan(pg.Conn(ctx, r.db).QueryRowContext(ctx,
		`SELECT `+columns+` FROM refinery_projects WHERE id = $1`, id))
	return p, wrapRowErr("get project", err)
}

// TitleTaken reports whether another project already uses title.
func (r *SQLRepository) TitleTaken(ctx context.Context, title string, exceptID int64) (bool, error) {
	var taken bool
	err := pg.Conn(ctx, r.db).QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM refinery_projects WHERE title = $1 AND id <> $2)`,
		title, exceptID,
	).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("check project title: %w", err)
	}
	return taken, nil
}

// Create appends the project after the last position.
func (r *SQLRepository) Create(ctx context.Context, p Params) (Project, error) {
	created, err := scan(pg.Conn(ctx, r.db).QueryRowContext(ctx,
		`INSERT INTO refinery_projects (title, link, link_text, description, position)
		VALUES ($1, $2, $3, $4, (SELECT COALESCE(MAX(position) + 1, 0) FROM refinery_projects))
		RETURNING `+columns,
		p.Title, p.Link, p.LinkText, p.Description,
	))
	if err != nil {
		return Project{}, fmt.Errorf("create project: %w", err)
	}
	return created, nil
}

func (r *SQLRepository) Update(ctx context.Context, id int64, p Params) (Project, error) {
	updated, err := scan(pg.Conn(ctx, r.db).QueryRowContext(ctx,
		`UPDATE refinery_projects
		SET title = $1, link = $2, link_text = $3, description = $4, updated_at = now()
		WHERE id = $5
		RETURNING `+columns,
		p.Title, p.Link, p.LinkText, p.Description, id,
	))
	return updated, wrapRowErr("update project", err)
}

// Delete removes the project and returns the deleted row.
func (r *SQLRepository) Delete(ctx context.Context, id int64) (Project, error) {
	deleted, err := scan(pg.Conn(ctx, r.db).QueryRowContext(ctx,
		`DELETE FROM refinery_projects WHERE id = $1 RETURNING `+columns, id))
	return deleted, wrapRowErr("delete project", err)
}

func (r *SQLRepository) SetPosition(ctx context.Context, id int64, position int) error {
	res, err := pg.Conn(ctx, r.db).ExecContext(ctx,
		`UPDATE refinery_projects SET position = $1 WHERE id = $2`, position, id)
	if err != nil {
		return fmt.Errorf("set project position: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set project position: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLRepository) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return pg.InTx(ctx, r.db, fn)
}

func wrapRowErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case pg.IsNotFoundError(err):
		return ErrNotFound
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
