package page

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrymomot/cmsnav/integration/database/pg"
)

// Repository provides the page tree.
type Repository interface {
	ListMenu(ctx context.Context) ([]Page, error)
	FindByPath(ctx context.Context, path string) (Page, error)
}

const columns = `id, parent_id, title, slug, link_url, menu_match, position, show_in_menu, body`

type SQLRepository struct {
	db *sql.DB
}

func NewSQLRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

func scan(row interface{ Scan(...any) error }) (Page, error) {
	var (
		p        Page
		parentID sql.NullInt64
	)
	err := row.Scan(&p.ID, &parentID, &p.Title, &p.Slug, &p.LinkURL, &p.MenuMatch, &p.Position, &p.ShowInMenu, &p.Body)
	if parentID.Valid {
		p.ParentID = &parentID.Int64
	}
	return p, err
}

// ListMenu returns the pages shown in the menu, roots first, siblings by position.
func (r *SQLRepository) ListMenu(ctx context.Context) ([]Page, error) {
	rows, err := pg.Conn(ctx, r.db).QueryContext(ctx,
		`SELECT `+columns+` FROM refinery_pages
		WHERE show_in_menu
		ORDER BY parent_id NULLS FIRST, position, id`)
	if err != nil {
		return nil, fmt.Errorf("list menu pages: %w", err)
	}
	defer rows.Close()

	var pages []Page
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		pages = append(pages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list menu pages: %w", err)
	}
	return pages, nil
}

// FindByPath looks the page up by its link url first, then walks the slug
// chain one segment at a time.
func (r *SQLRepository) FindByPath(ctx context.Context, path string) (Page, error) {
	if path == "" {
		path = "/"
	}
	conn := pg.Conn(ctx, r.db)

	p, err := scan(conn.QueryRowContext(ctx,
		`SELECT `+columns+` FROM refinery_pages WHERE link_url = $1 ORDER BY id LIMIT 1`, path))
	if err == nil {
		return p, nil
	}
	if !pg.IsNotFoundError(err) {
		return Page{}, fmt.Errorf("find page by link: %w", err)
	}

	segments := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
	if len(segments) == 0 {
		return Page{}, ErrNotFound
	}

	var parentID *int64
	for _, segment := range segments {
		p, err = scan(conn.QueryRowContext(ctx,
			`SELECT `+columns+` FROM refinery_pages
			WHERE slug = $1 AND parent_id IS NOT DISTINCT FROM $2`, segment, parentID))
		if pg.IsNotFoundError(err) {
			return Page{}, ErrNotFound
		}
		if err != nil {
			return Page{}, fmt.Errorf("find page by slug: %w", err)
		}
		id := p.ID
		parentID = &id
	}
	return p, nil
}
