package project_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cmsnav/internal/project"
)

var projectColumns = []string{"id", "title", "link", "link_text", "description", "position", "created_at", "updated_at"}

func newMock(t *testing.T) (*project.SQLRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return project.NewSQLRepository(db), mock
}

func TestSQLRepositoryList(t *testing.T) {
	t.Parallel()

	repo, mock := newMock(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM refinery_projects ORDER BY position, id")).
		WillReturnRows(sqlmock.NewRows(projectColumns).
			AddRow(2, "UniqueTitleOne", "", "", "", 0, now, now).
			AddRow(1, "UniqueTitleTwo", "https://example.com", "Visit", "text", 1, now, now))

	projects, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "UniqueTitleOne", projects[0].Title)
	assert.Equal(t, int64(1), projects[1].ID)
	assert.Equal(t, "Visit", projects[1].LinkText)
	assert.Equal(t, now, projects[1].CreatedAt)
}

func TestSQLRepositoryGet(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMock(t)
		now := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta("FROM refinery_projects WHERE id = $1")).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(projectColumns).AddRow(7, "A title", "", "", "", 3, now, now))

		p, err := repo.Get(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "A title", p.Title)
		assert.Equal(t, 3, p.Position)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM refinery_projects WHERE id = $1")).
			WithArgs(int64(8)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(context.Background(), 8)
		assert.ErrorIs(t, err, project.ErrNotFound)
	})

	t.Run("driver error", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM refinery_projects WHERE id = $1")).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.Get(context.Background(), 9)
		require.Error(t, err)
		assert.NotErrorIs(t, err, project.ErrNotFound)
		assert.Contains(t, err.Error(), "get project")
	})
}

func TestSQLRepositoryTitleTaken(t *testing.T) {
	t.Parallel()

	repo, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("UniqueTitle", int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	taken, err := repo.TitleTaken(context.Background(), "UniqueTitle", 0)
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestSQLRepositoryCreate(t *testing.T) {
	t.Parallel()

	repo, mock := newMock(t)
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO refinery_projects")).
		WithArgs("Gallery", "https://example.com", "Visit", "About it").
		WillReturnRows(sqlmock.NewRows(projectColumns).
			AddRow(5, "Gallery", "https://example.com", "Visit", "About it", 4, now, now))

	p, err := repo.Create(context.Background(), project.Params{
		Title: "Gallery", Link: "https://example.com", LinkText: "Visit", Description: "About it",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.ID)
	assert.Equal(t, 4, p.Position)
}

func TestSQLRepositoryUpdateAndDelete(t *testing.T) {
	t.Parallel()

	repo, mock := newMock(t)
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE refinery_projects")).
		WithArgs("A different title", "", "", "", int64(3)).
		WillReturnRows(sqlmock.NewRows(projectColumns).AddRow(3, "A different title", "", "", "", 0, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM refinery_projects WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(projectColumns).AddRow(3, "A different title", "", "", "", 0, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM refinery_projects WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnError(sql.ErrNoRows)

	p, err := repo.Update(context.Background(), 3, project.Params{Title: "A different title"})
	require.NoError(t, err)
	assert.Equal(t, "A different title", p.Title)

	deleted, err := repo.Delete(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "A different title", deleted.Title)

	_, err = repo.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, project.ErrNotFound)
}

func TestSQLRepositoryReorderInTx(t *testing.T) {
	t.Parallel()

	repo, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE refinery_projects SET position = $1 WHERE id = $2")).
		WithArgs(0, int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE refinery_projects SET position = $1 WHERE id = $2")).
		WithArgs(1, int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	svc := project.NewService(repo)
	err := svc.Reorder(context.Background(), []int64{2, 99})
	assert.ErrorIs(t, err, project.ErrNotFound)
}
