package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolocal/kolocal-api/internal/domain"
)

func TestPostRepository_List(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewPostRepository(conn)

	mock.ExpectQuery("SELECT "+postSpec.selectList()+
		" FROM posts WHERE category = ? ORDER BY date DESC LIMIT ? OFFSET ?").
		WithArgs("travel", 12, 0).
		WillReturnRows(postResult("weekend-markets"))
	mock.ExpectQuery("SELECT COUNT(*) AS total FROM posts WHERE category = ?").
		WithArgs("travel").
		WillReturnRows(countResult(1))

	posts, pg, err := repo.List(context.Background(),
		domain.PostFilters{Category: "travel"}, domain.Sort{}, domain.Page{})

	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "weekend-markets", posts[0].Slug)
	assert.Equal(t, "2025-02-14", posts[0].Date)
	assert.Equal(t, []string{"camping", "family"}, posts[0].Tags)
	assert.True(t, posts[0].Featured)
	assert.Equal(t, 12, pg.Limit)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_GetBySlug_AbsentIsNilNotError(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewPostRepository(conn)

	mock.ExpectQuery("SELECT "+postSpec.selectList()+" FROM posts WHERE slug = ? LIMIT 1").
		WithArgs("no-such-post").
		WillReturnRows(postResult())

	post, err := repo.GetBySlug(context.Background(), "no-such-post")

	require.NoError(t, err)
	assert.Nil(t, post)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Search(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewPostRepository(conn)

	mock.ExpectQuery("SELECT "+postSpec.selectList()+
		" FROM posts WHERE (title LIKE ? OR excerpt LIKE ? OR content LIKE ?)"+
		" ORDER BY CASE WHEN title LIKE ? THEN 0 ELSE 1 END, featured DESC, date DESC LIMIT ? OFFSET ?").
		WithArgs("%market%", "%market%", "%market%", "%market%", 12, 0).
		WillReturnRows(postResult("weekend-markets"))
	mock.ExpectQuery("SELECT COUNT(*) AS total FROM posts WHERE (title LIKE ? OR excerpt LIKE ? OR content LIKE ?)").
		WithArgs("%market%", "%market%", "%market%").
		WillReturnRows(countResult(1))

	posts, pg, err := repo.Search(context.Background(), "market", domain.Page{})

	require.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, 1, pg.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Create(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewPostRepository(conn)

	mock.ExpectExec("INSERT INTO posts (" + postSpec.selectList() + ") VALUES (" +
		placeholders(len(postSpec.columns)) + ")").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT " + postSpec.selectList() + " FROM posts WHERE id = ? LIMIT 1").
		WillReturnRows(postResult("weekend-markets"))

	post := &domain.Post{
		Title:    "Weekend Markets",
		Content:  "Long body.",
		Author:   "editor",
		Date:     "2025-02-14",
		Category: "travel",
		Tags:     []string{"camping", "family"},
	}
	created, err := repo.Create(context.Background(), post)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "weekend-markets", post.Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Update_EncodesTags(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewPostRepository(conn)

	mock.ExpectExec("UPDATE posts SET tags = ?, updated_at = ? WHERE id = ?").
		WithArgs(`["food","night-market"]`, sqlmock.AnyArg(), "post-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT "+postSpec.selectList()+" FROM posts WHERE id = ? LIMIT 1").
		WithArgs("post-1").
		WillReturnRows(postResult("weekend-markets"))

	updated, err := repo.Update(context.Background(), "post-1", map[string]any{
		"tags": []string{"food", "night-market"},
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_CountByCategory(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewPostRepository(conn)

	mock.ExpectQuery("SELECT category, COUNT(*) AS total FROM posts GROUP BY category ORDER BY total DESC").
		WillReturnRows(sqlmock.NewRows([]string{"category", "total"}).
			AddRow("travel", int64(14)).
			AddRow("food", int64(9)))

	counts, err := repo.CountByCategory(context.Background())

	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, domain.CategoryCount{Category: "travel", Count: 14}, counts[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}
