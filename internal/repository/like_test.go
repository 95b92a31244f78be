package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestLikeRepository_Toggle_Insert(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO likes`)).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(1, 1))

	liked, err := repo.Toggle(ctx, 1, 2)
	assert.NoError(t, err)
	assert.True(t, liked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRepository_Toggle_RemovesExisting(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	// Conflict: the like already exists, zero rows inserted.
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO likes`)).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "likes" WHERE user_id = $1 AND post_id = $2`)).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	liked, err := repo.Toggle(ctx, 1, 2)
	assert.NoError(t, err)
	assert.False(t, liked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRepository_ListByPost(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "likes" WHERE post_id = $1`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "post_id"}).
			AddRow(1, 10, 2).
			AddRow(2, 11, 2))

	likes, err := repo.ListByPost(ctx, 2)
	assert.NoError(t, err)
	assert.Len(t, likes, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
