package repository

import (
	"context"
	"regexp"
	"testing"

	"blogfolio/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCommentRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	comment := &models.Comment{Content: "Nice post!", PostID: 1, UserID: 1}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "comments"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.Create(ctx, comment)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_ListTopLevelByPost(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "comments" WHERE (post_id = $1 AND parent_id IS NULL) AND "comments"."deleted_at" IS NULL ORDER BY created_at ASC, id ASC`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "content", "post_id", "user_id"}).
			AddRow(1, "First", 1, 101).
			AddRow(2, "Second", 1, 102))

	// Preload Replies for the top-level comments
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "comments" WHERE "comments"."parent_id" IN ($1,$2) AND "comments"."deleted_at" IS NULL ORDER BY created_at ASC, id ASC`)).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "content", "post_id", "user_id", "parent_id"}).
			AddRow(3, "Reply to first", 1, 102, 1))

	// Preload Replies.User
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1 AND "users"."deleted_at" IS NULL`)).
		WithArgs(102).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(102, "Bob"))

	// Preload User for the top-level comments
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" IN ($1,$2) AND "users"."deleted_at" IS NULL`)).
		WithArgs(101, 102).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(101, "Alice").
			AddRow(102, "Bob"))

	comments, err := repo.ListTopLevelByPost(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, comments, 2)
	assert.Equal(t, "First", comments[0].Content)
	assert.Len(t, comments[0].Replies, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_GetByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "comments" WHERE "comments"."id" = $1 AND "comments"."deleted_at" IS NULL ORDER BY "comments"."id" LIMIT $2`)).
		WithArgs(77, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	comment, err := repo.GetByID(ctx, 77)
	assert.Nil(t, comment)

	var appErr *models.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_DeleteWithReplies(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "comments" SET "deleted_at"=$1 WHERE parent_id = $2 AND "comments"."deleted_at" IS NULL`)).
		WithArgs(sqlmock.AnyArg(), 4).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "comments" SET "deleted_at"=$1 WHERE "comments"."id" = $2 AND "comments"."deleted_at" IS NULL`)).
		WithArgs(sqlmock.AnyArg(), 4).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteWithReplies(ctx, 4)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
