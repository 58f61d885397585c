package service

import (
	"context"
	"testing"

	"caseboard/internal/models"
	"caseboard/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCommentService(t *testing.T) (*CommentService, *CaseService) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Case{}, &models.Comment{}))

	caseSvc := NewCaseService(repository.NewCaseRepository(db))
	return NewCommentService(repository.NewCommentRepository(db), caseSvc), caseSvc
}

func TestAddCommentReturnsRefreshedCase(t *testing.T) {
	t.Parallel()

	commentSvc, caseSvc := setupCommentService(t)
	ctx := context.Background()

	created, err := caseSvc.CreateCase(ctx, CreateCaseInput{Title: "t", Summary: "s", Detail: "d"})
	require.NoError(t, err)

	got, err := commentSvc.AddComment(ctx, AddCommentInput{
		CaseID: created.ID,
		Name:   "  Alice  ",
		Team:   " platform ",
		Text:   "  nice work  ",
	})
	require.NoError(t, err)

	require.Len(t, got.Comments, 1)
	assert.Equal(t, "Alice", got.Comments[0].Name)
	assert.Equal(t, "platform", got.Comments[0].Team)
	assert.Equal(t, "nice work", got.Comments[0].Text)
}

func TestAddCommentBlankTextRejected(t *testing.T) {
	t.Parallel()

	commentSvc, caseSvc := setupCommentService(t)
	ctx := context.Background()

	created, err := caseSvc.CreateCase(ctx, CreateCaseInput{Title: "t", Summary: "s", Detail: "d"})
	require.NoError(t, err)

	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := commentSvc.AddComment(ctx, AddCommentInput{CaseID: created.ID, Text: text})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeValidation, appErr.Code)
	}
}

func TestAddCommentToMissingCase(t *testing.T) {
	t.Parallel()

	commentSvc, _ := setupCommentService(t)

	_, err := commentSvc.AddComment(context.Background(), AddCommentInput{CaseID: 42, Text: "hello"})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestAddCommentBlankTextOnMissingCaseIsNotFound(t *testing.T) {
	t.Parallel()

	commentSvc, _ := setupCommentService(t)

	// The missing parent wins over the blank text.
	_, err := commentSvc.AddComment(context.Background(), AddCommentInput{CaseID: 42, Text: "   "})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestAddCommentToDeletedCase(t *testing.T) {
	t.Parallel()

	commentSvc, caseSvc := setupCommentService(t)
	ctx := context.Background()

	created, err := caseSvc.CreateCase(ctx, CreateCaseInput{Title: "t", Summary: "s", Detail: "d"})
	require.NoError(t, err)
	require.NoError(t, caseSvc.SoftDeleteCase(ctx, created.ID))

	_, err = commentSvc.AddComment(ctx, AddCommentInput{CaseID: created.ID, Text: "too late"})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}
