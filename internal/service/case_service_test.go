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

func setupCaseService(t *testing.T) (*CaseService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Case{}, &models.Comment{}))
	return NewCaseService(repository.NewCaseRepository(db)), db
}

func strPtr(s string) *string { return &s }

func TestCreateCaseForcesZeroCounters(t *testing.T) {
	t.Parallel()

	svc, _ := setupCaseService(t)
	ctx := context.Background()

	created, err := svc.CreateCase(ctx, CreateCaseInput{
		Title:   "New case",
		Summary: "A summary",
		Detail:  "Details",
		Tags:    []string{"infra", ""},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, created.Likes)
	assert.Equal(t, 0, created.PV)
	assert.Equal(t, models.TagList{"infra"}, created.Tags)
	assert.NotNil(t, created.CreatedAt)
	assert.NotNil(t, created.Comments)
}

func TestCreateCaseMissingRequiredFields(t *testing.T) {
	t.Parallel()

	svc, _ := setupCaseService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   CreateCaseInput
	}{
		{"no title", CreateCaseInput{Summary: "s", Detail: "d"}},
		{"no summary", CreateCaseInput{Title: "t", Detail: "d"}},
		{"no detail", CreateCaseInput{Title: "t", Summary: "s"}},
		{"all empty", CreateCaseInput{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCase(ctx, tt.in)
			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, models.CodeValidation, appErr.Code)
		})
	}
}

func TestGetCaseNotFound(t *testing.T) {
	t.Parallel()

	svc, _ := setupCaseService(t)

	_, err := svc.GetCase(context.Background(), 42)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestUpdateCasePartial(t *testing.T) {
	t.Parallel()

	svc, _ := setupCaseService(t)
	ctx := context.Background()

	created, err := svc.CreateCase(ctx, CreateCaseInput{
		Title:   "Original",
		Summary: "Original summary",
		Detail:  "Original detail",
		Owner:   "team-a",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateCase(ctx, created.ID, UpdateCaseInput{
		Title: strPtr("Renamed"),
		Owner: strPtr(""),
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "", updated.Owner)
	// Untouched fields keep their values
	assert.Equal(t, "Original summary", updated.Summary)
	assert.Equal(t, "Original detail", updated.Detail)
}

func TestUpdateCaseTagsReplaced(t *testing.T) {
	t.Parallel()

	svc, _ := setupCaseService(t)
	ctx := context.Background()

	created, err := svc.CreateCase(ctx, CreateCaseInput{
		Title: "t", Summary: "s", Detail: "d",
		Tags: []string{"old"},
	})
	require.NoError(t, err)

	tags := []string{"new", "", "tags"}
	updated, err := svc.UpdateCase(ctx, created.ID, UpdateCaseInput{Tags: &tags})
	require.NoError(t, err)

	assert.Equal(t, models.TagList{"new", "tags"}, updated.Tags)
}

func TestUpdateCaseKeepsConcurrentLike(t *testing.T) {
	t.Parallel()

	svc, _ := setupCaseService(t)
	ctx := context.Background()

	created, err := svc.CreateCase(ctx, CreateCaseInput{Title: "t", Summary: "s", Detail: "d"})
	require.NoError(t, err)

	// Snapshot read as a PATCH caller would, then a like lands before the
	// update is applied.
	_, err = svc.GetCase(ctx, created.ID)
	require.NoError(t, err)
	_, err = svc.LikeCase(ctx, created.ID)
	require.NoError(t, err)

	updated, err := svc.UpdateCase(ctx, created.ID, UpdateCaseInput{Title: strPtr("Renamed")})
	require.NoError(t, err)

	assert.Equal(t, 1, updated.Likes, "concurrent like must survive the update")
	assert.Equal(t, "Renamed", updated.Title)
}

func TestUpdateCaseEmptyInput(t *testing.T) {
	t.Parallel()

	svc, _ := setupCaseService(t)
	ctx := context.Background()

	created, err := svc.CreateCase(ctx, CreateCaseInput{Title: "t", Summary: "s", Detail: "d"})
	require.NoError(t, err)

	got, err := svc.UpdateCase(ctx, created.ID, UpdateCaseInput{})
	require.NoError(t, err)
	assert.Equal(t, "t", got.Title)

	_, err = svc.UpdateCase(ctx, 999, UpdateCaseInput{})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestUpdateCaseNotFound(t *testing.T) {
	t.Parallel()

	svc, _ := setupCaseService(t)

	_, err := svc.UpdateCase(context.Background(), 42, UpdateCaseInput{Title: strPtr("x")})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestSoftDeleteCaseHidesFromReads(t *testing.T) {
	t.Parallel()

	svc, db := setupCaseService(t)
	ctx := context.Background()

	created, err := svc.CreateCase(ctx, CreateCaseInput{Title: "t", Summary: "s", Detail: "d"})
	require.NoError(t, err)

	require.NoError(t, svc.SoftDeleteCase(ctx, created.ID))

	_, err = svc.GetCase(ctx, created.ID)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)

	cases, err := svc.ListCases(ctx)
	require.NoError(t, err)
	assert.Empty(t, cases)

	// Row and flag survive in storage
	var stored models.Case
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.True(t, stored.Deleted)
}

func TestLikeAndViewCounters(t *testing.T) {
	t.Parallel()

	svc, _ := setupCaseService(t)
	ctx := context.Background()

	created, err := svc.CreateCase(ctx, CreateCaseInput{Title: "t", Summary: "s", Detail: "d"})
	require.NoError(t, err)

	var got *models.Case
	for i := 0; i < 3; i++ {
		got, err = svc.LikeCase(ctx, created.ID)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, got.Likes)

	got, err = svc.ViewCase(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.PV)
	assert.Equal(t, 3, got.Likes)
}

func TestLikeDeletedCaseNotFound(t *testing.T) {
	t.Parallel()

	svc, _ := setupCaseService(t)
	ctx := context.Background()

	created, err := svc.CreateCase(ctx, CreateCaseInput{Title: "t", Summary: "s", Detail: "d"})
	require.NoError(t, err)
	require.NoError(t, svc.SoftDeleteCase(ctx, created.ID))

	_, err = svc.LikeCase(ctx, created.ID)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}
