// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"caseboard/internal/models"
	"caseboard/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CaseRepository defines the interface for case data operations
type CaseRepository interface {
	Create(ctx context.Context, c *models.Case) error
	// GetActive returns the case with the given ID unless it is soft-deleted.
	GetActive(ctx context.Context, id uint) (*models.Case, error)
	ListActive(ctx context.Context) ([]*models.Case, error)
	// UpdateFields applies the given columns to a non-deleted case in a single
	// UPDATE. Counters and the deleted flag are never part of fields, so
	// concurrent increments are preserved.
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	SoftDelete(ctx context.Context, id uint) error
	IncrementLikes(ctx context.Context, id uint) error
	IncrementViews(ctx context.Context, id uint) error
	// CountAll counts every stored row, soft-deleted ones included.
	CountAll(ctx context.Context) (int64, error)
}

// caseRepository implements CaseRepository
type caseRepository struct {
	db *gorm.DB
}

// NewCaseRepository creates a new case repository
func NewCaseRepository(db *gorm.DB) CaseRepository {
	return &caseRepository{db: db}
}

// withComments preloads comments ordered by creation time ascending, ties by ID.
func withComments(db *gorm.DB) *gorm.DB {
	return db.Preload("Comments", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC, id ASC")
	})
}

func (r *caseRepository) Create(ctx context.Context, c *models.Case) error {
	defer observability.TrackQuery("create", "cases")()
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(c).Error; err != nil {
		return err
	}
	if c.Comments == nil {
		c.Comments = []models.Comment{}
	}
	return nil
}

func (r *caseRepository) GetActive(ctx context.Context, id uint) (*models.Case, error) {
	defer observability.TrackQuery("get", "cases")()
	var c models.Case
	err := withComments(r.db.WithContext(ctx)).
		Where("id = ? AND deleted = ?", id, false).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	if c.Comments == nil {
		c.Comments = []models.Comment{}
	}
	return &c, nil
}

func (r *caseRepository) ListActive(ctx context.Context) ([]*models.Case, error) {
	defer observability.TrackQuery("list", "cases")()
	var cases []*models.Case
	err := withComments(r.db.WithContext(ctx)).
		Where("deleted = ?", false).
		Order("created_at DESC, id DESC").
		Find(&cases).Error
	if err != nil {
		return nil, err
	}
	for _, c := range cases {
		if c.Comments == nil {
			c.Comments = []models.Comment{}
		}
	}
	return cases, nil
}

func (r *caseRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	defer observability.TrackQuery("update", "cases")()
	res := r.db.WithContext(ctx).
		Model(&models.Case{}).
		Where("id = ? AND deleted = ?", id, false).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *caseRepository) SoftDelete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("soft_delete", "cases")()
	res := r.db.WithContext(ctx).
		Model(&models.Case{}).
		Where("id = ? AND deleted = ?", id, false).
		Updates(map[string]interface{}{"deleted": true})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *caseRepository) IncrementLikes(ctx context.Context, id uint) error {
	return r.increment(ctx, id, "likes")
}

func (r *caseRepository) IncrementViews(ctx context.Context, id uint) error {
	return r.increment(ctx, id, "pv")
}

// increment bumps a counter column in a single UPDATE so concurrent requests
// never race a read-then-write. A NULL counter counts as zero.
func (r *caseRepository) increment(ctx context.Context, id uint, column string) error {
	defer observability.TrackQuery("increment", "cases")()
	res := r.db.WithContext(ctx).
		Model(&models.Case{}).
		Where("id = ? AND deleted = ?", id, false).
		Updates(map[string]interface{}{
			column: gorm.Expr("COALESCE(" + column + ", 0) + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *caseRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Case{}).Count(&count).Error
	return count, err
}
