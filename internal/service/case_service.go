// Package service implements the application's business operations on top of
// the repository layer.
package service

import (
	"context"
	"errors"

	"caseboard/internal/models"
	"caseboard/internal/observability"
	"caseboard/internal/repository"

	"gorm.io/gorm"
)

// CaseService coordinates case record operations.
type CaseService struct {
	caseRepo repository.CaseRepository
}

// CreateCaseInput carries the fields accepted when creating a case. Counters
// always start at zero regardless of what the caller sends.
type CreateCaseInput struct {
	Title    string
	Summary  string
	Detail   string
	Tags     []string
	Owner    string
	Impact   string
	Date     string
	ImageURL *string
	PDFURL   *string
	PDFName  *string
}

// UpdateCaseInput carries a partial update. Nil fields are left untouched.
type UpdateCaseInput struct {
	Title    *string
	Summary  *string
	Detail   *string
	Tags     *[]string
	Owner    *string
	Impact   *string
	Date     *string
	ImageURL *string
	PDFURL   *string
	PDFName  *string
}

// NewCaseService creates a new CaseService.
func NewCaseService(caseRepo repository.CaseRepository) *CaseService {
	return &CaseService{caseRepo: caseRepo}
}

// CreateCase validates required fields and stores a new case with zeroed counters.
func (s *CaseService) CreateCase(ctx context.Context, in CreateCaseInput) (*models.Case, error) {
	if in.Title == "" || in.Summary == "" || in.Detail == "" {
		return nil, models.NewValidationError("Missing required fields")
	}

	c := &models.Case{
		Title:    in.Title,
		Summary:  in.Summary,
		Detail:   in.Detail,
		Tags:     models.TagList(in.Tags).Filtered(),
		Owner:    in.Owner,
		Impact:   in.Impact,
		Date:     in.Date,
		Likes:    0,
		PV:       0,
		ImageURL: in.ImageURL,
		PDFURL:   in.PDFURL,
		PDFName:  in.PDFName,
	}

	if err := s.caseRepo.Create(ctx, c); err != nil {
		return nil, models.NewInternalError(err)
	}
	observability.CasesCreatedTotal.Inc()

	return s.GetCase(ctx, c.ID)
}

// GetCase returns a non-deleted case by ID with its comments.
func (s *CaseService) GetCase(ctx context.Context, id uint) (*models.Case, error) {
	c, err := s.caseRepo.GetActive(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Case", id)
		}
		return nil, models.NewInternalError(err)
	}
	return c, nil
}

// ListCases returns all non-deleted cases, newest first.
func (s *CaseService) ListCases(ctx context.Context) ([]*models.Case, error) {
	cases, err := s.caseRepo.ListActive(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return cases, nil
}

// UpdateCase applies a partial update to a non-deleted case. Only fields
// present in the input change; counters, timestamps, and the deleted flag are
// never settable through this path. The changed columns go down in a single
// UPDATE, so a like or view landing concurrently is never written back stale.
func (s *CaseService) UpdateCase(ctx context.Context, id uint, in UpdateCaseInput) (*models.Case, error) {
	fields := map[string]interface{}{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Summary != nil {
		fields["summary"] = *in.Summary
	}
	if in.Detail != nil {
		fields["detail"] = *in.Detail
	}
	if in.Owner != nil {
		fields["owner"] = *in.Owner
	}
	if in.Impact != nil {
		fields["impact"] = *in.Impact
	}
	if in.Date != nil {
		fields["date"] = *in.Date
	}
	if in.ImageURL != nil {
		fields["image_url"] = *in.ImageURL
	}
	if in.PDFURL != nil {
		fields["pdf_url"] = *in.PDFURL
	}
	if in.PDFName != nil {
		fields["pdf_name"] = *in.PDFName
	}
	if in.Tags != nil {
		fields["tags"] = models.TagList(*in.Tags).Filtered()
	}

	if len(fields) == 0 {
		return s.GetCase(ctx, id)
	}

	if err := s.caseRepo.UpdateFields(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Case", id)
		}
		return nil, models.NewInternalError(err)
	}

	return s.GetCase(ctx, id)
}

// SoftDeleteCase marks a case as deleted without removing its row or comments.
func (s *CaseService) SoftDeleteCase(ctx context.Context, id uint) error {
	if err := s.caseRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Case", id)
		}
		return models.NewInternalError(err)
	}
	return nil
}

// LikeCase increments the like counter and returns the updated case.
func (s *CaseService) LikeCase(ctx context.Context, id uint) (*models.Case, error) {
	if err := s.caseRepo.IncrementLikes(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Case", id)
		}
		return nil, models.NewInternalError(err)
	}
	return s.GetCase(ctx, id)
}

// ViewCase increments the page-view counter and returns the updated case.
func (s *CaseService) ViewCase(ctx context.Context, id uint) (*models.Case, error) {
	if err := s.caseRepo.IncrementViews(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Case", id)
		}
		return nil, models.NewInternalError(err)
	}
	return s.GetCase(ctx, id)
}
