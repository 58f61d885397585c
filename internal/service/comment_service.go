package service

import (
	"context"
	"strings"

	"caseboard/internal/models"
	"caseboard/internal/observability"
	"caseboard/internal/repository"
)

// CommentService coordinates comment operations on cases.
type CommentService struct {
	commentRepo repository.CommentRepository
	caseSvc     *CaseService
}

// AddCommentInput carries the fields accepted when adding a comment.
type AddCommentInput struct {
	CaseID uint
	Name   string
	Team   string
	Text   string
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, caseSvc *CaseService) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		caseSvc:     caseSvc,
	}
}

// AddComment attaches a comment to a non-deleted case and returns the case
// re-read with the new comment included.
func (s *CommentService) AddComment(ctx context.Context, in AddCommentInput) (*models.Case, error) {
	// Resolve the parent first: a missing or soft-deleted case is not-found
	// even when the text is also blank.
	if _, err := s.caseSvc.GetCase(ctx, in.CaseID); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, models.NewValidationError("Comment text is required")
	}

	comment := &models.Comment{
		CaseID: in.CaseID,
		Name:   strings.TrimSpace(in.Name),
		Team:   strings.TrimSpace(in.Team),
		Text:   text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}
	observability.CommentsCreatedTotal.Inc()

	return s.caseSvc.GetCase(ctx, in.CaseID)
}
