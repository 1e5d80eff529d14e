package review

import (
	"context"

	"go.uber.org/zap"

	"homeserve/internal/domain"
	"homeserve/internal/pkg/logger"
	"homeserve/internal/repository"
)

// CatalogGate is the narrow slice of the catalog the review service needs.
type CatalogGate interface {
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
}

type Service struct {
	reviews *repository.ReviewRepository
	catalog CatalogGate
}

func NewService(reviews *repository.ReviewRepository, catalog CatalogGate) *Service {
	return &Service{reviews: reviews, catalog: catalog}
}

func (s *Service) Create(ctx context.Context, userID, serviceID int64, req CreateReviewRequest) (*domain.Review, error) {
	svc, err := s.catalog.GetServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if !domain.ValidRatingLabel(req.RatingLabel) {
		return nil, ErrInvalidLabel
	}

	rv := &domain.Review{
		UserID:      userID,
		ServiceID:   serviceID,
		Rating:      req.Rating,
		RatingLabel: req.RatingLabel,
		Comment:     req.Comment,
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}

	logger.L().Info("review created",
		zap.Int64("user_id", userID),
		zap.Int64("service_id", serviceID),
		zap.Int("rating", req.Rating),
	)
	return rv, nil
}

func (s *Service) ListByService(ctx context.Context, serviceID int64) ([]domain.Review, error) {
	return s.reviews.ListByService(ctx, serviceID)
}

func (s *Service) Get(ctx context.Context, userID, id int64) (*domain.Review, error) {
	rv, err := s.reviews.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if rv == nil {
		return nil, ErrNotFound
	}
	return rv, nil
}

func (s *Service) Update(ctx context.Context, userID, id int64, req UpdateReviewRequest) (*domain.Review, error) {
	rv, err := s.reviews.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if rv == nil {
		return nil, ErrNotFound
	}

	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, ErrInvalidRating
		}
		rv.Rating = *req.Rating
	}
	if req.RatingLabel != nil {
		if !domain.ValidRatingLabel(*req.RatingLabel) {
			return nil, ErrInvalidLabel
		}
		rv.RatingLabel = *req.RatingLabel
	}
	if req.Comment != nil {
		rv.Comment = *req.Comment
	}

	if err := s.reviews.Update(ctx, rv); err != nil {
		return nil, err
	}

	logger.L().Info("review updated", zap.Int64("review_id", id), zap.Int64("user_id", userID))
	return s.reviews.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	ok, err := s.reviews.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	logger.L().Info("review deleted", zap.Int64("review_id", id), zap.Int64("user_id", userID))
	return nil
}

func (s *Service) CreateReply(ctx context.Context, userID, reviewID int64, req ReplyRequest) (*domain.Reply, error) {
	rv, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if rv == nil {
		return nil, ErrNotFound
	}

	rp := &domain.Reply{
		UserID:   userID,
		ReviewID: reviewID,
		Comment:  req.Comment,
	}
	if err := s.reviews.CreateReply(ctx, rp); err != nil {
		return nil, err
	}

	logger.L().Info("reply created",
		zap.Int64("review_id", reviewID),
		zap.Int64("user_id", userID),
	)
	return rp, nil
}

func (s *Service) ListReplies(ctx context.Context, reviewID int64) ([]domain.Reply, error) {
	return s.reviews.ListReplies(ctx, reviewID)
}

func (s *Service) UpdateReply(ctx context.Context, userID, id int64, req ReplyRequest) (*domain.Reply, error) {
	rp, err := s.reviews.GetOwnedReply(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if rp == nil {
		return nil, ErrReplyNotFound
	}

	rp.Comment = req.Comment
	if err := s.reviews.UpdateReply(ctx, rp); err != nil {
		return nil, err
	}
	return rp, nil
}

func (s *Service) DeleteReply(ctx context.Context, userID, id int64) error {
	ok, err := s.reviews.DeleteReply(ctx, id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrReplyNotFound
	}
	return nil
}
