package business

import (
	"context"
	"mime/multipart"

	"go.uber.org/zap"

	"homeserve/internal/domain"
	"homeserve/internal/pkg/logger"
	"homeserve/internal/pkg/storage"
	"homeserve/internal/repository"
)

type Service struct {
	businesses *repository.BusinessRepository
	uploader   storage.Uploader
}

func NewService(businesses *repository.BusinessRepository, uploader storage.Uploader) *Service {
	return &Service{businesses: businesses, uploader: uploader}
}

// Register creates a directory entry, resolving the category by name and
// creating it on first use.
func (s *Service) Register(ctx context.Context, req RegisterBusinessRequest, image *multipart.FileHeader) (*domain.PopularBusiness, error) {
	cat, err := s.businesses.GetOrCreateCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	b := &domain.PopularBusiness{
		CategoryID: cat.ID,
		Name:       req.Name,
		Location:   req.Location,
	}

	if image != nil {
		url, err := s.uploader.Upload(ctx, image, "business_images")
		if err != nil {
			return nil, err
		}
		b.ImageURL = url
	}

	if err := s.businesses.Create(ctx, b); err != nil {
		return nil, err
	}

	logger.L().Info("business registered",
		zap.Int64("business_id", b.ID),
		zap.String("category", cat.Name),
	)
	return s.businesses.GetByID(ctx, b.ID)
}

func (s *Service) List(ctx context.Context) ([]domain.PopularBusiness, error) {
	return s.businesses.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.PopularBusiness, error) {
	b, err := s.businesses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	return b, nil
}
