package catalog

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
	repo     *repository.CatalogRepository
	uploader storage.Uploader
}

func NewService(repo *repository.CatalogRepository, uploader storage.Uploader) *Service {
	return &Service{repo: repo, uploader: uploader}
}

func (s *Service) List(ctx context.Context, category string) ([]domain.Service, error) {
	if category != "" && category != "all" && !domain.ServiceCategory(category).Valid() {
		return nil, ErrInvalidCategory
	}
	return s.repo.ListServices(ctx, category)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := s.repo.GetServiceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrNotFound
	}
	return svc, nil
}

func (s *Service) Create(ctx context.Context, req CreateServiceRequest) (*domain.Service, error) {
	category := domain.ServiceCategory(req.Category)
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}

	svc := &domain.Service{
		Category:    category,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
	}
	for _, w := range req.WorkItems {
		if w.Price < 0 {
			return nil, ErrInvalidPrice
		}
		svc.WorkItems = append(svc.WorkItems, domain.WorkItem{Name: w.Name, Price: w.Price})
	}

	if err := s.repo.CreateService(ctx, svc); err != nil {
		return nil, err
	}

	logger.L().Info("service created",
		zap.Int64("service_id", svc.ID),
		zap.String("category", string(svc.Category)),
	)
	return svc, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateServiceRequest) (*domain.Service, error) {
	svc, err := s.repo.GetServiceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrNotFound
	}

	// Category is fixed at creation; the update surface ignores attempts to
	// change it.
	if req.Title != nil {
		svc.Title = *req.Title
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Location != nil {
		svc.Location = *req.Location
	}

	if err := s.repo.UpdateService(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	ok, err := s.repo.DeleteService(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	logger.L().Info("service deleted", zap.Int64("service_id", id))
	return nil
}

func (s *Service) AddWorkItem(ctx context.Context, serviceID int64, req WorkItemInput) (*domain.WorkItem, error) {
	svc, err := s.repo.GetServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrNotFound
	}
	if req.Price < 0 {
		return nil, ErrInvalidPrice
	}

	w := &domain.WorkItem{ServiceID: &serviceID, Name: req.Name, Price: req.Price}
	if err := s.repo.CreateWorkItem(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *Service) UploadImage(ctx context.Context, serviceID int64, fileHeader *multipart.FileHeader) (*domain.ServiceImage, error) {
	svc, err := s.repo.GetServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrNotFound
	}

	url, err := s.uploader.Upload(ctx, fileHeader, "service_images")
	if err != nil {
		return nil, err
	}

	img := &domain.ServiceImage{ServiceID: serviceID, URL: url}
	if err := s.repo.AddImage(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *Service) DeleteImage(ctx context.Context, imageID int64) error {
	img, err := s.repo.GetImageByID(ctx, imageID)
	if err != nil {
		return err
	}
	if img == nil {
		return ErrImageNotFound
	}

	if err := s.repo.DeleteImage(ctx, imageID); err != nil {
		return err
	}

	// Best effort: a stale object in the bucket is not worth failing the
	// request over.
	if err := s.uploader.Delete(ctx, img.URL); err != nil {
		logger.L().Warn("failed to delete stored image",
			zap.Int64("image_id", imageID),
			zap.Error(err),
		)
	}
	return nil
}
