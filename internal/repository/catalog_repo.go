package repository

import (
	"context"

	"gorm.io/gorm"

	"homeserve/internal/domain"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// GetServiceByID resolves a service or reports a miss as (nil, nil).
func (r *CatalogRepository) GetServiceByID(ctx context.Context, id int64) (*domain.Service, error) {
	var s domain.Service
	tx := r.db.WithContext(ctx).
		Preload("WorkItems").
		Preload("Images").
		Preload("Reviews.Replies").
		First(&s, id)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &s, nil
}

// ListServices returns the catalog, optionally filtered by category.
// "all" and the empty string mean no filter.
func (r *CatalogRepository) ListServices(ctx context.Context, category string) ([]domain.Service, error) {
	q := r.db.WithContext(ctx).
		Preload("WorkItems").
		Preload("Images").
		Preload("Reviews.Replies")
	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}

	var out []domain.Service
	tx := q.Order("id").Find(&out)
	return out, tx.Error
}

func (r *CatalogRepository) CreateService(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *CatalogRepository) UpdateService(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// DeleteService removes a service and its dependents. Work items are
// detached rather than deleted so bookings referencing them stay intact.
func (r *CatalogRepository) DeleteService(ctx context.Context, id int64) (bool, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.First(&domain.Service{}, id)
		if res.Error != nil {
			return res.Error
		}
		if err := tx.Model(&domain.WorkItem{}).Where("service_id = ?", id).
			Update("service_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("service_id = ?", id).Delete(&domain.ServiceImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("service_id = ?", id).Delete(&domain.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Service{}, id).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GetWorkItemsByIDs returns the subset of ids that exist; the caller
// detects missing items by comparing lengths.
func (r *CatalogRepository) GetWorkItemsByIDs(ctx context.Context, ids []int64) ([]domain.WorkItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []domain.WorkItem
	tx := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out)
	return out, tx.Error
}

func (r *CatalogRepository) CreateWorkItem(ctx context.Context, w *domain.WorkItem) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *CatalogRepository) AddImage(ctx context.Context, img *domain.ServiceImage) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *CatalogRepository) GetImageByID(ctx context.Context, id int64) (*domain.ServiceImage, error) {
	var img domain.ServiceImage
	tx := r.db.WithContext(ctx).First(&img, id)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &img, nil
}

func (r *CatalogRepository) DeleteImage(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.ServiceImage{}, id).Error
}
