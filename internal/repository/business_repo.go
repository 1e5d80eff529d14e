package repository

import (
	"context"

	"gorm.io/gorm"

	"homeserve/internal/domain"
)

type BusinessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) *BusinessRepository {
	return &BusinessRepository{db: db}
}

func (r *BusinessRepository) Create(ctx context.Context, b *domain.PopularBusiness) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BusinessRepository) GetByID(ctx context.Context, id int64) (*domain.PopularBusiness, error) {
	var b domain.PopularBusiness
	tx := r.db.WithContext(ctx).Preload("Category").First(&b, id)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &b, nil
}

func (r *BusinessRepository) List(ctx context.Context) ([]domain.PopularBusiness, error) {
	var out []domain.PopularBusiness
	tx := r.db.WithContext(ctx).Preload("Category").Order("id").Find(&out)
	return out, tx.Error
}

// GetOrCreateCategory resolves a category by name, creating it on first use.
func (r *BusinessRepository) GetOrCreateCategory(ctx context.Context, name string) (*domain.BusinessCategory, error) {
	var c domain.BusinessCategory
	tx := r.db.WithContext(ctx).Where("category_name = ?", name).First(&c)
	if tx.Error == nil {
		return &c, nil
	}
	if tx.Error != gorm.ErrRecordNotFound {
		return nil, tx.Error
	}

	c = domain.BusinessCategory{Name: name}
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
