package repository

import (
	"context"

	"gorm.io/gorm"

	"homeserve/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewRepository) ListByService(ctx context.Context, serviceID int64) ([]domain.Review, error) {
	var out []domain.Review
	tx := r.db.WithContext(ctx).
		Preload("Replies").
		Where("service_id = ?", serviceID).
		Order("created_at DESC").
		Find(&out)
	return out, tx.Error
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var rv domain.Review
	tx := r.db.WithContext(ctx).Preload("Replies").First(&rv, id)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &rv, nil
}

// GetOwned scopes a review to its author for the mutation surface.
func (r *ReviewRepository) GetOwned(ctx context.Context, id, userID int64) (*domain.Review, error) {
	var rv domain.Review
	tx := r.db.WithContext(ctx).
		Preload("Replies").
		Where("id = ? AND user_id = ?", id, userID).
		First(&rv)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &rv, nil
}

func (r *ReviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Model(&domain.Review{ID: rv.ID}).
		Select("rating", "rating_label", "comment").
		Updates(map[string]any{
			"rating":       rv.Rating,
			"rating_label": rv.RatingLabel,
			"comment":      rv.Comment,
		}).Error
}

func (r *ReviewRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.Review{})
	return tx.RowsAffected > 0, tx.Error
}

func (r *ReviewRepository) CreateReply(ctx context.Context, rp *domain.Reply) error {
	return r.db.WithContext(ctx).Create(rp).Error
}

func (r *ReviewRepository) ListReplies(ctx context.Context, reviewID int64) ([]domain.Reply, error) {
	var out []domain.Reply
	tx := r.db.WithContext(ctx).
		Where("review_id = ?", reviewID).
		Order("created_at").
		Find(&out)
	return out, tx.Error
}

func (r *ReviewRepository) GetOwnedReply(ctx context.Context, id, userID int64) (*domain.Reply, error) {
	var rp domain.Reply
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&rp)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &rp, nil
}

func (r *ReviewRepository) UpdateReply(ctx context.Context, rp *domain.Reply) error {
	return r.db.WithContext(ctx).Model(&domain.Reply{ID: rp.ID}).
		Update("comment", rp.Comment).Error
}

func (r *ReviewRepository) DeleteReply(ctx context.Context, id, userID int64) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.Reply{})
	return tx.RowsAffected > 0, tx.Error
}
