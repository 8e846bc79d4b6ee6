package promotionrepo

import (
	"context"

	"fooddelivery/internal/adapters/out/postgres/dberr"
	"fooddelivery/internal/core/domain/model/promotion"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPromotionRepository implements ports.PromotionRepository using GORM.
type GormPromotionRepository struct {
	db *gorm.DB
}

func NewGormPromotionRepository(db *gorm.DB) *GormPromotionRepository {
	return &GormPromotionRepository{db: db}
}

func (r *GormPromotionRepository) Add(ctx context.Context, aggregate *promotion.Promotion) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Unique("promotion code is already in use", err)
	}
	return nil
}

func (r *GormPromotionRepository) Update(ctx context.Context, aggregate *promotion.Promotion) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PromotionDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return dberr.Unique("promotion code is already in use", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("promotion", aggregate.ID().String())
	}
	return nil
}

func (r *GormPromotionRepository) ListActive(ctx context.Context) ([]*promotion.Promotion, error) {
	var dtos []PromotionDTO
	if err := r.db.WithContext(ctx).Where("active = ?", true).Order("created_at").Find(&dtos).Error; err != nil {
		return nil, err
	}

	promotions := make([]*promotion.Promotion, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		promotions = append(promotions, p)
	}
	return promotions, nil
}
