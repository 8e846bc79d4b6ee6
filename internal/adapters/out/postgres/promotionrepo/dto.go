// Package promotionrepo persists restaurant promotions.
package promotionrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/promotion"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PromotionDTO is the promotions row. Code is NULL for promotions without one
// so that the unique index only covers real codes.
type PromotionDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(100);not null"`
	Description  string          `gorm:"type:varchar(500)"`
	Kind         string          `gorm:"type:varchar(20);not null"`
	Value        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Code         *string         `gorm:"type:varchar(20);uniqueIndex"`
	StartsAt     time.Time       `gorm:"not null"`
	EndsAt       time.Time       `gorm:"not null;index"`
	MinAmount    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	MaxUses      *int
	CurrentUses  int       `gorm:"not null"`
	Active       bool      `gorm:"not null;index"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime:false"`
}

func (PromotionDTO) TableName() string {
	return "promotions"
}

func fromDomain(p *promotion.Promotion) PromotionDTO {
	terms := p.Terms()

	var code *string
	if terms.Code != "" {
		c := terms.Code
		code = &c
	}

	return PromotionDTO{
		ID:           p.ID().Bytes(),
		RestaurantID: p.RestaurantID().Bytes(),
		Name:         terms.Name,
		Description:  terms.Description,
		Kind:         string(terms.Kind),
		Value:        terms.Value,
		Code:         code,
		StartsAt:     terms.StartsAt,
		EndsAt:       terms.EndsAt,
		MinAmount:    terms.MinAmount.Amount(),
		MaxUses:      terms.MaxUses,
		CurrentUses:  p.CurrentUses(),
		Active:       p.IsActive(),
		CreatedAt:    p.CreatedAt(),
	}
}

func toDomain(dto PromotionDTO) (*promotion.Promotion, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	kind, err := promotion.ParseKind(dto.Kind)
	if err != nil {
		return nil, err
	}
	minAmount, err := kernel.NewMoney(dto.MinAmount)
	if err != nil {
		return nil, err
	}

	var code string
	if dto.Code != nil {
		code = *dto.Code
	}

	return promotion.RestorePromotion(id, restaurantID, promotion.Terms{
		Name:        dto.Name,
		Description: dto.Description,
		Kind:        kind,
		Value:       dto.Value,
		Code:        code,
		StartsAt:    dto.StartsAt,
		EndsAt:      dto.EndsAt,
		MinAmount:   minAmount,
		MaxUses:     dto.MaxUses,
	}, dto.Active, dto.CurrentUses, dto.CreatedAt)
}
