// Package ratingrepo persists ratings. An order can be rated once.
package ratingrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rating"

	"github.com/google/uuid"
)

type RatingDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Score        int       `gorm:"type:smallint;not null"`
	Comment      string    `gorm:"type:varchar(500)"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (RatingDTO) TableName() string {
	return "ratings"
}

func fromDomain(r *rating.Rating) RatingDTO {
	return RatingDTO{
		ID:           r.ID().Bytes(),
		OrderID:      r.OrderID().Bytes(),
		CustomerID:   r.CustomerID().Bytes(),
		RestaurantID: r.RestaurantID().Bytes(),
		Score:        r.Score(),
		Comment:      r.Comment(),
		CreatedAt:    r.CreatedAt(),
		UpdatedAt:    r.UpdatedAt(),
	}
}

func toDomain(dto RatingDTO) (*rating.Rating, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.OrderID, dto.CustomerID, dto.RestaurantID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return rating.RestoreRating(ids[0], ids[1], ids[2], ids[3], dto.Score, dto.Comment, dto.CreatedAt, dto.UpdatedAt)
}
