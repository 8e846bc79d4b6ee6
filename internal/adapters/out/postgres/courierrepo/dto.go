// Package courierrepo maps courier aggregates onto the couriers table.
package courierrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO is the couriers row. Each account backs at most one courier.
type CourierDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Vehicle      string    `gorm:"type:varchar(50);not null"`
	Plate        string    `gorm:"type:varchar(20)"`
	Available    bool      `gorm:"not null"`
	Status       int       `gorm:"not null;index"`
	RegisteredAt time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (CourierDTO) TableName() string {
	return "couriers"
}

func fromDomain(c *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:           c.ID().Bytes(),
		AccountID:    c.AccountID().Bytes(),
		Vehicle:      c.Vehicle(),
		Plate:        c.Plate(),
		Available:    c.IsAvailable(),
		Status:       int(c.Status()),
		RegisteredAt: c.RegisteredAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(
		id, accountID,
		dto.Vehicle, dto.Plate,
		dto.Available,
		courier.Status(dto.Status),
		dto.RegisteredAt, dto.UpdatedAt,
	)
}
