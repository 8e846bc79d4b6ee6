// Package deliveryrepo persists delivery aggregates. One delivery per order is
// enforced by a unique index on order_id.
package deliveryrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DeliveryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CourierID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Status      int       `gorm:"not null;index"`
	Latitude    *float64
	Longitude   *float64
	Comments    string    `gorm:"type:varchar(500)"`
	AssignedAt  time.Time `gorm:"not null"`
	StartedAt   *time.Time
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime:false"`
	DeliveredAt *time.Time
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	dto := DeliveryDTO{
		ID:          d.ID().Bytes(),
		OrderID:     d.OrderID().Bytes(),
		CourierID:   d.CourierID().Bytes(),
		Status:      int(d.Status()),
		Comments:    d.Comments(),
		AssignedAt:  d.AssignedAt(),
		StartedAt:   d.StartedAt(),
		UpdatedAt:   d.UpdatedAt(),
		DeliveredAt: d.DeliveredAt(),
	}
	if loc := d.Location(); loc != nil {
		lat, lng := loc.Latitude(), loc.Longitude()
		dto.Latitude = &lat
		dto.Longitude = &lng
	}
	return dto
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if pointErr != nil {
			return nil, pointErr
		}
		location = &point
	}

	return delivery.RestoreDelivery(delivery.Snapshot{
		ID:          id,
		OrderID:     orderID,
		CourierID:   courierID,
		Status:      delivery.Status(dto.Status),
		Location:    location,
		Comments:    dto.Comments,
		AssignedAt:  dto.AssignedAt,
		StartedAt:   dto.StartedAt,
		UpdatedAt:   dto.UpdatedAt,
		DeliveredAt: dto.DeliveredAt,
	})
}
