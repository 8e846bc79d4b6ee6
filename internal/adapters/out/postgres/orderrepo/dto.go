// Package orderrepo maps order aggregates and their line items onto the
// orders and order_items tables.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Items are written once, together with the order.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	RestaurantID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Address          string    `gorm:"type:varchar(255);not null"`
	PaymentMethod    string    `gorm:"type:varchar(20);not null"`
	Notes            string    `gorm:"type:varchar(500)"`
	EstimatedMinutes *int
	DeliveryFee      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Total            decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status           int             `gorm:"not null;index"`
	CreatedAt        time.Time       `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt        time.Time       `gorm:"not null;autoUpdateTime:false"`
	Items            []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line of an order. Position keeps the order the customer
// listed the items in.
type OrderItemDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;not null"`
	Name       string          `gorm:"type:varchar(100);not null"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Position   int             `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	items := o.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			ID:         item.ID().Bytes(),
			OrderID:    o.ID().Bytes(),
			MenuItemID: item.MenuItemID().Bytes(),
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Amount(),
			Position:   i,
		})
	}

	return OrderDTO{
		ID:               o.ID().Bytes(),
		CustomerID:       o.CustomerID().Bytes(),
		RestaurantID:     o.RestaurantID().Bytes(),
		Address:          o.Address(),
		PaymentMethod:    o.PaymentMethod(),
		Notes:            o.Notes(),
		EstimatedMinutes: o.EstimatedMinutes(),
		DeliveryFee:      o.DeliveryFee().Amount(),
		Total:            o.Total().Amount(),
		Status:           int(o.Status()),
		CreatedAt:        o.CreatedAt(),
		UpdatedAt:        o.UpdatedAt(),
		Items:            itemDTOs,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	fee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, customerID, restaurantID,
		order.Details{
			Address:          dto.Address,
			PaymentMethod:    dto.PaymentMethod,
			Notes:            dto.Notes,
			EstimatedMinutes: dto.EstimatedMinutes,
		},
		fee, total,
		order.Status(dto.Status),
		items,
		dto.CreatedAt, dto.UpdatedAt,
	)
}

func itemToDomain(dto OrderItemDTO) (order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.LineItem{}, err
	}
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.LineItem{}, err
	}
	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.LineItem{}, err
	}
	return order.RestoreLineItem(id, menuItemID, dto.Name, dto.Quantity, price)
}
