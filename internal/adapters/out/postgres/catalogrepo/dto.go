// Package catalogrepo persists restaurants, categories and menu items with gorm.
package catalogrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RestaurantDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:varchar(500)"`
	Address     string    `gorm:"type:varchar(255);not null"`
	Phone       string    `gorm:"type:varchar(30)"`
	OpeningTime string    `gorm:"type:varchar(5)"`
	ClosingTime string    `gorm:"type:varchar(5)"`
	Active      bool      `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime:false"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

type CategoryDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description  string    `gorm:"type:varchar(500)"`
	DisplayOrder int       `gorm:"not null"`
	Active       bool      `gorm:"not null"`
}

func (CategoryDTO) TableName() string {
	return "categories"
}

type MenuItemDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID   *uuid.UUID      `gorm:"type:uuid;index"`
	Name         string          `gorm:"type:varchar(100);not null"`
	Description  string          `gorm:"type:varchar(500)"`
	ImageURL     string          `gorm:"type:varchar(500)"`
	Price        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Available    bool            `gorm:"not null"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func restaurantFromDomain(r *catalog.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:          r.ID().Bytes(),
		OwnerID:     r.OwnerID().Bytes(),
		Name:        r.Name(),
		Description: r.Description(),
		Address:     r.Address(),
		Phone:       r.Phone(),
		OpeningTime: r.OpeningTime(),
		ClosingTime: r.ClosingTime(),
		Active:      r.IsActive(),
		CreatedAt:   r.CreatedAt(),
	}
}

func restaurantToDomain(dto RestaurantDTO) (*catalog.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreRestaurant(id, ownerID, catalog.RestaurantProfile{
		Name:        dto.Name,
		Description: dto.Description,
		Address:     dto.Address,
		Phone:       dto.Phone,
		OpeningTime: dto.OpeningTime,
		ClosingTime: dto.ClosingTime,
	}, dto.Active, dto.CreatedAt)
}

func categoryFromDomain(c *catalog.Category) CategoryDTO {
	return CategoryDTO{
		ID:           c.ID().Bytes(),
		Name:         c.Name(),
		Description:  c.Description(),
		DisplayOrder: c.DisplayOrder(),
		Active:       c.IsActive(),
	}
}

func categoryToDomain(dto CategoryDTO) (*catalog.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return catalog.NewCategory(id, dto.Name, dto.Description, dto.DisplayOrder, dto.Active)
}

func menuItemFromDomain(m *catalog.MenuItem) MenuItemDTO {
	var categoryID *uuid.UUID
	if id := m.CategoryID(); id != nil {
		raw := id.Bytes()
		categoryID = &raw
	}

	return MenuItemDTO{
		ID:           m.ID().Bytes(),
		RestaurantID: m.RestaurantID().Bytes(),
		CategoryID:   categoryID,
		Name:         m.Name(),
		Description:  m.Description(),
		ImageURL:     m.ImageURL(),
		Price:        m.Price().Amount(),
		Available:    m.IsAvailable(),
	}
}

func menuItemToDomain(dto MenuItemDTO) (*catalog.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var categoryID *kernel.UUID
	if dto.CategoryID != nil {
		cID, categoryErr := kernel.UUIDFromBytes((*dto.CategoryID)[:])
		if categoryErr != nil {
			return nil, categoryErr
		}
		categoryID = &cID
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreMenuItem(id, restaurantID, catalog.MenuItemDetails{
		CategoryID:  categoryID,
		Name:        dto.Name,
		Description: dto.Description,
		ImageURL:    dto.ImageURL,
	}, price, dto.Available)
}
