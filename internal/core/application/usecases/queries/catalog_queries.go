package queries

import (
	"context"
	"database/sql"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrListCategoriesQueryIsNotConstructed = errors.New(
		"ListCategoriesQuery must be created via NewListCategoriesQuery constructor")
	ErrGetRestaurantQueryIsNotConstructed = errors.New(
		"GetRestaurantQuery must be created via NewGetRestaurantQuery constructor")
	ErrGetMenuItemQueryIsNotConstructed = errors.New(
		"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor")
)

// ListCategoriesQuery lists menu categories in display order.
type ListCategoriesQuery struct {
	activeOnly bool
	guard      guard.ConstructorGuard
}

func NewListCategoriesQuery(activeOnly bool) ListCategoriesQuery {
	return ListCategoriesQuery{activeOnly: activeOnly, guard: guard.NewConstructorGuard()}
}

func (q ListCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrListCategoriesQueryIsNotConstructed)
}

func (q ListCategoriesQuery) ActiveOnly() bool { return q.activeOnly }

type CategoryResponse struct {
	ID           kernel.UUID `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	DisplayOrder int         `json:"displayOrder"`
	Active       bool        `json:"active"`
}

type ListCategoriesQueryHandler struct {
	db *gorm.DB
}

func NewListCategoriesQueryHandler(db *gorm.DB) ListCategoriesQueryHandler {
	return ListCategoriesQueryHandler{db: db}
}

func (h ListCategoriesQueryHandler) Handle(ctx context.Context, query ListCategoriesQuery) ([]CategoryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `SELECT id, name, description, display_order, active FROM categories`
	var args []any
	if query.ActiveOnly() {
		stmt += ` WHERE active = ?`
		args = append(args, true)
	}
	stmt += ` ORDER BY display_order, name, id`

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]CategoryResponse, 0)
	for rows.Next() {
		var c CategoryResponse
		var id uuid.UUID
		if err = rows.Scan(&id, &c.Name, &c.Description, &c.DisplayOrder, &c.Active); err != nil {
			return nil, err
		}
		if c.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetRestaurantQuery reads one restaurant profile. Closed restaurants are
// returned too so their owners can reopen them.
type GetRestaurantQuery struct {
	restaurantID kernel.UUID
	guard        guard.ConstructorGuard
}

func NewGetRestaurantQuery(restaurantID kernel.UUID) (GetRestaurantQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantQuery{}, errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	return GetRestaurantQuery{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantQueryIsNotConstructed)
}

func (q GetRestaurantQuery) RestaurantID() kernel.UUID { return q.restaurantID }

type GetRestaurantQueryHandler struct {
	db *gorm.DB
}

func NewGetRestaurantQueryHandler(db *gorm.DB) GetRestaurantQueryHandler {
	return GetRestaurantQueryHandler{db: db}
}

func (h GetRestaurantQueryHandler) Handle(ctx context.Context, query GetRestaurantQuery) (RestaurantResponse, error) {
	if err := query.Validate(); err != nil {
		return RestaurantResponse{}, err
	}

	var r RestaurantResponse
	var id, ownerID uuid.UUID
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, owner_id, name, description, address, phone, opening_time, closing_time, active
		FROM restaurants
		WHERE id = ?`, query.RestaurantID().Bytes()).Row().Scan(
		&id, &ownerID, &r.Name, &r.Description, &r.Address,
		&r.Phone, &r.OpeningTime, &r.ClosingTime, &r.Active,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return RestaurantResponse{}, errs.NewObjectNotFoundError("restaurant", query.RestaurantID().String())
	}
	if err != nil {
		return RestaurantResponse{}, err
	}

	if r.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return RestaurantResponse{}, err
	}
	if r.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
		return RestaurantResponse{}, err
	}
	return r, nil
}

// GetMenuItemQuery reads one dish with its category name.
type GetMenuItemQuery struct {
	menuItemID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetMenuItemQuery(menuItemID kernel.UUID) (GetMenuItemQuery, error) {
	if err := menuItemID.Validate(); err != nil {
		return GetMenuItemQuery{}, errs.NewValueIsRequiredErrorWithCause("menu item id", err)
	}
	return GetMenuItemQuery{menuItemID: menuItemID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}

func (q GetMenuItemQuery) MenuItemID() kernel.UUID { return q.menuItemID }

type GetMenuItemQueryHandler struct {
	db *gorm.DB
}

func NewGetMenuItemQueryHandler(db *gorm.DB) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{db: db}
}

func (h GetMenuItemQueryHandler) Handle(ctx context.Context, query GetMenuItemQuery) (MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return MenuItemResponse{}, err
	}

	var item MenuItemResponse
	var id, restaurantID uuid.UUID
	var categoryID uuid.NullUUID
	var price decimal.Decimal
	err := h.db.WithContext(ctx).Raw(`
		SELECT m.id, m.restaurant_id, m.category_id, COALESCE(c.name, ''), m.name,
			m.description, m.image_url, m.price, m.available
		FROM menu_items m
		LEFT JOIN categories c ON c.id = m.category_id
		WHERE m.id = ?`, query.MenuItemID().Bytes()).Row().Scan(
		&id, &restaurantID, &categoryID, &item.Category, &item.Name,
		&item.Description, &item.ImageURL, &price, &item.Available,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return MenuItemResponse{}, errs.NewObjectNotFoundError("menu item", query.MenuItemID().String())
	}
	if err != nil {
		return MenuItemResponse{}, err
	}

	if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return MenuItemResponse{}, err
	}
	if item.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return MenuItemResponse{}, err
	}
	if categoryID.Valid {
		cID, idErr := kernel.UUIDFromBytes(categoryID.UUID[:])
		if idErr != nil {
			return MenuItemResponse{}, idErr
		}
		item.CategoryID = &cID
	}
	item.Price = price.StringFixed(kernel.MoneyScale)
	return item, nil
}
