package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrListRestaurantsQueryIsNotConstructed = errors.New(
		"ListRestaurantsQuery must be created via NewListRestaurantsQuery constructor")
	ErrGetRestaurantMenuQueryIsNotConstructed = errors.New(
		"GetRestaurantMenuQuery must be created via NewGetRestaurantMenuQuery constructor")
	ErrGetRestaurantRatingQueryIsNotConstructed = errors.New(
		"GetRestaurantRatingQuery must be created via NewGetRestaurantRatingQuery constructor")
	ErrGetRestaurantSalesQueryIsNotConstructed = errors.New(
		"GetRestaurantSalesQuery must be created via NewGetRestaurantSalesQuery constructor")
)

// ListRestaurantsQuery lists restaurants by name, optionally only the active ones.
type ListRestaurantsQuery struct {
	activeOnly bool
	guard      guard.ConstructorGuard
}

func NewListRestaurantsQuery(activeOnly bool) ListRestaurantsQuery {
	return ListRestaurantsQuery{activeOnly: activeOnly, guard: guard.NewConstructorGuard()}
}

func (q ListRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrListRestaurantsQueryIsNotConstructed)
}

func (q ListRestaurantsQuery) ActiveOnly() bool { return q.activeOnly }

type RestaurantResponse struct {
	ID          kernel.UUID `json:"id"`
	OwnerID     kernel.UUID `json:"ownerId"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Address     string      `json:"address"`
	Phone       string      `json:"phone"`
	OpeningTime string      `json:"openingTime"`
	ClosingTime string      `json:"closingTime"`
	Active      bool        `json:"active"`
}

type ListRestaurantsQueryHandler struct {
	db *gorm.DB
}

func NewListRestaurantsQueryHandler(db *gorm.DB) ListRestaurantsQueryHandler {
	return ListRestaurantsQueryHandler{db: db}
}

func (h ListRestaurantsQueryHandler) Handle(ctx context.Context, query ListRestaurantsQuery) ([]RestaurantResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT id, owner_id, name, description, address, phone, opening_time, closing_time, active
		FROM restaurants`
	var args []any
	if query.ActiveOnly() {
		stmt += ` WHERE active = ?`
		args = append(args, true)
	}
	stmt += ` ORDER BY name, id`

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := make([]RestaurantResponse, 0)
	for rows.Next() {
		var r RestaurantResponse
		var id, ownerID uuid.UUID
		if err = rows.Scan(
			&id, &ownerID, &r.Name, &r.Description, &r.Address,
			&r.Phone, &r.OpeningTime, &r.ClosingTime, &r.Active,
		); err != nil {
			return nil, err
		}
		if r.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if r.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return restaurants, nil
}

// GetRestaurantMenuQuery lists the menu items of one restaurant.
type GetRestaurantMenuQuery struct {
	restaurantID  kernel.UUID
	availableOnly bool
	guard         guard.ConstructorGuard
}

func NewGetRestaurantMenuQuery(restaurantID kernel.UUID, availableOnly bool) (GetRestaurantMenuQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantMenuQuery{}, errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	return GetRestaurantMenuQuery{
		restaurantID:  restaurantID,
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q GetRestaurantMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantMenuQueryIsNotConstructed)
}

func (q GetRestaurantMenuQuery) RestaurantID() kernel.UUID { return q.restaurantID }
func (q GetRestaurantMenuQuery) AvailableOnly() bool       { return q.availableOnly }

type MenuItemResponse struct {
	ID           kernel.UUID  `json:"id"`
	RestaurantID kernel.UUID  `json:"restaurantId"`
	CategoryID   *kernel.UUID `json:"categoryId,omitempty"`
	Category     string       `json:"category,omitempty"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	ImageURL     string       `json:"imageUrl,omitempty"`
	Price        string       `json:"price"`
	Available    bool         `json:"available"`
}

type GetRestaurantMenuQueryHandler struct {
	db *gorm.DB
}

func NewGetRestaurantMenuQueryHandler(db *gorm.DB) GetRestaurantMenuQueryHandler {
	return GetRestaurantMenuQueryHandler{db: db}
}

// Handle returns the menu sorted by category display order, then name.
// Items without a category come last.
func (h GetRestaurantMenuQueryHandler) Handle(ctx context.Context, query GetRestaurantMenuQuery) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := requireRestaurant(ctx, h.db, query.RestaurantID()); err != nil {
		return nil, err
	}

	stmt := `
		SELECT m.id, m.restaurant_id, m.category_id, COALESCE(c.name, ''), m.name,
			m.description, m.image_url, m.price, m.available
		FROM menu_items m
		LEFT JOIN categories c ON c.id = m.category_id
		WHERE m.restaurant_id = ?`
	args := []any{query.RestaurantID().Bytes()}
	if query.AvailableOnly() {
		stmt += ` AND m.available = ?`
		args = append(args, true)
	}
	stmt += ` ORDER BY CASE WHEN c.id IS NULL THEN 1 ELSE 0 END, c.display_order, m.name, m.id`

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]MenuItemResponse, 0)
	for rows.Next() {
		var item MenuItemResponse
		var id, restaurantID uuid.UUID
		var categoryID uuid.NullUUID
		var price decimal.Decimal
		if err = rows.Scan(
			&id, &restaurantID, &categoryID, &item.Category, &item.Name,
			&item.Description, &item.ImageURL, &price, &item.Available,
		); err != nil {
			return nil, err
		}
		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
			return nil, err
		}
		if categoryID.Valid {
			cID, idErr := kernel.UUIDFromBytes(categoryID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			item.CategoryID = &cID
		}
		item.Price = price.StringFixed(kernel.MoneyScale)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// GetRestaurantRatingQuery summarizes the ratings of one restaurant.
type GetRestaurantRatingQuery struct {
	restaurantID kernel.UUID
	guard        guard.ConstructorGuard
}

func NewGetRestaurantRatingQuery(restaurantID kernel.UUID) (GetRestaurantRatingQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantRatingQuery{}, errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	return GetRestaurantRatingQuery{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRestaurantRatingQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantRatingQueryIsNotConstructed)
}

func (q GetRestaurantRatingQuery) RestaurantID() kernel.UUID { return q.restaurantID }

type RestaurantRatingResponse struct {
	RestaurantID kernel.UUID `json:"restaurantId"`
	Average      float64     `json:"average"`
	Count        int64       `json:"count"`
}

type GetRestaurantRatingQueryHandler struct {
	db *gorm.DB
}

func NewGetRestaurantRatingQueryHandler(db *gorm.DB) GetRestaurantRatingQueryHandler {
	return GetRestaurantRatingQueryHandler{db: db}
}

// Handle returns the average score rounded to two decimals. A restaurant
// without ratings has average 0 and count 0.
func (h GetRestaurantRatingQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantRatingQuery,
) (RestaurantRatingResponse, error) {
	if err := query.Validate(); err != nil {
		return RestaurantRatingResponse{}, err
	}
	if err := requireRestaurant(ctx, h.db, query.RestaurantID()); err != nil {
		return RestaurantRatingResponse{}, err
	}

	var average float64
	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(AVG(score), 0), COUNT(*)
		FROM ratings
		WHERE restaurant_id = ?`, query.RestaurantID().Bytes()).Row().Scan(&average, &count)
	if err != nil {
		return RestaurantRatingResponse{}, err
	}

	return RestaurantRatingResponse{
		RestaurantID: query.RestaurantID(),
		Average:      decimal.NewFromFloat(average).Round(2).InexactFloat64(),
		Count:        count,
	}, nil
}

// GetRestaurantSalesQuery totals DELIVERED orders of a restaurant placed in [from, to).
type GetRestaurantSalesQuery struct {
	principal    account.Principal
	restaurantID kernel.UUID
	from         time.Time
	to           time.Time
	guard        guard.ConstructorGuard
}

func NewGetRestaurantSalesQuery(
	principal account.Principal,
	restaurantID kernel.UUID,
	from, to time.Time,
) (GetRestaurantSalesQuery, error) {
	var idErr, windowErr error
	if err := restaurantID.Validate(); err != nil {
		idErr = errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	if from.IsZero() || to.IsZero() {
		windowErr = errs.NewValueIsRequiredError("sales window")
	} else if !to.After(from) {
		windowErr = errs.NewValueIsInvalidErrorWithCause("sales window", errors.New("to must be after from"))
	}
	if err := errors.Join(principal.Validate(), idErr, windowErr); err != nil {
		return GetRestaurantSalesQuery{}, err
	}

	return GetRestaurantSalesQuery{
		principal:    principal,
		restaurantID: restaurantID,
		from:         from.UTC(),
		to:           to.UTC(),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetRestaurantSalesQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantSalesQueryIsNotConstructed)
}

func (q GetRestaurantSalesQuery) Principal() account.Principal { return q.principal }
func (q GetRestaurantSalesQuery) RestaurantID() kernel.UUID    { return q.restaurantID }
func (q GetRestaurantSalesQuery) From() time.Time              { return q.from }
func (q GetRestaurantSalesQuery) To() time.Time                { return q.to }

type RestaurantSalesResponse struct {
	RestaurantID kernel.UUID `json:"restaurantId"`
	From         time.Time   `json:"from"`
	To           time.Time   `json:"to"`
	Orders       int64       `json:"orders"`
	Total        string      `json:"total"`
}

type GetRestaurantSalesQueryHandler struct {
	db *gorm.DB
}

func NewGetRestaurantSalesQueryHandler(db *gorm.DB) GetRestaurantSalesQueryHandler {
	return GetRestaurantSalesQueryHandler{db: db}
}

// Handle is allowed for the restaurant owner and ADMIN.
func (h GetRestaurantSalesQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantSalesQuery,
) (RestaurantSalesResponse, error) {
	if err := query.Validate(); err != nil {
		return RestaurantSalesResponse{}, err
	}

	ownerID, err := restaurantOwner(ctx, h.db, query.RestaurantID())
	if err != nil {
		return RestaurantSalesResponse{}, err
	}
	p := query.Principal()
	if !p.IsAdmin() && !(p.HasRole(account.RoleRestaurant) && ownerID.IsEqual(p.AccountID())) {
		return RestaurantSalesResponse{}, errs.NewOwnershipViolationError("restaurant", query.RestaurantID(), p.AccountID())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT total
		FROM orders
		WHERE restaurant_id = ? AND status = ? AND created_at >= ? AND created_at < ?`,
		query.RestaurantID().Bytes(), int(order.Delivered), query.From(), query.To(),
	).Rows()
	if err != nil {
		return RestaurantSalesResponse{}, err
	}
	defer rows.Close()

	// Summed in Go so the result is exact on every database.
	total := decimal.Zero
	var count int64
	for rows.Next() {
		var amount decimal.Decimal
		if err = rows.Scan(&amount); err != nil {
			return RestaurantSalesResponse{}, err
		}
		total = total.Add(amount)
		count++
	}
	if err = rows.Err(); err != nil {
		return RestaurantSalesResponse{}, err
	}

	return RestaurantSalesResponse{
		RestaurantID: query.RestaurantID(),
		From:         query.From(),
		To:           query.To(),
		Orders:       count,
		Total:        total.StringFixed(kernel.MoneyScale),
	}, nil
}

func requireRestaurant(ctx context.Context, db *gorm.DB, id kernel.UUID) error {
	_, err := restaurantOwner(ctx, db, id)
	return err
}

func restaurantOwner(ctx context.Context, db *gorm.DB, id kernel.UUID) (kernel.UUID, error) {
	var ownerID uuid.UUID
	err := db.WithContext(ctx).Raw(`SELECT owner_id FROM restaurants WHERE id = ?`, id.Bytes()).Row().Scan(&ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return kernel.UUID{}, errs.NewObjectNotFoundError("restaurant", id.String())
	}
	if err != nil {
		return kernel.UUID{}, err
	}
	return kernel.UUIDFromBytes(ownerID[:])
}
