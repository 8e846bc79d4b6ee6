package services

import (
	"strings"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/pkg/errs"
)

// AccessPolicy decides whether a principal may act on an aggregate.
// Every check returns nil for ADMIN and an OwnershipViolationError when access is denied.
//
// Rules:
//   - restaurants, their menu and promotions are managed by the owning RESTAURANTE account
//   - an order is confirmed, prepared and marked ready by its restaurant
//   - an order is cancelled by its customer or its restaurant
//   - deliveries are dispatched (assigned, reassigned, deleted) by the order's restaurant
//   - deliveries are moved and located by the REPARTIDOR they are assigned to
//   - a rating is written and revised by the customer who placed the order
type AccessPolicy struct{}

func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// RequireRole fails unless the principal holds one of roles.
func (AccessPolicy) RequireRole(p account.Principal, roles ...account.Role) error {
	if p.IsAdmin() || p.HasAnyRole(roles...) {
		return nil
	}
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.String())
	}
	return errs.NewOwnershipViolationError("role", strings.Join(names, "|"), p.AccountID())
}

func (AccessPolicy) CheckRestaurantManagement(p account.Principal, r *catalog.Restaurant) error {
	if p.IsAdmin() {
		return nil
	}
	if p.HasRole(account.RoleRestaurant) && r.IsOwnedBy(p.AccountID()) {
		return nil
	}
	return errs.NewOwnershipViolationError("restaurant", r.ID(), p.AccountID())
}

// CheckOrderStatusChange verifies who may request target on o. r is the restaurant the order was placed with.
func (ap AccessPolicy) CheckOrderStatusChange(
	p account.Principal,
	o *order.Order,
	r *catalog.Restaurant,
	target order.Status,
) error {
	if p.IsAdmin() {
		return nil
	}
	restaurantOwner := ap.isRestaurantOf(p, o, r)
	if restaurantOwner {
		return nil
	}
	if target == order.Cancelled && p.HasRole(account.RoleCustomer) && o.IsPlacedBy(p.AccountID()) {
		return nil
	}
	return errs.NewOwnershipViolationError("order", o.ID(), p.AccountID())
}

// CheckDeliveryDispatch guards assignment, reassignment and deletion of the delivery of o.
func (ap AccessPolicy) CheckDeliveryDispatch(p account.Principal, o *order.Order, r *catalog.Restaurant) error {
	if p.IsAdmin() || ap.isRestaurantOf(p, o, r) {
		return nil
	}
	return errs.NewOwnershipViolationError("order", o.ID(), p.AccountID())
}

// CheckCourierAccount passes for the REPARTIDOR account behind c.
// It guards delivery transitions and location updates as well as the courier's own status.
func (AccessPolicy) CheckCourierAccount(p account.Principal, c *courier.Courier) error {
	if p.IsAdmin() {
		return nil
	}
	if p.HasRole(account.RoleCourier) && c.AccountID().IsEqual(p.AccountID()) {
		return nil
	}
	return errs.NewOwnershipViolationError("courier", c.ID(), p.AccountID())
}

// CheckRatingAuthor passes for the customer who placed o. ADMIN is not exempt.
func (AccessPolicy) CheckRatingAuthor(p account.Principal, o *order.Order) error {
	if p.HasRole(account.RoleCustomer) && o.IsPlacedBy(p.AccountID()) {
		return nil
	}
	return errs.NewOwnershipViolationError("order", o.ID(), p.AccountID())
}

func (AccessPolicy) CheckRatingRevision(p account.Principal, r *rating.Rating) error {
	if r.IsAuthoredBy(p.AccountID()) {
		return nil
	}
	return errs.NewOwnershipViolationError("rating", r.ID(), p.AccountID())
}

func (AccessPolicy) isRestaurantOf(p account.Principal, o *order.Order, r *catalog.Restaurant) bool {
	return r != nil &&
		p.HasRole(account.RoleRestaurant) &&
		r.ID().IsEqual(o.RestaurantID()) &&
		r.IsOwnedBy(p.AccountID())
}
