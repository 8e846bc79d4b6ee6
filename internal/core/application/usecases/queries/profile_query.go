package queries

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetProfileQueryIsNotConstructed = errors.New(
	"GetProfileQuery must be created via NewGetProfileQuery constructor")

// GetProfileQuery reads the account of the caller.
type GetProfileQuery struct {
	principal account.Principal
	guard     guard.ConstructorGuard
}

func NewGetProfileQuery(principal account.Principal) (GetProfileQuery, error) {
	if err := principal.Validate(); err != nil {
		return GetProfileQuery{}, err
	}
	return GetProfileQuery{principal: principal, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

func (q GetProfileQuery) Principal() account.Principal { return q.principal }

// ProfileResponse never carries the password hash.
type ProfileResponse struct {
	ID           kernel.UUID `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Address      string      `json:"address,omitempty"`
	Phone        string      `json:"phone,omitempty"`
	Roles        []string    `json:"roles"`
	RegisteredAt time.Time   `json:"registeredAt"`
}

type GetProfileQueryHandler struct {
	db *gorm.DB
}

func NewGetProfileQueryHandler(db *gorm.DB) GetProfileQueryHandler {
	return GetProfileQueryHandler{db: db}
}

func (h GetProfileQueryHandler) Handle(ctx context.Context, query GetProfileQuery) (ProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return ProfileResponse{}, err
	}

	accountID := query.Principal().AccountID()
	var res ProfileResponse
	var id uuid.UUID
	var roles string
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, email, address, phone, roles, registered_at
		FROM accounts
		WHERE id = ?`, accountID.Bytes()).Row().Scan(
		&id, &res.Name, &res.Email, &res.Address, &res.Phone, &roles, &res.RegisteredAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ProfileResponse{}, errs.NewObjectNotFoundError("account", accountID.String())
	}
	if err != nil {
		return ProfileResponse{}, err
	}

	if res.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ProfileResponse{}, err
	}
	res.Roles = strings.Split(roles, ",")
	res.RegisteredAt = res.RegisteredAt.UTC()
	return res, nil
}
