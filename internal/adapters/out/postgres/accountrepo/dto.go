// Package accountrepo persists account aggregates with gorm.
package accountrepo

import (
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO is the accounts table row. Roles are stored as a comma separated set.
type AccountDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Address      string    `gorm:"type:varchar(255)"`
	Phone        string    `gorm:"type:varchar(30)"`
	Roles        string    `gorm:"type:varchar(100);not null"`
	RegisteredAt time.Time `gorm:"not null"`
}

func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(a *account.Account) AccountDTO {
	roles := make([]string, 0, len(a.Roles()))
	for _, role := range a.Roles() {
		roles = append(roles, string(role))
	}

	return AccountDTO{
		ID:           a.ID().Bytes(),
		Name:         a.Name(),
		Email:        a.Email(),
		PasswordHash: a.PasswordHash(),
		Address:      a.Address(),
		Phone:        a.Phone(),
		Roles:        strings.Join(roles, ","),
		RegisteredAt: a.RegisteredAt(),
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	roles, err := ParseRoles(dto.Roles)
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(id, dto.Name, dto.Email, dto.PasswordHash,
		dto.Address, dto.Phone, roles, dto.RegisteredAt)
}

// ParseRoles reads the stored role set.
func ParseRoles(stored string) ([]account.Role, error) {
	parts := strings.Split(stored, ",")
	roles := make([]account.Role, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		role, err := account.ParseRole(part)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}
