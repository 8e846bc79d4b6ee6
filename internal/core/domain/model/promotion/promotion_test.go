package promotion_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/promotion"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func terms() promotion.Terms {
	maxUses := 2
	return promotion.Terms{
		Name:      "Martes de hamburguesa",
		Kind:      promotion.KindPercentage,
		Value:     decimal.NewFromInt(15),
		Code:      "burger15",
		StartsAt:  start,
		EndsAt:    start.Add(7 * 24 * time.Hour),
		MinAmount: kernel.ZeroMoney(),
		MaxUses:   &maxUses,
	}
}

func TestNewPromotion(t *testing.T) {
	p, err := promotion.NewPromotion(kernel.NewUUID(), kernel.NewUUID(), terms(), start)

	require.NoError(t, err)
	assert.True(t, p.IsActive())
	assert.Equal(t, "BURGER15", p.Terms().Code)
	assert.True(t, p.IsRedeemableAt(start.Add(time.Hour)))
	assert.False(t, p.IsRedeemableAt(start.Add(-time.Hour)))
}

func TestNewPromotion_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*promotion.Terms)
		target error
	}{
		{name: "missing name", mutate: func(tr *promotion.Terms) { tr.Name = "" }, target: errs.ErrValueIsRequired},
		{name: "unknown kind", mutate: func(tr *promotion.Terms) { tr.Kind = "BOGO" }, target: errs.ErrValueIsInvalid},
		{
			name:   "percentage above 100",
			mutate: func(tr *promotion.Terms) { tr.Value = decimal.NewFromInt(120) },
			target: errs.ErrValueIsOutOfRange,
		},
		{
			name:   "negative value",
			mutate: func(tr *promotion.Terms) { tr.Value = decimal.NewFromInt(-1) },
			target: errs.ErrValueIsInvalid,
		},
		{
			name:   "ends before start",
			mutate: func(tr *promotion.Terms) { tr.EndsAt = tr.StartsAt.Add(-time.Second) },
			target: errs.ErrInvariantViolation,
		},
		{
			name:   "code too long",
			mutate: func(tr *promotion.Terms) { tr.Code = "THIS-CODE-IS-WAY-TOO-LONG" },
			target: errs.ErrValueIsOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := terms()
			tt.mutate(&tr)

			_, err := promotion.NewPromotion(kernel.NewUUID(), kernel.NewUUID(), tr, start)

			require.ErrorIs(t, err, tt.target)
		})
	}
}

func TestPromotion_Expire(t *testing.T) {
	p, err := promotion.NewPromotion(kernel.NewUUID(), kernel.NewUUID(), terms(), start)
	require.NoError(t, err)

	assert.False(t, p.Expire(start.Add(24*time.Hour)))
	assert.True(t, p.IsActive())

	after := start.Add(8 * 24 * time.Hour)
	assert.True(t, p.Expire(after))
	assert.False(t, p.IsActive())
	assert.False(t, p.Expire(after))
}

func TestPromotion_MaxUses(t *testing.T) {
	p, err := promotion.RestorePromotion(kernel.NewUUID(), kernel.NewUUID(), terms(), true, 2, start)
	require.NoError(t, err)

	assert.False(t, p.IsRedeemableAt(start.Add(time.Hour)))
}

func TestParseKind(t *testing.T) {
	k, err := promotion.ParseKind("fixed_amount")
	require.NoError(t, err)
	assert.Equal(t, promotion.KindFixedAmount, k)
}
