package guard_test

import (
	"errors"
	"sync"
	"testing"

	"fooddelivery/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	type placeOrderCommand struct {
		restaurantID string
		guard        guard.ConstructorGuard
	}
	errNotConstructed := errors.New("place order command is not constructed")

	newCommand := func(restaurantID string) (placeOrderCommand, error) {
		if restaurantID == "" {
			return placeOrderCommand{}, errors.New("restaurant id is required")
		}
		return placeOrderCommand{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_built_command_is_valid", func(t *testing.T) {
		cmd, err := newCommand("r-1")

		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errNotConstructed))
	})

	t.Run("zero_value_command_is_rejected", func(t *testing.T) {
		var cmd placeOrderCommand

		assert.Equal(t, errNotConstructed, cmd.guard.Validate(errNotConstructed))
	})

	t.Run("failed_constructor_returns_unusable_value", func(t *testing.T) {
		cmd, err := newCommand("")

		require.Error(t, err)
		require.ErrorIs(t, cmd.guard.Validate(errNotConstructed), errNotConstructed)
	})
}

func TestConstructorGuard_Concurrency(t *testing.T) {
	g := guard.NewConstructorGuard()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Validate(nil))
		}()
	}
	wg.Wait()
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	for i := 0; i < b.N; i++ {
		_ = g.Validate(nil)
	}
}
