package kernel_test

import (
	"math"
	"testing"

	"placeorder/internal/core/domain/model/kernel"
	"placeorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderQuantity_Widget(t *testing.T) {
	widget, err := kernel.NewWidgetCode("W1234")
	require.NoError(t, err)

	tests := []struct {
		name     string
		quantity float64
		expected int
		valid    bool
	}{
		{"lower bound", 1, 1, true},
		{"middle", 500, 500, true},
		{"upper bound", 1000, 1000, true},
		{"fraction is truncated", 2.9, 2, true},
		{"zero", 0, 0, false},
		{"fraction below one", 0.5, 0, false},
		{"above upper bound", 1001, 0, false},
		{"huge value", 1e20, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := kernel.NewOrderQuantity(widget, tt.quantity)

			if !tt.valid {
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				assert.Nil(t, q)
				return
			}
			require.NoError(t, err)
			units, ok := q.(kernel.UnitQuantity)
			require.True(t, ok)
			assert.Equal(t, tt.expected, units.Value())
		})
	}
}

func TestNewOrderQuantity_Gizmo(t *testing.T) {
	gizmo, err := kernel.NewGizmoCode("G123")
	require.NoError(t, err)

	t.Run("accepts bounds", func(t *testing.T) {
		for _, v := range []float64{0.05, 2.5, 100} {
			q, err := kernel.NewOrderQuantity(gizmo, v)

			require.NoError(t, err)
			kilos, ok := q.(kernel.KilogramQuantity)
			require.True(t, ok)
			assert.True(t, kilos.Value().Equal(decimal.NewFromFloat(v)))
		}
	})

	t.Run("rejects values out of range", func(t *testing.T) {
		for _, v := range []float64{0.01, 101, -1} {
			_, err := kernel.NewOrderQuantity(gizmo, v)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})
}

func TestNewOrderQuantity_NotANumber(t *testing.T) {
	gizmo, err := kernel.NewGizmoCode("G123")
	require.NoError(t, err)

	_, err = kernel.NewOrderQuantity(gizmo, math.NaN())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = kernel.NewOrderQuantity(gizmo, math.Inf(1))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestOrderQuantity_Decimal(t *testing.T) {
	units, err := kernel.NewUnitQuantity(3)
	require.NoError(t, err)
	assert.True(t, units.Decimal().Equal(decimal.NewFromInt(3)))

	kilos, err := kernel.NewKilogramQuantity(decimal.RequireFromString("1.25"))
	require.NoError(t, err)
	assert.True(t, kilos.Decimal().Equal(decimal.RequireFromString("1.25")))
}
