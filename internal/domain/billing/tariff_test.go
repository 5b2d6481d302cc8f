package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborops/harbormaster-go/internal/domain/billing"
	"github.com/harborops/harbormaster-go/internal/domain/fleet"
	"github.com/harborops/harbormaster-go/internal/domain/shared"
)

func TestNewTariff_RejectsNegativeBaseFee(t *testing.T) {
	_, err := billing.NewTariff(-1, nil, nil)
	assert.True(t, shared.IsValidation(err))
}

func TestTariff_SizeMultiplier(t *testing.T) {
	tariff := billing.DefaultTariff()

	tests := []struct {
		name     string
		length   float64
		expected float64
	}{
		{"first tier", 50, 1.0},
		{"upper bound is exclusive", 100, 1.5},
		{"second tier", 199.9, 1.5},
		{"third tier", 200, 2.0},
		{"largest tier", 450, 3.0},
		{"no matching tier", 500, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tariff.SizeMultiplier(tt.length), 0.001)
		})
	}
}

func TestTariff_NonPositiveStoredMultiplierFallsBack(t *testing.T) {
	tariff, err := billing.NewTariff(500,
		[]billing.SizeMultiplierTier{{MinLength: 0, MaxLength: 100, Multiplier: 0}},
		map[fleet.ShipType]float64{fleet.ShipTypeCargo: -2},
	)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, tariff.SizeMultiplier(50), 0.001)
	assert.InDelta(t, 1.0, tariff.TypeMultiplier(fleet.ShipTypeCargo), 0.001)
}

func TestTariff_TypeMultiplier(t *testing.T) {
	tariff := billing.DefaultTariff()

	assert.InDelta(t, 1.2, tariff.TypeMultiplier(fleet.ShipTypeCargo), 0.001)
	assert.InDelta(t, 0.7, tariff.TypeMultiplier(fleet.ShipTypeTug), 0.001)
	assert.InDelta(t, 1.0, tariff.TypeMultiplier(fleet.ShipType("HOVERCRAFT")), 0.001)
}
