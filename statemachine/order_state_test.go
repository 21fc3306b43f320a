package statemachine

import (
	"testing"

	"restaurant-orders-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from models.OrderStatus
		to   models.OrderStatus
		ok   bool
	}{
		{"take a new order", models.StatusNew, models.StatusInProgress, true},
		{"close a new order", models.StatusNew, models.StatusClosed, true},
		{"close an order in progress", models.StatusInProgress, models.StatusClosed, true},
		{"take twice", models.StatusInProgress, models.StatusInProgress, false},
		{"reopen a closed order", models.StatusClosed, models.StatusNew, false},
		{"take a closed order", models.StatusClosed, models.StatusInProgress, false},
		{"close twice", models.StatusClosed, models.StatusClosed, false},
		{"go backwards", models.StatusInProgress, models.StatusNew, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanTransition(tc.from, tc.to)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidTransitionsFrom(t *testing.T) {
	require.ElementsMatch(t,
		[]models.OrderStatus{models.StatusInProgress, models.StatusClosed},
		ValidTransitionsFrom(models.StatusNew))
	require.Equal(t,
		[]models.OrderStatus{models.StatusClosed},
		ValidTransitionsFrom(models.StatusInProgress))
	require.Empty(t, ValidTransitionsFrom(models.StatusClosed))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(models.StatusNew))
	assert.False(t, IsTerminal(models.StatusInProgress))
	assert.True(t, IsTerminal(models.StatusClosed))
}
