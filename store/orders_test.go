package store

import (
	"sync"
	"testing"

	"restaurant-orders-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderTotal(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateOrder("Ann", "555", "", []models.LineItem{
		{Name: "Margherita", Price: 550, Quantity: 2},
	})
	require.NoError(t, err)

	order, err := s.GetOrder(id)
	require.NoError(t, err)
	assert.EqualValues(t, 1100, order.Total)
	assert.Equal(t, models.StatusNew, order.Status)
	assert.Equal(t, "Ann", order.CustomerName)
	assert.Equal(t, "555", order.Phone)
	require.Len(t, order.LineItems, 1)
	assert.Equal(t, "Margherita", order.LineItems[0].Name)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestCreateOrderValidation(t *testing.T) {
	s := newTestStore(t)
	items := []models.LineItem{{Price: 550, Quantity: 1}}

	_, err := s.CreateOrder("", "555", "", items)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.CreateOrder("Ann", "", "", items)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.CreateOrder("Ann", "555", "", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.CreateOrder("Ann", "555", "", []models.LineItem{{Price: 550, Quantity: 0}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.CreateOrder("Ann", "555", "", []models.LineItem{{Price: -1, Quantity: 1}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// The total is a snapshot of the submitted prices. Changing the menu price
// afterwards, or submitting a price that disagrees with the live menu, must
// not affect it.
func TestOrderTotalIsSnapshot(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AddCategory("pizza", "Pizza"))
	dishID, err := s.AddDish("pizza", "Margherita", "Classic", 550, "")
	require.NoError(t, err)

	// Submitted price deliberately differs from the menu price
	id, err := s.CreateOrder("Bob", "777", "", []models.LineItem{
		{DishID: dishID, Name: "Margherita", Price: 500, Quantity: 3},
	})
	require.NoError(t, err)

	// Menu price changes after the order was placed
	require.NoError(t, s.db.Model(&models.Dish{}).Where("id = ?", dishID).Update("price", 900).Error)

	order, err := s.GetOrder(id)
	require.NoError(t, err)
	assert.EqualValues(t, 1500, order.Total)
	assert.EqualValues(t, 500, order.LineItems[0].Price)
}

func TestOrderLifecycle(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateOrder("Ann", "555", "", []models.LineItem{{Price: 550, Quantity: 2}})
	require.NoError(t, err)

	require.NoError(t, s.TakeOrder(id))
	order, err := s.GetOrder(id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, order.Status)

	// No double-assignment
	assert.ErrorIs(t, s.TakeOrder(id), ErrInvalidTransition)

	require.NoError(t, s.CloseOrder(id))
	order, err = s.GetOrder(id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusClosed, order.Status)

	assert.ErrorIs(t, s.CloseOrder(id), ErrInvalidTransition)
	assert.ErrorIs(t, s.TakeOrder(id), ErrInvalidTransition)
}

func TestCloseOrderFromNew(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateOrder("Ann", "555", "", []models.LineItem{{Price: 550, Quantity: 1}})
	require.NoError(t, err)

	// An order that was never actioned can be closed directly
	require.NoError(t, s.CloseOrder(id))
	order, err := s.GetOrder(id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusClosed, order.Status)
}

func TestTransitionsOnMissingOrder(t *testing.T) {
	s := newTestStore(t)

	assert.ErrorIs(t, s.TakeOrder(42), ErrNotFound)
	assert.ErrorIs(t, s.CloseOrder(42), ErrNotFound)
	_, err := s.GetOrder(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConcurrentTakeFirstWriterWins(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateOrder("Ann", "555", "", []models.LineItem{{Price: 550, Quantity: 1}})
	require.NoError(t, err)

	const callers = 16
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.TakeOrder(id)
		}(i)
	}
	wg.Wait()

	var wins int
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, ErrInvalidTransition)
		}
	}
	assert.Equal(t, 1, wins, "exactly one take must succeed")

	order, err := s.GetOrder(id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, order.Status)
}

func TestListOrdersNewestFirst(t *testing.T) {
	s := newTestStore(t)

	items := []models.LineItem{{Price: 100, Quantity: 1}}
	first, err := s.CreateOrder("Ann", "555", "", items)
	require.NoError(t, err)
	second, err := s.CreateOrder("Bob", "777", "", items)
	require.NoError(t, err)
	third, err := s.CreateOrder("Cleo", "999", "", items)
	require.NoError(t, err)

	orders, err := s.ListOrders()
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, third, orders[0].ID)
	assert.Equal(t, second, orders[1].ID)
	assert.Equal(t, first, orders[2].ID)
}
