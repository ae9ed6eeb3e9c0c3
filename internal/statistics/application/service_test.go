package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productdomain "github.com/vegetanizando/api/internal/product/domain"
	purchasedomain "github.com/vegetanizando/api/internal/purchase/domain"
	"github.com/vegetanizando/api/internal/statistics/domain"
	"github.com/vegetanizando/api/pkg/apperror"
)

type fakePurchases struct {
	all []purchasedomain.Purchase
}

func (f *fakePurchases) ListBetween(_ context.Context, from, to time.Time) ([]purchasedomain.Purchase, error) {
	var out []purchasedomain.Purchase
	for _, p := range f.all {
		if !p.Date.Before(from) && !p.Date.After(to) {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeProducts struct {
	all []productdomain.Product
}

func (f *fakeProducts) ListAll(context.Context) ([]productdomain.Product, error) {
	return f.all, nil
}

func fixedNow() time.Time {
	return time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)
}

func purchase(user, celphone string, date time.Time, total float64, cart ...purchasedomain.CartItem) purchasedomain.Purchase {
	return purchasedomain.Purchase{
		ID:        user + date.Format("20060102"),
		User:      user,
		Celphone:  celphone,
		Date:      date,
		Cart:      cart,
		TotalCart: total,
	}
}

func newTestService(purchases []purchasedomain.Purchase, products []productdomain.Product) *Service {
	return NewService(&fakePurchases{all: purchases}, &fakeProducts{all: products}).WithClock(fixedNow)
}

func TestPurchasesByMonth(t *testing.T) {
	svc := newTestService([]purchasedomain.Purchase{
		purchase("Ana", "111", time.Date(2026, time.August, 2, 0, 0, 0, 0, time.UTC), 50),
		purchase("Bia", "222", time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC), 30),
		purchase("Ana", "111", time.Date(2025, time.December, 24, 0, 0, 0, 0, time.UTC), 100),
		purchase("Ana", "111", time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC), 10),
		// Outside the trailing-12-months window.
		purchase("Old", "000", time.Date(2025, time.August, 31, 0, 0, 0, 0, time.UTC), 999),
	}, nil)

	result, err := svc.PurchasesByMonth(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.MonthlyTotal{
		{Year: 2025, Month: 12, Total: 100},
		{Year: 2026, Month: 1, Total: 10},
		{Year: 2026, Month: 8, Total: 80},
	}, result)
}

func TestProductsByType(t *testing.T) {
	svc := newTestService(nil, []productdomain.Product{
		{ID: "1", Name: "Salad", Type: "prato"},
		{ID: "2", Name: "Soup", Type: "prato"},
		{ID: "3", Name: "Juice", Type: "bebida"},
	})

	result, err := svc.ProductsByType(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.TypeCount{
		{Type: "bebida", Count: 1},
		{Type: "prato", Count: 2},
	}, result)
}

func TestTopCustomersSumsWithinCurrentMonth(t *testing.T) {
	monthStart := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	svc := newTestService([]purchasedomain.Purchase{
		purchase("Ana", "111", monthStart, 50),
		purchase("Ana", "111", monthStart.AddDate(0, 0, 14), 30),
		// Previous month must not count.
		purchase("Ana", "111", monthStart.AddDate(0, 0, -1), 500),
	}, nil)

	result, err := svc.TopCustomers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.CustomerTotal{
		{User: "Ana", Celphone: "111", TotalSpent: 80},
	}, result)
}

func TestTopCustomersLimitsToThreeAndBreaksTiesByName(t *testing.T) {
	monthStart := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	svc := newTestService([]purchasedomain.Purchase{
		purchase("Dani", "444", monthStart, 20),
		purchase("Ana", "111", monthStart, 20),
		purchase("Carla", "333", monthStart, 90),
		purchase("Bia", "222", monthStart, 20),
	}, nil)

	result, err := svc.TopCustomers(context.Background())
	require.NoError(t, err)

	require.Len(t, result, 3)
	assert.Equal(t, "Carla", result[0].User)
	assert.Equal(t, "Ana", result[1].User)
	assert.Equal(t, "Bia", result[2].User)
}

func TestTopProducts(t *testing.T) {
	monthStart := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	svc := newTestService([]purchasedomain.Purchase{
		purchase("Ana", "111", monthStart, 50,
			purchasedomain.CartItem{Name: "Salad", Quantity: "2"},
			purchasedomain.CartItem{Name: "Soup", Quantity: "1"},
		),
		purchase("Bia", "222", monthStart.AddDate(0, 0, 10), 30,
			purchasedomain.CartItem{Name: "Salad", Quantity: "3"},
		),
	}, nil)

	result, err := svc.TopProducts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.ProductTotal{
		{ProductName: "Salad", TotalSold: 5},
		{ProductName: "Soup", TotalSold: 1},
	}, result)
}

func TestTopProductsLimitsToFive(t *testing.T) {
	monthStart := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	cart := []purchasedomain.CartItem{
		{Name: "A", Quantity: "6"},
		{Name: "B", Quantity: "5"},
		{Name: "C", Quantity: "4"},
		{Name: "D", Quantity: "3"},
		{Name: "E", Quantity: "2"},
		{Name: "F", Quantity: "1"},
	}
	svc := newTestService([]purchasedomain.Purchase{
		purchase("Ana", "111", monthStart, 10, cart...),
	}, nil)

	result, err := svc.TopProducts(context.Background())
	require.NoError(t, err)

	require.Len(t, result, 5)
	assert.Equal(t, "A", result[0].ProductName)
	assert.Equal(t, "E", result[4].ProductName)
}

func TestTopProductsRejectsNonNumericQuantity(t *testing.T) {
	monthStart := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	svc := newTestService([]purchasedomain.Purchase{
		purchase("Ana", "111", monthStart, 10,
			purchasedomain.CartItem{Name: "Salad", Quantity: "two"},
		),
	}, nil)

	_, err := svc.TopProducts(context.Background())
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindAggregation))
}

func TestDashboardCard(t *testing.T) {
	monthStart := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	svc := newTestService([]purchasedomain.Purchase{
		purchase("Ana", "111", monthStart, 50),
		purchase("Ana", "111", monthStart.AddDate(0, 0, 5), 30),
		purchase("Bia", "222", monthStart.AddDate(0, 0, 6), 20),
		purchase("Old", "000", monthStart.AddDate(0, 0, -3), 70),
	}, nil)

	card, err := svc.DashboardCard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.Card{TotalClients: 2, TotalPurchases: 3}, card)
}
