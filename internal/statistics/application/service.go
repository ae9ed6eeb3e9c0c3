package application

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/vegetanizando/api/internal/statistics/domain"
	"github.com/vegetanizando/api/pkg/apperror"
)

// Service computes the dashboard reports. Every report is a read-only
// projection over the purchase and product stores; grouping and ordering
// happen here so the output is deterministic.
type Service struct {
	purchases PurchaseReader
	products  ProductReader
	now       func() time.Time
}

func NewService(purchases PurchaseReader, products ProductReader) *Service {
	return &Service{purchases: purchases, products: products, now: time.Now}
}

// WithClock fixes the reference time, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// PurchasesByMonth sums TotalCart per calendar month over the trailing
// twelve months, ascending by (year, month).
func (s *Service) PurchasesByMonth(ctx context.Context) ([]domain.MonthlyTotal, error) {
	from, to := domain.TrailingMonths(s.now(), 12)
	purchases, err := s.purchases.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	type ym struct{ year, month int }
	totals := make(map[ym]float64)
	for _, p := range purchases {
		k := ym{p.Date.Year(), int(p.Date.Month())}
		totals[k] += p.TotalCart
	}

	result := make([]domain.MonthlyTotal, 0, len(totals))
	for k, total := range totals {
		result = append(result, domain.MonthlyTotal{Year: k.year, Month: k.month, Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year < result[j].Year
		}
		return result[i].Month < result[j].Month
	})
	return result, nil
}

// ProductsByType counts catalog items per type. Contract leaves the
// order open; sorted by type name so responses are stable.
func (s *Service) ProductsByType(ctx context.Context) ([]domain.TypeCount, error) {
	products, err := s.products.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, p := range products {
		counts[p.Type]++
	}

	result := make([]domain.TypeCount, 0, len(counts))
	for t, c := range counts {
		result = append(result, domain.TypeCount{Type: t, Count: c})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Type < result[j].Type })
	return result, nil
}

// TopCustomers ranks customers of the current month by spend and keeps
// the top three. Ties order by user name, then phone.
func (s *Service) TopCustomers(ctx context.Context) ([]domain.CustomerTotal, error) {
	from, to := domain.MonthWindow(s.now())
	purchases, err := s.purchases.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	type key struct{ user, celphone string }
	totals := make(map[key]float64)
	for _, p := range purchases {
		totals[key{p.User, p.Celphone}] += p.TotalCart
	}

	result := make([]domain.CustomerTotal, 0, len(totals))
	for k, total := range totals {
		result = append(result, domain.CustomerTotal{User: k.user, Celphone: k.celphone, TotalSpent: total})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalSpent != result[j].TotalSpent {
			return result[i].TotalSpent > result[j].TotalSpent
		}
		if result[i].User != result[j].User {
			return result[i].User < result[j].User
		}
		return result[i].Celphone < result[j].Celphone
	})
	if len(result) > 3 {
		result = result[:3]
	}
	return result, nil
}

// TopProducts unwinds the carts of the current month, sums quantities
// per product name and keeps the top five. Quantities are stored as text
// and must parse as integers; anything else fails the report.
func (s *Service) TopProducts(ctx context.Context) ([]domain.ProductTotal, error) {
	from, to := domain.MonthWindow(s.now())
	purchases, err := s.purchases.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int)
	for _, p := range purchases {
		for _, item := range p.Cart {
			qty, err := strconv.Atoi(strings.TrimSpace(item.Quantity))
			if err != nil {
				return nil, apperror.Aggregation("purchase "+p.ID+" has non-numeric quantity for "+item.Name, err)
			}
			totals[item.Name] += qty
		}
	}

	result := make([]domain.ProductTotal, 0, len(totals))
	for name, sold := range totals {
		result = append(result, domain.ProductTotal{ProductName: name, TotalSold: sold})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalSold != result[j].TotalSold {
			return result[i].TotalSold > result[j].TotalSold
		}
		return result[i].ProductName < result[j].ProductName
	})
	if len(result) > 5 {
		result = result[:5]
	}
	return result, nil
}

// DashboardCard counts distinct customers and purchases in the current
// month.
func (s *Service) DashboardCard(ctx context.Context) (domain.Card, error) {
	from, to := domain.MonthWindow(s.now())
	purchases, err := s.purchases.ListBetween(ctx, from, to)
	if err != nil {
		return domain.Card{}, err
	}

	users := make(map[string]struct{})
	for _, p := range purchases {
		users[p.User] = struct{}{}
	}
	return domain.Card{TotalClients: len(users), TotalPurchases: len(purchases)}, nil
}
