package application

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/vegetanizando/api/internal/purchase/domain"
	"github.com/vegetanizando/api/pkg/apperror"
)

// CreateInput is the order payload submitted by the storefront.
type CreateInput struct {
	User      string            `json:"user"`
	Email     string            `json:"email"`
	Celphone  string            `json:"celphone"`
	CPF       string            `json:"cpf"`
	Address   string            `json:"address"`
	Cart      []domain.CartItem `json:"cart"`
	TotalCart float64           `json:"totalCart"`
}

type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// WithClock fixes the service clock and id source, for tests.
func (s *Service) WithClock(now func() time.Time, newID func() string) *Service {
	s.now = now
	s.newID = newID
	return s
}

func (s *Service) Create(ctx context.Context, in *CreateInput, headers map[string]string, traceparent string) (domain.Purchase, error) {
	if in == nil {
		return domain.Purchase{}, apperror.Validation("no purchase provided")
	}
	if in.User == "" || in.Email == "" || in.Celphone == "" || in.CPF == "" || in.Address == "" {
		return domain.Purchase{}, apperror.Validation("all customer fields are required")
	}
	if len(in.Cart) == 0 {
		return domain.Purchase{}, apperror.Validation("cart is empty")
	}

	p := domain.NewPurchase(s.newID(), s.now(), in.User, in.Email, in.Celphone, in.CPF, in.Address, in.Cart, in.TotalCart)

	payload, err := json.Marshal(domain.PurchaseCreated{
		PurchaseID: p.ID,
		User:       p.User,
		Email:      p.Email,
		TotalCart:  p.TotalCart,
		Cart:       p.Cart,
	})
	if err != nil {
		return domain.Purchase{}, apperror.Storage("encode purchase event", err)
	}
	if err := s.repo.CreateWithOutbox(ctx, p, domain.EventPurchaseCreated, payload, headers, traceparent); err != nil {
		return domain.Purchase{}, err
	}
	return p, nil
}

// ListRecent returns purchases dated within the trailing windowDays
// days, upper bound inclusive. windowDays <= 0 means no lower bound.
// Results come back ordered by date descending, id as tie-break.
func (s *Service) ListRecent(ctx context.Context, windowDays int) ([]domain.Purchase, error) {
	if windowDays <= 0 {
		return s.repo.ListAll(ctx)
	}
	now := s.now()
	return s.repo.ListBetween(ctx, now.AddDate(0, 0, -windowDays), now)
}

func (s *Service) UpdateStatus(ctx context.Context, id, status string, headers map[string]string, traceparent string) (domain.Purchase, error) {
	if status == "" {
		return domain.Purchase{}, apperror.Validation("status is required")
	}
	next, err := domain.ParseStatus(status)
	if err != nil {
		return domain.Purchase{}, apperror.Validation(err.Error())
	}

	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Purchase{}, err
	}
	if !p.Status.CanTransition(next) {
		return domain.Purchase{}, apperror.Validation("cannot move purchase from " + string(p.Status) + " to " + string(next))
	}

	payload, err := json.Marshal(domain.PurchaseStatusChanged{
		PurchaseID: p.ID,
		Email:      p.Email,
		OldStatus:  p.Status,
		NewStatus:  next,
	})
	if err != nil {
		return domain.Purchase{}, apperror.Storage("encode status event", err)
	}
	if err := s.repo.UpdateStatusWithOutbox(ctx, id, next, domain.EventPurchaseStatusChanged, payload, headers, traceparent); err != nil {
		return domain.Purchase{}, err
	}
	p.Status = next
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string, headers map[string]string, traceparent string) error {
	payload, err := json.Marshal(domain.PurchaseDeleted{PurchaseID: id})
	if err != nil {
		return apperror.Storage("encode delete event", err)
	}
	return s.repo.DeleteWithOutbox(ctx, id, domain.EventPurchaseDeleted, payload, headers, traceparent)
}
