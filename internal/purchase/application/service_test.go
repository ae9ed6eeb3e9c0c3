package application

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegetanizando/api/internal/purchase/domain"
	"github.com/vegetanizando/api/pkg/apperror"
)

type fakeRepo struct {
	purchases map[string]domain.Purchase
	events    []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{purchases: make(map[string]domain.Purchase)}
}

func (f *fakeRepo) CreateWithOutbox(_ context.Context, p domain.Purchase, eventType string, _ []byte, _ map[string]string, _ string) error {
	f.purchases[p.ID] = p
	f.events = append(f.events, eventType)
	return nil
}

func (f *fakeRepo) Get(_ context.Context, id string) (domain.Purchase, error) {
	p, ok := f.purchases[id]
	if !ok {
		return domain.Purchase{}, apperror.NotFound("purchase not found")
	}
	return p, nil
}

func (f *fakeRepo) ListBetween(_ context.Context, from, to time.Time) ([]domain.Purchase, error) {
	var out []domain.Purchase
	for _, p := range f.purchases {
		if !p.Date.Before(from) && !p.Date.After(to) {
			out = append(out, p)
		}
	}
	sortByDateDesc(out)
	return out, nil
}

func (f *fakeRepo) ListAll(context.Context) ([]domain.Purchase, error) {
	out := make([]domain.Purchase, 0, len(f.purchases))
	for _, p := range f.purchases {
		out = append(out, p)
	}
	sortByDateDesc(out)
	return out, nil
}

func (f *fakeRepo) UpdateStatusWithOutbox(_ context.Context, id string, status domain.Status, eventType string, _ []byte, _ map[string]string, _ string) error {
	p, ok := f.purchases[id]
	if !ok {
		return apperror.NotFound("purchase not found")
	}
	p.Status = status
	f.purchases[id] = p
	f.events = append(f.events, eventType)
	return nil
}

func (f *fakeRepo) DeleteWithOutbox(_ context.Context, id string, eventType string, _ []byte, _ map[string]string, _ string) error {
	if _, ok := f.purchases[id]; !ok {
		return apperror.NotFound("purchase not found")
	}
	delete(f.purchases, id)
	f.events = append(f.events, eventType)
	return nil
}

func sortByDateDesc(purchases []domain.Purchase) {
	sort.Slice(purchases, func(i, j int) bool {
		if !purchases[i].Date.Equal(purchases[j].Date) {
			return purchases[i].Date.After(purchases[j].Date)
		}
		return purchases[i].ID < purchases[j].ID
	})
}

func fixedNow() time.Time {
	return time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)
}

func newTestService(repo *fakeRepo) *Service {
	n := 0
	return NewService(repo).WithClock(fixedNow, func() string {
		n++
		return "id-" + string(rune('0'+n))
	})
}

func validInput() *CreateInput {
	return &CreateInput{
		User:     "Ana",
		Email:    "ana@example.com",
		Celphone: "111",
		CPF:      "12345678900",
		Address:  "Rua A, 10",
		Cart: []domain.CartItem{
			{ProductID: "p1", Name: "Salad", Price: 25, Quantity: "2"},
		},
		TotalCart: 50,
	}
}

func TestCreateAssignsIdentityAndDefaultStatus(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	p, err := svc.Create(context.Background(), validInput(), nil, "")
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, domain.StatusRequested, p.Status)
	assert.Equal(t, fixedNow().UTC(), p.Date)
	assert.Equal(t, 50.0, p.TotalCart)
	assert.Equal(t, []string{domain.EventPurchaseCreated}, repo.events)

	listed, err := svc.ListRecent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, p.ID, listed[0].ID)
	assert.Equal(t, domain.StatusRequested, listed[0].Status)
	assert.Equal(t, 50.0, listed[0].TotalCart)
}

func TestCreateRejectsMissingPayload(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.Create(context.Background(), nil, nil, "")
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestCreateRejectsMissingFields(t *testing.T) {
	svc := newTestService(newFakeRepo())

	in := validInput()
	in.Email = ""
	_, err := svc.Create(context.Background(), in, nil, "")
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	in = validInput()
	in.Cart = nil
	_, err = svc.Create(context.Background(), in, nil, "")
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestListRecentWindow(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	repo.purchases["recent"] = domain.Purchase{ID: "recent", Date: fixedNow().AddDate(0, 0, -2)}
	repo.purchases["old"] = domain.Purchase{ID: "old", Date: fixedNow().AddDate(0, 0, -40)}

	all, err := svc.ListRecent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	recent, err := svc.ListRecent(context.Background(), 30)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "recent", recent[0].ID)
}

func TestListRecentOrdersByDateDescending(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	repo.purchases["a"] = domain.Purchase{ID: "a", Date: fixedNow().AddDate(0, 0, -3)}
	repo.purchases["b"] = domain.Purchase{ID: "b", Date: fixedNow().AddDate(0, 0, -1)}
	repo.purchases["c"] = domain.Purchase{ID: "c", Date: fixedNow().AddDate(0, 0, -2)}

	listed, err := svc.ListRecent(context.Background(), 0)
	require.NoError(t, err)

	ids := []string{listed[0].ID, listed[1].ID, listed[2].ID}
	assert.Equal(t, []string{"b", "c", "a"}, ids)
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), validInput(), nil, "")
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), created.ID, "confirmado", nil, "")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, updated.Status)
	assert.Equal(t, created.Date, updated.Date)
	assert.Equal(t, created.Cart, updated.Cart)

	// Same status twice is idempotent.
	again, err := svc.UpdateStatus(context.Background(), created.ID, "confirmado", nil, "")
	require.NoError(t, err)
	assert.Equal(t, updated, again)
}

func TestUpdateStatusRejectsIllegalTransition(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), validInput(), nil, "")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), created.ID, "entregue", nil, "")
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestUpdateStatusValidation(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.UpdateStatus(context.Background(), "any", "", nil, "")
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = svc.UpdateStatus(context.Background(), "any", "enviado", nil, "")
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestUpdateStatusMissingPurchase(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.UpdateStatus(context.Background(), "missing", "confirmado", nil, "")
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestDelete(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), validInput(), nil, "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID, nil, ""))

	_, err = repo.Get(context.Background(), created.ID)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	// Deleting twice reports NotFound on the second call.
	err = svc.Delete(context.Background(), created.ID, nil, "")
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}
