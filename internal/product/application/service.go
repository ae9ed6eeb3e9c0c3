package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/vegetanizando/api/internal/product/domain"
	"github.com/vegetanizando/api/pkg/apperror"
)

// View is a catalog item as clients see it: the storage key replaced by
// a temporary image URL.
type View struct {
	ID      string  `json:"id"`
	URL     string  `json:"url"`
	Name    string  `json:"name"`
	Portion string  `json:"portion"`
	Price   float64 `json:"price"`
	Type    string  `json:"type"`
}

type CreateInput struct {
	Name        string
	Portion     string
	Price       float64
	Type        string
	Image       []byte
	ContentType string
}

type UpdateInput struct {
	Name        string
	Portion     string
	Price       float64
	Type        string
	Image       []byte // optional; empty keeps the stored photo
	ContentType string
}

type Service struct {
	repo     Repository
	images   ImageStore
	resolver ImageResolver
	newID    func() string
}

func NewService(repo Repository, images ImageStore, resolver ImageResolver) *Service {
	return &Service{repo: repo, images: images, resolver: resolver, newID: uuid.NewString}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (View, error) {
	if len(in.Image) == 0 {
		return View{}, apperror.Validation("no image provided")
	}
	if in.Name == "" || in.Portion == "" || in.Type == "" {
		return View{}, apperror.Validation("name, portion and type are required")
	}
	if in.Price < 0 {
		return View{}, apperror.Validation("price must be non-negative")
	}

	key := s.newID()
	if err := s.images.Put(ctx, key, in.Image, in.ContentType); err != nil {
		return View{}, apperror.Storage("store product image", err)
	}

	p := domain.Product{
		ID:      s.newID(),
		Src:     key,
		Name:    in.Name,
		Portion: in.Portion,
		Price:   in.Price,
		Type:    in.Type,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return View{}, err
	}
	return s.view(ctx, p)
}

func (s *Service) Get(ctx context.Context, id string) (View, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return View{}, err
	}
	return s.view(ctx, p)
}

func (s *Service) ListAll(ctx context.Context) ([]View, error) {
	products, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]View, 0, len(products))
	for _, p := range products {
		v, err := s.view(ctx, p)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (View, error) {
	if in.Name == "" || in.Portion == "" || in.Type == "" {
		return View{}, apperror.Validation("name, portion and type are required")
	}
	if in.Price < 0 {
		return View{}, apperror.Validation("price must be non-negative")
	}

	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return View{}, err
	}

	if len(in.Image) > 0 {
		if err := s.images.Put(ctx, p.Src, in.Image, in.ContentType); err != nil {
			return View{}, apperror.Storage("replace product image", err)
		}
	}

	p.Name = in.Name
	p.Portion = in.Portion
	p.Price = in.Price
	p.Type = in.Type
	if err := s.repo.Update(ctx, p); err != nil {
		return View{}, err
	}
	return s.view(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.images.Delete(ctx, p.Src); err != nil {
		return apperror.Storage("delete product image", err)
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) view(ctx context.Context, p domain.Product) (View, error) {
	url, err := s.resolver.ResolveURL(ctx, p.Src)
	if err != nil {
		return View{}, apperror.Storage("resolve image url", err)
	}
	return View{
		ID:      p.ID,
		URL:     url,
		Name:    p.Name,
		Portion: p.Portion,
		Price:   p.Price,
		Type:    p.Type,
	}, nil
}
