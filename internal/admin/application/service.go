package application

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/vegetanizando/api/pkg/apperror"
)

const tokenTTL = 2 * time.Hour

// ErrInvalidCredentials covers both unknown emails and wrong passwords,
// so login responses never reveal which one failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Session is what a successful login returns to the dashboard.
type Session struct {
	ID    string `json:"id"`
	User  string `json:"user"`
	Email string `json:"email"`
	Photo string `json:"photo"`
	Token string `json:"token"`
}

type Service struct {
	repo     Repository
	resolver PhotoResolver
	secret   []byte
	now      func() time.Time
}

func NewService(repo Repository, resolver PhotoResolver, secret []byte) *Service {
	return &Service{repo: repo, resolver: resolver, secret: secret, now: time.Now}
}

func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	if email == "" || password == "" {
		return Session{}, apperror.Validation("email and password are required")
	}

	admin, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return Session{}, ErrInvalidCredentials
	}

	photo, err := s.resolver.ResolveURL(ctx, admin.Src)
	if err != nil {
		return Session{}, apperror.Storage("resolve admin photo", err)
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    admin.ID,
		"user":  admin.User,
		"email": admin.Email,
		"photo": photo,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return Session{}, apperror.Storage("sign token", err)
	}

	return Session{
		ID:    admin.ID,
		User:  admin.User,
		Email: admin.Email,
		Photo: photo,
		Token: signed,
	}, nil
}
