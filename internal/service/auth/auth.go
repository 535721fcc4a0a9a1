package authsvc

import (
	"context"
	"errors"

	"github.com/enumulasashank/rideon-bike-rental/internal/model"
	"github.com/enumulasashank/rideon-bike-rental/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrInvalidCreds = errors.New("invalid credentials")
	ErrBadInput     = errors.New("bad input")
)

// TokenIssuer issues a session token bound to a customer identity
type TokenIssuer interface {
	Issue(email string, customerID uint) (string, error)
}

// RegisterInput carries the registration form fields
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}

// Service authenticates customers and creates accounts. Password hashes
// are verified with bcrypt on both the register and login paths.
type Service interface {
	Register(ctx context.Context, in RegisterInput) (*model.Customer, string, error)
	Login(ctx context.Context, email, password string) (*model.Customer, string, error)
	CustomerByID(ctx context.Context, id uint) (*model.Customer, error)
	ListCustomers(ctx context.Context) ([]model.Customer, error)
}

type service struct {
	customers repository.Customers
	tokens    TokenIssuer
}

// New creates the authentication service
func New(customers repository.Customers, tokens TokenIssuer) Service {
	return &service{customers: customers, tokens: tokens}
}

func (s *service) Register(ctx context.Context, in RegisterInput) (*model.Customer, string, error) {
	if in.Email == "" || in.Password == "" {
		return nil, "", ErrBadInput
	}

	if _, err := s.customers.ByEmail(ctx, in.Email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	c := &model.Customer{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hashed),
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(c.Email, c.CustomerID)
	if err != nil {
		return nil, "", err
	}
	return c, token, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*model.Customer, string, error) {
	c, err := s.customers.ByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCreds
	}

	token, err := s.tokens.Issue(c.Email, c.CustomerID)
	if err != nil {
		return nil, "", err
	}
	return c, token, nil
}

func (s *service) CustomerByID(ctx context.Context, id uint) (*model.Customer, error) {
	return s.customers.ByID(ctx, id)
}

func (s *service) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return s.customers.List(ctx)
}
