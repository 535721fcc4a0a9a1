package authsvc_test

import (
	"context"
	"testing"

	"github.com/enumulasashank/rideon-bike-rental/internal/model"
	"github.com/enumulasashank/rideon-bike-rental/internal/repository"
	authsvc "github.com/enumulasashank/rideon-bike-rental/internal/service/auth"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type customersMock struct {
	createFn  func(ctx context.Context, c *model.Customer) error
	byIDFn    func(ctx context.Context, id uint) (*model.Customer, error)
	byEmailFn func(ctx context.Context, email string) (*model.Customer, error)
	listFn    func(ctx context.Context) ([]model.Customer, error)
}

func (m *customersMock) Create(ctx context.Context, c *model.Customer) error {
	return m.createFn(ctx, c)
}
func (m *customersMock) ByID(ctx context.Context, id uint) (*model.Customer, error) {
	return m.byIDFn(ctx, id)
}
func (m *customersMock) ByEmail(ctx context.Context, email string) (*model.Customer, error) {
	return m.byEmailFn(ctx, email)
}
func (m *customersMock) List(ctx context.Context) ([]model.Customer, error) {
	return m.listFn(ctx)
}

type issuerMock struct{}

func (issuerMock) Issue(email string, customerID uint) (string, error) { return "token-123", nil }

func validInput() authsvc.RegisterInput {
	return authsvc.RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "555-0100",
		Password:  "s3cret",
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	created := false
	m := &customersMock{
		byEmailFn: func(ctx context.Context, email string) (*model.Customer, error) {
			return &model.Customer{CustomerID: 1, Email: email}, nil
		},
		createFn: func(ctx context.Context, c *model.Customer) error {
			created = true
			return nil
		},
	}
	s := authsvc.New(m, issuerMock{})

	_, _, err := s.Register(context.Background(), validInput())
	require.ErrorIs(t, err, authsvc.ErrEmailTaken)
	require.False(t, created, "no customer row must be created on duplicate email")
}

func TestRegister_FreshEmail(t *testing.T) {
	var stored *model.Customer
	m := &customersMock{
		byEmailFn: func(ctx context.Context, email string) (*model.Customer, error) {
			return nil, repository.ErrNotFound
		},
		createFn: func(ctx context.Context, c *model.Customer) error {
			c.CustomerID = 7
			stored = c
			return nil
		},
	}
	s := authsvc.New(m, issuerMock{})

	customer, token, err := s.Register(context.Background(), validInput())
	require.NoError(t, err)
	require.Equal(t, "token-123", token)
	require.Equal(t, uint(7), customer.CustomerID)

	require.NotNil(t, stored)
	require.NotEmpty(t, stored.PasswordHash)
	require.NotEqual(t, "s3cret", stored.PasswordHash, "credential must be stored hashed")
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")))
}

func TestRegister_MissingFields(t *testing.T) {
	s := authsvc.New(&customersMock{}, issuerMock{})

	in := validInput()
	in.Password = ""
	_, _, err := s.Register(context.Background(), in)
	require.ErrorIs(t, err, authsvc.ErrBadInput)

	in = validInput()
	in.Email = ""
	_, _, err = s.Register(context.Background(), in)
	require.ErrorIs(t, err, authsvc.ErrBadInput)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	m := &customersMock{
		byEmailFn: func(ctx context.Context, email string) (*model.Customer, error) {
			if email != "ada@example.com" {
				return nil, repository.ErrNotFound
			}
			return &model.Customer{CustomerID: 7, Email: email, PasswordHash: string(hash)}, nil
		},
	}
	s := authsvc.New(m, issuerMock{})

	customer, token, err := s.Login(context.Background(), "ada@example.com", "s3cret")
	require.NoError(t, err)
	require.Equal(t, "token-123", token)
	require.Equal(t, uint(7), customer.CustomerID)

	_, _, err = s.Login(context.Background(), "ada@example.com", "wrong")
	require.ErrorIs(t, err, authsvc.ErrInvalidCreds)

	_, _, err = s.Login(context.Background(), "nobody@example.com", "s3cret")
	require.ErrorIs(t, err, authsvc.ErrInvalidCreds)
}
