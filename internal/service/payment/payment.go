package paymentsvc

import (
	"context"
	"errors"
	"strconv"

	"github.com/enumulasashank/rideon-bike-rental/internal/model"
	"github.com/enumulasashank/rideon-bike-rental/internal/repository"
)

var ErrBadInput = errors.New("bad input")

// Input carries the payment form fields as submitted. RentalID and
// Amount are required; the referenced rental is not checked for
// existence, and no reconciliation against the rental total is done.
type Input struct {
	RentalID      string
	Amount        string
	PaymentDate   string
	PaymentMethod string
}

// Service records payments against rentals
type Service interface {
	List(ctx context.Context) ([]model.Payment, error)
	Create(ctx context.Context, in Input) (*model.Payment, error)
}

type service struct{ payments repository.Payments }

// New creates the payment service
func New(payments repository.Payments) Service { return &service{payments: payments} }

func (s *service) List(ctx context.Context) ([]model.Payment, error) {
	return s.payments.List(ctx)
}

func (s *service) Create(ctx context.Context, in Input) (*model.Payment, error) {
	if in.RentalID == "" || in.Amount == "" {
		return nil, ErrBadInput
	}
	rentalID, err := strconv.ParseUint(in.RentalID, 10, 32)
	if err != nil {
		return nil, ErrBadInput
	}
	amount, err := strconv.ParseFloat(in.Amount, 64)
	if err != nil {
		return nil, ErrBadInput
	}

	p := &model.Payment{
		RentalID:      uint(rentalID),
		Amount:        amount,
		PaymentDate:   in.PaymentDate,
		PaymentMethod: in.PaymentMethod,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
