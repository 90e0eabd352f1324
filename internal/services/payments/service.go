package payments

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	pgrepo "github.com/Hisham6667/summer-sports-server/internal/repo/postgres"
)

const currencyUSD = "usd"

var ErrValidation = errors.New("validation error")

type PaymentStore interface {
	InsertTx(ctx context.Context, tx pgx.Tx, rec pgrepo.PaymentRecord) (string, error)
	ListByEmail(ctx context.Context, email string) ([]pgrepo.PaymentRecord, error)
}

type SelectionStore interface {
	DeleteByIDsTx(ctx context.Context, tx pgx.Tx, ids []string) (int64, error)
}

// PaymentGateway creates an authorized-but-unconfirmed charge upstream and
// returns only the client-facing secret.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amountCents int64, currency string) (string, error)
}

type Service struct {
	pool       *pgxpool.Pool
	payments   PaymentStore
	selections SelectionStore
	gateway    PaymentGateway
	withTx     func(ctx context.Context, fn func(context.Context, pgx.Tx) error) error
}

type Dependencies struct {
	Pool       *pgxpool.Pool
	Payments   PaymentStore
	Selections SelectionStore
	Gateway    PaymentGateway
}

type RecordInput struct {
	Email            string
	Price            string
	TransactionID    string
	SelectedClassIDs []string
}

type RecordResult struct {
	InsertedID   string
	DeletedCount int64
}

func NewService(deps Dependencies) *Service {
	s := &Service{
		pool:       deps.Pool,
		payments:   deps.Payments,
		selections: deps.Selections,
		gateway:    deps.Gateway,
	}
	s.withTx = func(ctx context.Context, fn func(context.Context, pgx.Tx) error) error {
		if s.pool == nil {
			return fn(ctx, nil)
		}
		return pgrepo.WithTx(ctx, s.pool, fn)
	}
	return s
}

// CreateIntent converts a decimal price into integer cents and asks the
// gateway for a card payment intent in US dollars.
func (s *Service) CreateIntent(ctx context.Context, price string) (string, error) {
	if s.gateway == nil {
		return "", fmt.Errorf("payment gateway is nil")
	}

	cents, err := PriceToCents(price)
	if err != nil {
		return "", err
	}
	if cents <= 0 {
		return "", ErrValidation
	}

	return s.gateway.CreatePaymentIntent(ctx, cents, currencyUSD)
}

// Record writes the payment log entry and removes the purchased selections.
// Both steps run in one transaction, insert strictly before delete, and the
// caller gets both results together.
func (s *Service) Record(ctx context.Context, in RecordInput) (RecordResult, error) {
	if s.payments == nil || s.selections == nil {
		return RecordResult{}, fmt.Errorf("payment dependencies are not configured")
	}

	cents, err := PriceToCents(in.Price)
	if err != nil {
		return RecordResult{}, err
	}

	ids := make([]string, 0, len(in.SelectedClassIDs))
	for _, raw := range in.SelectedClassIDs {
		id := strings.TrimSpace(raw)
		if _, err := uuid.Parse(id); err != nil {
			return RecordResult{}, ErrValidation
		}
		ids = append(ids, id)
	}

	var result RecordResult
	if err := s.withTx(ctx, func(txCtx context.Context, tx pgx.Tx) error {
		insertedID, err := s.payments.InsertTx(txCtx, tx, pgrepo.PaymentRecord{
			Email:            strings.TrimSpace(in.Email),
			AmountCents:      cents,
			Currency:         currencyUSD,
			TransactionID:    strings.TrimSpace(in.TransactionID),
			SelectedClassIDs: ids,
		})
		if err != nil {
			return err
		}
		result.InsertedID = insertedID

		deleted, err := s.selections.DeleteByIDsTx(txCtx, tx, ids)
		if err != nil {
			return err
		}
		result.DeletedCount = deleted
		return nil
	}); err != nil {
		return RecordResult{}, err
	}

	return result, nil
}

func (s *Service) ListByEmail(ctx context.Context, email string) ([]pgrepo.PaymentRecord, error) {
	if s.payments == nil {
		return nil, fmt.Errorf("payment store is nil")
	}
	return s.payments.ListByEmail(ctx, email)
}

// PriceToCents parses a decimal price string into integer cents without
// going through a float. Digits past two decimals are truncated toward
// zero.
func PriceToCents(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ErrValidation
	}

	negative := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		negative = true
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return 0, ErrValidation
	}
	if intPart == "" {
		intPart = "0"
	}
	if !isDigits(intPart) || (fracPart != "" && !isDigits(fracPart)) {
		return 0, ErrValidation
	}

	if len(fracPart) > 2 {
		fracPart = fracPart[:2]
	}
	for len(fracPart) < 2 {
		fracPart += "0"
	}

	units, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrValidation
	}
	frac, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return 0, ErrValidation
	}
	if units > (1<<63-1-frac)/100 {
		return 0, ErrValidation
	}

	cents := units*100 + frac
	if negative {
		cents = -cents
	}
	return cents, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
