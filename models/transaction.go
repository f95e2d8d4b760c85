package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Bounds of the DECIMAL(10,2) amount column.
const (
	amountScale         = 2
	amountIntegerDigits = 8
	// Finer inputs are rejected before rounding, which rescales.
	amountMinExponent = -16
)

var (
	ErrInvalidAmount = errors.New("amount out of range")
	ErrInvalidDate   = errors.New("invalid date")
)

// Transaction is a single income (positive amount) or expense (negative amount)
// owned by an opaque user identifier.
type Transaction struct {
	ID        int             `json:"id" example:"1"`
	UserID    string          `json:"user_id" example:"user_2x9"`
	Title     string          `json:"title" example:"Salário"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"1500.00"`
	Category  string          `json:"category" example:"renda"`
	CreatedAt Date            `json:"created_at" swaggertype:"string" example:"2024-05-01"`
}

// CreateTransaction is the body of POST /api/transacoes.
// Amount is a pointer so that an absent amount can be told apart from zero.
type CreateTransaction struct {
	Title     string           `json:"title" binding:"required" example:"Mercado"`
	Amount    *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number" example:"-120.50"`
	Category  string           `json:"category" binding:"required" example:"alimentação"`
	UserID    string           `json:"user_id" binding:"required" example:"user_2x9"`
	CreatedAt string           `json:"created_at,omitempty" example:"2024-05-01"`
}

// Transaction converts the request into the entity to be stored.
// CreatedAt is left zero when the request does not carry one.
func (ct CreateTransaction) Transaction() (Transaction, error) {
	t := Transaction{
		UserID:   ct.UserID,
		Title:    ct.Title,
		Category: ct.Category,
	}
	if ct.Amount != nil {
		amount, err := NormalizeAmount(*ct.Amount)
		if err != nil {
			return Transaction{}, err
		}
		t.Amount = amount
	}
	if ct.CreatedAt != "" {
		d, err := ParseDate(ct.CreatedAt)
		if err != nil {
			return Transaction{}, errors.Join(ErrInvalidDate, err)
		}
		t.CreatedAt = d
	}
	return t, nil
}

// NormalizeAmount rounds d to cents and rejects values the amount column cannot
// hold. Only the exponent and digit count are inspected before rounding, so huge
// exponents are refused without building their big-integer form.
func NormalizeAmount(d decimal.Decimal) (decimal.Decimal, error) {
	exp := int(d.Exponent())
	if exp < amountMinExponent || exp > amountIntegerDigits {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	if d.NumDigits()+exp > amountIntegerDigits {
		return decimal.Decimal{}, ErrInvalidAmount
	}

	rounded := d.Round(amountScale)
	if rounded.NumDigits()+int(rounded.Exponent()) > amountIntegerDigits {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return rounded, nil
}
