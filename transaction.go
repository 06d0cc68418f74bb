package sharpeful

import (
	"errors"
	"fmt"
	"time"

	"github.com/etnz/sharpeful/date"
	"github.com/shopspring/decimal"
)

// TxType is a typed string for identifying the side of a transaction.
type TxType string

const (
	Buy  TxType = "buy"
	Sell TxType = "sell"
)

// ErrInvalidTransaction is wrapped by every ValidationError.
var ErrInvalidTransaction = errors.New("invalid transaction")

// ValidationError reports why a transaction was rejected at ingestion.
type ValidationError struct {
	ID     string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("invalid transaction: %s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid transaction %q: %s %s", e.ID, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidTransaction }

// Transaction is a buy or a sell of a quantity of an instrument.
//
// Transactions are immutable: price resolution returns an enriched copy.
type Transaction struct {
	ID       string
	Symbol   string
	Type     TxType
	Quantity decimal.Decimal
	Price    *decimal.Decimal // nil when no execution price was recorded.
	Datetime time.Time
}

// Date returns the calendar day of the transaction, in UTC.
func (t Transaction) Date() date.Date { return date.Of(t.Datetime) }

// HasPrice reports whether an execution price is known.
func (t Transaction) HasPrice() bool { return t.Price != nil }

// PriceOrZero returns the execution price, or zero when none is known.
func (t Transaction) PriceOrZero() decimal.Decimal {
	if t.Price == nil {
		return decimal.Zero
	}
	return *t.Price
}

// WithPrice returns a copy of t with its execution price set to p.
func (t Transaction) WithPrice(p decimal.Decimal) Transaction {
	t.Price = &p
	return t
}

// Validate checks the transaction invariants.
func (t Transaction) Validate() error {
	switch {
	case t.Symbol == "":
		return &ValidationError{ID: t.ID, Field: "symbol", Reason: "is empty"}
	case t.Type != Buy && t.Type != Sell:
		return &ValidationError{ID: t.ID, Field: "type", Reason: fmt.Sprintf("%q is neither buy nor sell", t.Type)}
	case !t.Quantity.IsPositive():
		return &ValidationError{ID: t.ID, Field: "quantity", Reason: fmt.Sprintf("%v must be positive", t.Quantity)}
	case t.Datetime.IsZero():
		return &ValidationError{ID: t.ID, Field: "datetime", Reason: "is missing"}
	case t.Price != nil && t.Price.IsNegative():
		return &ValidationError{ID: t.ID, Field: "price", Reason: fmt.Sprintf("%v is negative", t.Price)}
	}
	return nil
}
