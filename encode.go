package sharpeful

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/etnz/sharpeful/date"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// jtransaction is the JSONL representation of a transaction.
type jtransaction struct {
	ID       string           `json:"id"`
	Symbol   string           `json:"symbol"`
	Type     TxType           `json:"type"`
	Quantity decimal.Decimal  `json:"quantity"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	Datetime *time.Time       `json:"datetime,omitempty"`
	Date     date.Date        `json:"date"`
}

// DecodeTransactions decodes a JSONL transaction log, one transaction per line, and
// returns it sorted by datetime.
//
// A line without id is given a random one, a line without datetime happens at midnight
// UTC of its date. Any invalid transaction fails the whole decoding with a
// ValidationError.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	var txs []Transaction
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		content := bytes.TrimSpace(scanner.Bytes())
		if len(content) == 0 {
			continue // Skip empty lines
		}
		var jt jtransaction
		if err := json.Unmarshal(content, &jt); err != nil {
			return nil, fmt.Errorf("format error on line %d %q: %w", line, string(content), err)
		}
		tx := Transaction{
			ID:       jt.ID,
			Symbol:   jt.Symbol,
			Type:     jt.Type,
			Quantity: jt.Quantity,
			Price:    jt.Price,
		}
		switch {
		case jt.Datetime != nil:
			tx.Datetime = jt.Datetime.UTC()
		case !jt.Date.IsZero():
			tx.Datetime = jt.Date.Time()
		}
		if tx.ID == "" {
			tx.ID = uuid.NewString()
		}
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		txs = append(txs, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	slices.SortStableFunc(txs, func(a, b Transaction) int { return a.Datetime.Compare(b.Datetime) })
	return txs, nil
}

func (tx Transaction) wire() jtransaction {
	dt := tx.Datetime
	return jtransaction{
		ID:       tx.ID,
		Symbol:   tx.Symbol,
		Type:     tx.Type,
		Quantity: tx.Quantity,
		Price:    tx.Price,
		Datetime: &dt,
		Date:     tx.Date(),
	}
}

// MarshalJSON encodes the transaction as a line of a transaction log.
func (tx Transaction) MarshalJSON() ([]byte, error) { return json.Marshal(tx.wire()) }

// EncodeTransactions writes txs as JSONL, one transaction per line.
func EncodeTransactions(w io.Writer, txs []Transaction) error {
	enc := json.NewEncoder(w)
	for _, tx := range txs {
		if err := enc.Encode(tx.wire()); err != nil {
			return fmt.Errorf("cannot encode transaction %q: %w", tx.ID, err)
		}
	}
	return nil
}
