package sharpeful

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
)

// Instrument is the reference data of a tradable symbol.
type Instrument struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Sector Sector `json:"sector"`
}

// Instruments is an immutable catalog of instruments indexed by symbol.
type Instruments struct {
	list     []Instrument
	bySymbol map[string]int
}

// NewInstruments creates a catalog. A symbol declared twice keeps its first declaration.
func NewInstruments(list ...Instrument) *Instruments {
	c := &Instruments{bySymbol: make(map[string]int, len(list))}
	for _, in := range list {
		if _, exists := c.bySymbol[in.Symbol]; exists {
			continue
		}
		c.bySymbol[in.Symbol] = len(c.list)
		c.list = append(c.list, in)
	}
	return c
}

// Lookup returns the instrument for symbol. Unknown symbols resolve to an
// instrument named after the symbol in the Other sector.
func (c *Instruments) Lookup(symbol string) Instrument {
	if c != nil {
		if i, ok := c.bySymbol[symbol]; ok {
			return c.list[i]
		}
	}
	return Instrument{Symbol: symbol, Name: symbol, Sector: Other}
}

// Has reports whether symbol is declared in the catalog.
func (c *Instruments) Has(symbol string) bool {
	if c == nil {
		return false
	}
	_, ok := c.bySymbol[symbol]
	return ok
}

// Symbols returns the declared symbols in declaration order.
func (c *Instruments) Symbols() []string {
	if c == nil {
		return nil
	}
	symbols := make([]string, 0, len(c.list))
	for _, in := range c.list {
		symbols = append(symbols, in.Symbol)
	}
	return symbols
}

// List returns a copy of the declared instruments.
func (c *Instruments) List() []Instrument {
	if c == nil {
		return nil
	}
	return slices.Clone(c.list)
}

// Len returns the number of declared instruments.
func (c *Instruments) Len() int {
	if c == nil {
		return 0
	}
	return len(c.list)
}

// DecodeInstruments reads a JSON array of instruments.
func DecodeInstruments(r io.Reader) (*Instruments, error) {
	var list []Instrument
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("cannot decode instruments: %w", err)
	}
	for i, in := range list {
		if in.Symbol == "" {
			return nil, fmt.Errorf("instrument #%d has no symbol", i)
		}
		if in.Name == "" {
			list[i].Name = in.Symbol
		}
	}
	return NewInstruments(list...), nil
}
