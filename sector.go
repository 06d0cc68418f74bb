package sharpeful

import (
	"encoding/json"
	"fmt"
)

// Sector classifies an instrument. The set is closed, with Other for anything unknown.
type Sector int

const (
	Other Sector = iota
	Technology
	Financial
	Healthcare
	Consumer
	Industrials
	Energy
	RealEstate
	Utilities
	Materials
	Communication
	ETF
)

var sectorNames = map[Sector]string{
	Other:         "Other",
	Technology:    "Technology",
	Financial:     "Financial",
	Healthcare:    "Healthcare",
	Consumer:      "Consumer",
	Industrials:   "Industrials",
	Energy:        "Energy",
	RealEstate:    "Real Estate",
	Utilities:     "Utilities",
	Materials:     "Materials",
	Communication: "Communication",
	ETF:           "ETF",
}

func (s Sector) String() string {
	if name, ok := sectorNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Sector(%d)", int(s))
}

// ParseSector returns the sector with that name, or Other if the name is unknown.
func ParseSector(name string) Sector {
	for s, n := range sectorNames {
		if n == name {
			return s
		}
	}
	return Other
}

func (s Sector) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

func (s *Sector) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*s = ParseSector(name)
	return nil
}
