package reservation

import (
	"fmt"
)

// Tier is a contiguous band of rows sharing one flat price. A tier covers
// every row above the previous tier's MaxRow up to and including its own.
type Tier struct {
	Name   string  `yaml:"name"`
	MaxRow int     `yaml:"maxRow"`
	Price  float64 `yaml:"price"`
}

// TierTable prices seats by row. The last tier is the catch-all for every
// row beyond the previous boundary; its MaxRow is ignored.
type TierTable []Tier

// Validate checks that boundaries strictly increase and prices are positive.
func (t TierTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("tier table is empty")
	}
	prev := 0
	for i, tier := range t {
		if tier.Price <= 0 {
			return fmt.Errorf("tier %q: price must be positive", tier.Name)
		}
		if i == len(t)-1 {
			break
		}
		if tier.MaxRow <= prev {
			return fmt.Errorf("tier %q: max row %d must be greater than %d", tier.Name, tier.MaxRow, prev)
		}
		prev = tier.MaxRow
	}
	return nil
}

// PriceFor returns the price and tier name for a row.
func (t TierTable) PriceFor(row int) (float64, string) {
	for i, tier := range t {
		if i == len(t)-1 || row <= tier.MaxRow {
			return tier.Price, tier.Name
		}
	}
	return 0, ""
}
