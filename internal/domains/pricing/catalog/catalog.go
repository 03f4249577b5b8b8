package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"slices"

	"hostdeck/internal/domains/pricing/model"

	"github.com/BurntSushi/toml"
)

//go:embed pricing.toml
var raw string

var ErrMalformed = errors.New("malformed pricing catalog")

type Catalog struct {
	DefaultPrice   float64              `toml:"default_price"`
	WeekendPremium float64              `toml:"weekend_premium"`
	Recommendation model.Recommendation `toml:"recommendation"`
	Competitors    []model.Competitor   `toml:"competitors"`
	Trend          struct {
		Days          []string  `toml:"days"`
		Weekend       []string  `toml:"weekend"`
		CompetitorAvg []float64 `toml:"competitor_avg"`
		CompetitorMin []float64 `toml:"competitor_min"`
	} `toml:"trend"`
}

// Load decodes the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(raw)
}

func Parse(data string) (*Catalog, error) {
	c := &Catalog{}

	if _, err := toml.Decode(data, c); err != nil {
		return nil, fmt.Errorf("failed to decode pricing catalog: %w", err)
	}

	days := len(c.Trend.Days)
	if days == 0 || len(c.Trend.CompetitorAvg) != days || len(c.Trend.CompetitorMin) != days {
		return nil, fmt.Errorf("%w: trend series must cover every day", ErrMalformed)
	}

	return c, nil
}

// TrendFor lays the host's price over the market series, with the weekend premium on weekend days.
func (c *Catalog) TrendFor(base float64) model.Trend {
	yours := make([]float64, len(c.Trend.Days))

	for i, day := range c.Trend.Days {
		yours[i] = base
		if slices.Contains(c.Trend.Weekend, day) {
			yours[i] = math.Round(base * (1 + c.WeekendPremium))
		}
	}

	return model.Trend{
		Days:          slices.Clone(c.Trend.Days),
		YourPrice:     yours,
		CompetitorAvg: slices.Clone(c.Trend.CompetitorAvg),
		CompetitorMin: slices.Clone(c.Trend.CompetitorMin),
	}
}
