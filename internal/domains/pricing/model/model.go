package model

const EntityName = "pricing"

type Competitor struct {
	Name      string  `json:"name"      toml:"name"`
	Distance  string  `json:"distance"  toml:"distance"`
	Rating    float64 `json:"rating"    toml:"rating"`
	Price     float64 `json:"price"     toml:"price"`
	Available bool    `json:"available" toml:"available"`
}

type Recommendation struct {
	Price       float64 `json:"price"       toml:"price"`
	Confidence  int     `json:"confidence"  toml:"confidence"`
	Explanation string  `json:"explanation" toml:"explanation"`
}

type Trend struct {
	Days          []string  `json:"days"`
	YourPrice     []float64 `json:"your_price"`
	CompetitorAvg []float64 `json:"competitor_avg"`
	CompetitorMin []float64 `json:"competitor_min"`
}

type Insights struct {
	ListingID      string         `json:"listing_id"`
	ListingTitle   string         `json:"listing_title"`
	CurrentPrice   float64        `json:"current_price"`
	Competitors    []Competitor   `json:"competitors"`
	Recommendation Recommendation `json:"recommendation"`
	Trend          Trend          `json:"trend"`
}

type ApplyResult struct {
	ListingID string  `json:"listing_id"`
	Price     float64 `json:"price"`
	Message   string  `json:"message"`
}
