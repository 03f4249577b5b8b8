package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"hostdeck/internal/domains/messaging/model"

	"github.com/BurntSushi/toml"
)

//go:embed messaging.toml
var raw string

var ErrMalformed = errors.New("malformed messaging catalog")

type Catalog struct {
	Suggestions []string               `toml:"suggestions"`
	Chats       []model.Chat           `toml:"chats"`
	Requests    []model.BookingRequest `toml:"requests"`
}

func Load() (*Catalog, error) {
	return Parse(raw)
}

func Parse(data string) (*Catalog, error) {
	c := &Catalog{}

	if _, err := toml.Decode(data, c); err != nil {
		return nil, fmt.Errorf("failed to decode messaging catalog: %w", err)
	}

	if len(c.Suggestions) < model.SuggestionCount {
		return nil, fmt.Errorf("%w: at least %d suggestions required", ErrMalformed, model.SuggestionCount)
	}

	return c, nil
}
