package dto

import (
	"time"

	"hostdeck/internal/domains/integration/model"
	listingModel "hostdeck/internal/domains/listing/model"
)

type ConnectRequest struct {
	APIKey    string `json:"api_key"    validate:"required,max=512"`
	APISecret string `json:"api_secret" validate:"required,max=512"`
}

type IntegrationResponse struct {
	Platform    listingModel.Platform `json:"platform"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Connected   bool                  `json:"connected"`
	APIKeyHint  string                `json:"api_key_hint,omitempty"`
	LastSync    *time.Time            `json:"last_sync,omitempty"`
}

// FromModel fills the response of stored; a zero stored value renders as disconnected.
func (r *IntegrationResponse) FromModel(platform listingModel.Platform, stored model.Integration) {
	descriptor := model.Descriptors[platform]

	r.Platform = platform
	r.Name = descriptor.Name
	r.Description = descriptor.Description
	r.Connected = stored.Connected
	r.APIKeyHint = stored.APIKeyHint
	r.LastSync = stored.LastSync
}
