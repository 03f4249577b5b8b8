package model

import listingModel "hostdeck/internal/domains/listing/model"

const (
	EntityNameChat    = "chat"
	EntityNameRequest = "booking request"

	// SuggestionCount is the number of reply suggestions offered at once.
	SuggestionCount = 3
)

type Sender string

const (
	SenderGuest Sender = "guest"
	SenderHost  Sender = "host"
)

type Message struct {
	Text      string `json:"text"      toml:"text"`
	Sender    Sender `json:"sender"    toml:"sender"`
	Timestamp string `json:"timestamp" toml:"timestamp"`
}

type Chat struct {
	ID        string                `json:"id"         toml:"id"`
	GuestName string                `json:"guest_name" toml:"guest_name"`
	Platform  listingModel.Platform `json:"platform"   toml:"platform"`
	Preview   string                `json:"preview"    toml:"preview"`
	IsAuto    bool                  `json:"is_auto"    toml:"is_auto"`
	Messages  []Message             `json:"messages"   toml:"messages"`
}

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusDeclined RequestStatus = "declined"
)

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionDecline Decision = "decline"
)

// Status is the request status a decision leads to.
func (d Decision) Status() RequestStatus {
	if d == DecisionApprove {
		return RequestStatusApproved
	}

	return RequestStatusDeclined
}

// PlatformSpecific holds the guest signals only some channels provide.
type PlatformSpecific struct {
	GeniusLevel *int     `json:"genius_level,omitempty" toml:"genius_level"`
	GuestRating *float64 `json:"guest_rating,omitempty" toml:"guest_rating"`
	Verified    *bool    `json:"verified,omitempty"     toml:"verified"`
}

type BookingRequest struct {
	ID               string                `json:"id"                          toml:"id"`
	GuestName        string                `json:"guest_name"                  toml:"guest_name"`
	Platform         listingModel.Platform `json:"platform"                    toml:"platform"`
	Guests           int                   `json:"guests"                      toml:"guests"`
	CheckIn          string                `json:"check_in"                    toml:"check_in"`
	CheckOut         string                `json:"check_out"                   toml:"check_out"`
	Status           RequestStatus         `json:"status"                      toml:"status"`
	PropertyTitle    string                `json:"property_title"              toml:"property_title"`
	TotalPrice       float64               `json:"total_price"                 toml:"total_price"`
	PlatformSpecific *PlatformSpecific     `json:"platform_specific,omitempty" toml:"platform_specific"`
}
