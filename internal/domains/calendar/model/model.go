package model

import "time"

const EntityName = "calendar"

type ClickStatus string

const (
	ClickStatusAnchorSet ClickStatus = "anchor_set"
	ClickStatusToggled   ClickStatus = "toggled"
)

// Anchor is the first click of a pending range selection.
type Anchor struct {
	ListingID string    `json:"listing_id"`
	Date      string    `json:"date"`
	SetAt     time.Time `json:"set_at"`
}

const (
	RejectReasonBookedAnchor = "booked_anchor"
	RejectReasonBookedRange  = "booked_range"
	RejectReasonInvalidRange = "invalid_range"
)
