package dto

import (
	listingModel "hostdeck/internal/domains/listing/model"
	"hostdeck/internal/domains/operations/model"
)

type StartOnboardingRequest struct {
	GuestName string                `json:"guest_name" validate:"required,max=200"`
	CheckIn   string                `json:"check_in"   validate:"required,day"`
	CheckOut  string                `json:"check_out"  validate:"required,day"`
	ListingID string                `json:"listing_id" validate:"required"`
	Platform  listingModel.Platform `json:"platform"   validate:"required,oneof=airbnb booking vrbo"`
	Notes     string                `json:"notes"      validate:"max=2000"`
}

type OnboardingResponse struct {
	GuestName    string                `json:"guest_name"`
	ListingID    string                `json:"listing_id"`
	ListingTitle string                `json:"listing_title"`
	CheckIn      string                `json:"check_in"`
	CheckOut     string                `json:"check_out"`
	Platform     listingModel.Platform `json:"platform"`
	Nights       int                   `json:"nights"`
	Steps        []model.Step          `json:"steps"`
}

type StartOffboardingRequest struct {
	Completed []string `json:"completed" validate:"dive,required"`
}

type OffboardingResponse struct {
	Completed []string `json:"completed"`
	Remaining []string `json:"remaining"`
}
