package dto

import (
	"hostdeck/internal/domains/calendar/model"
	listingModel "hostdeck/internal/domains/listing/model"
)

type ClickDateRequest struct {
	Date string `json:"date" validate:"required,day"`
}

type ToggleRangeRequest struct {
	Start string `json:"start" validate:"required,day"`
	End   string `json:"end"   validate:"required,day"`
}

type ClickResponse struct {
	Status model.ClickStatus         `json:"status"`
	Anchor string                    `json:"anchor,omitempty"`
	Action listingModel.ToggleAction `json:"action,omitempty"`
	Start  string                    `json:"start,omitempty"`
	End    string                    `json:"end,omitempty"`
	Dates  []string                  `json:"dates,omitempty"`
}

func AnchorSet(date string) ClickResponse {
	return ClickResponse{Status: model.ClickStatusAnchorSet, Anchor: date}
}

func Toggled(result listingModel.ToggleResult) ClickResponse {
	return ClickResponse{
		Status: model.ClickStatusToggled,
		Action: result.Action,
		Start:  result.Start,
		End:    result.End,
		Dates:  result.Dates,
	}
}

type CalendarResponse struct {
	ListingID     string                    `json:"listing_id"`
	Availability  listingModel.Availability `json:"availability"`
	PendingAnchor *string                   `json:"pending_anchor"`
}
