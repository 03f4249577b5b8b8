package dto

import "hostdeck/internal/domains/messaging/model"

type SendMessageRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

type DecideRequest struct {
	Decision model.Decision `json:"decision" validate:"required,oneof=approve decline"`
}

type AutoReplyRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

type AutoReplyResponse struct {
	Enabled bool `json:"enabled"`
}

type SuggestionsResponse struct {
	ChatID      string   `json:"chat_id"`
	Suggestions []string `json:"suggestions"`
}
