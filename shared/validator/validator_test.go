package validator_test

import (
	"strings"
	"testing"

	"hostdeck/shared/failure"
	"hostdeck/shared/validator"

	"github.com/stretchr/testify/assert"
)

type stayRequest struct {
	GuestName string `json:"guest_name" validate:"required"`
	Email     string `json:"email"      validate:"omitempty,email"`
	Guests    int    `json:"guests"     validate:"gte=1,lte=16"`
	Platform  string `json:"platform"   validate:"oneof=airbnb booking vrbo"`
	CheckIn   string `json:"check_in"   validate:"required,day"`
}

const pixelPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

func TestValidateStruct(t *testing.T) {
	valid := stayRequest{GuestName: "Sarah Johnson", Guests: 2, Platform: "airbnb", CheckIn: "2025-12-20"}

	tests := []struct {
		name    string
		mutate  func(r *stayRequest)
		wantErr string
	}{
		{name: "valid", mutate: func(_ *stayRequest) {}},
		{name: "missing guest name", mutate: func(r *stayRequest) { r.GuestName = "" }, wantErr: "guest_name is required"},
		{name: "invalid email", mutate: func(r *stayRequest) { r.Email = "nope" }, wantErr: "email must be a valid email address"},
		{name: "too many guests", mutate: func(r *stayRequest) { r.Guests = 40 }, wantErr: "guests must be less than or equal to 16"},
		{name: "unknown platform", mutate: func(r *stayRequest) { r.Platform = "expedia" }, wantErr: "platform must be one of airbnb booking vrbo"},
		{name: "malformed date", mutate: func(r *stayRequest) { r.CheckIn = "20/12/2025" }, wantErr: "check_in must be a date in yyyy-mm-dd format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantErr)
			assert.Equal(t, 400, failure.GetCode(err))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid body", body: `{"guest_name":"Michael Chen","guests":4,"platform":"booking","check_in":"2025-12-18"}`},
		{name: "fails validation", body: `{"guest_name":"","guests":4,"platform":"booking","check_in":"2025-12-18"}`, wantErr: true},
		{name: "malformed json", body: `{"guest_name":}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req stayRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVar_Photo(t *testing.T) {
	tests := []struct {
		name    string
		photo   string
		tag     string
		wantErr bool
	}{
		{name: "png accepted", photo: pixelPNG, tag: "mimetypes=image/png image/jpeg"},
		{name: "text rejected", photo: "data:text/plain;base64,SGVsbG8=", tag: "mimetypes=image/png image/jpeg", wantErr: true},
		{name: "not a data url", photo: "https://images.example.com/loft.jpg", tag: "mimetypes=image/png", wantErr: true},
		{name: "within size", photo: pixelPNG, tag: "maxfilesize=1"},
		{name: "over size", photo: "data:image/png;base64," + strings.Repeat("A", 4096), tag: "maxfilesize=0.001", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.photo, tt.tag)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
