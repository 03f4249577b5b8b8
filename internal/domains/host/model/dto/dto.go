package dto

import (
	"hostdeck/internal/domains/host/model"
	"hostdeck/shared/constant"
	gDto "hostdeck/shared/dto"
	"hostdeck/shared/timezone"
)

type HostResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FullName  *string `json:"full_name,omitempty"`
	Role      string  `json:"role"`
	Active    bool    `json:"active"`
	LastLogin *string `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *HostResponse) FromModel(host model.Host) {
	r.ID = host.ID
	r.Email = host.Email
	r.FullName = host.FullName
	r.Role = host.Role
	r.Active = host.Active

	if host.LastLogin != nil {
		lastLogin := timezone.Format(*host.LastLogin, constant.DateFormat)
		r.LastLogin = &lastLogin
	}

	r.Metadata.FromModel(host.Metadata)
}

type UpdateProfileRequest struct {
	FullName *string `db:"full_name" json:"full_name,omitempty" validate:"omitempty,min=1,max=120"`
}
