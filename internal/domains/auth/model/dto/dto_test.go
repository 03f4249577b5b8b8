package dto_test

import (
	"testing"

	"hostdeck/infras/jwt"
	"hostdeck/internal/domains/auth/model/dto"
	"hostdeck/shared/constant"

	"github.com/stretchr/testify/assert"
)

func TestTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	var res dto.TokenResponse
	res.FromTokenPair(tokenPair)

	assert.Equal(t, "access", res.AccessToken)
	assert.Equal(t, "refresh", res.RefreshToken)
	assert.Equal(t, "Bearer", res.TokenType)
	assert.Equal(t, int64(900), res.ExpiresIn)
}

func TestRegisterRequest_ToHostModel(t *testing.T) {
	name := "Jamie Host"
	req := dto.RegisterRequest{Email: "host@example.com", Password: "secret-password", FullName: &name}

	host := req.ToHostModel(constant.ContextGuest, "hashed")

	assert.NotEmpty(t, host.ID)
	assert.Equal(t, "host@example.com", host.Email)
	assert.Equal(t, "hashed", host.Password)
	assert.Equal(t, constant.RoleHost, host.Role)
	assert.True(t, host.Active)
	assert.Equal(t, constant.ContextGuest, host.CreatedBy)
	assert.Equal(t, host.CreatedAt, host.ModifiedAt)
}
