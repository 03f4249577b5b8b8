package password_test

import (
	"strings"
	"testing"

	"hostdeck/shared/password"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	hash, err := password.Hash("correct horse battery")

	assert.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	_, err = password.Hash("")
	assert.Error(t, err)

	_, err = password.Hash(strings.Repeat("x", 80))
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("correct horse battery")
	assert.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  error
	}{
		{name: "matching password", password: "correct horse battery", hash: hash},
		{name: "wrong password", password: "wrong", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty hash", password: "correct horse battery", hash: "", wantErr: password.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
