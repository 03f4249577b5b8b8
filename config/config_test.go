package config_test

import (
	"testing"

	"hostdeck/config"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name              string
		pastPolicy        string
		cleanerAssignment string
		expectErr         bool
	}{
		{name: "defaults", pastPolicy: config.PastPolicyFlag, cleanerAssignment: config.CleanerAssignmentHash},
		{name: "date and random", pastPolicy: config.PastPolicyDate, cleanerAssignment: config.CleanerAssignmentRandom},
		{name: "unknown past policy", pastPolicy: "checkout", cleanerAssignment: config.CleanerAssignmentHash, expectErr: true},
		{name: "unknown cleaner assignment", pastPolicy: config.PastPolicyFlag, cleanerAssignment: "round-robin", expectErr: true},
		{name: "empty past policy", pastPolicy: "", cleanerAssignment: config.CleanerAssignmentHash, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Dashboard.PastPolicy = tt.pastPolicy
			cfg.Dashboard.CleanerAssignment = tt.cleanerAssignment

			err := cfg.Validate()

			if tt.expectErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}
