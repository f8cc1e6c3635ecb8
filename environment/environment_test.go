package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironment_Validate(t *testing.T) {
	tests := []struct {
		name    string
		env     Environment
		wantErr error
	}{
		{
			name: "valid environment",
			env: Environment{
				Name:   "Production",
				URL:    "https://app.example.com",
				Status: StatusUp,
			},
			wantErr: nil,
		},
		{
			name: "missing name",
			env: Environment{
				URL:    "https://app.example.com",
				Status: StatusUp,
			},
			wantErr: ErrInvalidEnvironmentName,
		},
		{
			name: "missing url",
			env: Environment{
				Name:   "Production",
				Status: StatusUp,
			},
			wantErr: ErrInvalidEnvironmentURL,
		},
		{
			name: "unknown status",
			env: Environment{
				Name:   "Production",
				URL:    "https://app.example.com",
				Status: "Degraded",
			},
			wantErr: ErrInvalidStatus,
		},
		{
			name: "empty status",
			env: Environment{
				Name: "Production",
				URL:  "https://app.example.com",
			},
			wantErr: ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.env.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStatus_IsValid(t *testing.T) {
	assert.True(t, StatusUp.IsValid())
	assert.True(t, StatusDown.IsValid())
	assert.True(t, StatusMaintenance.IsValid())
	assert.False(t, Status("up").IsValid())
	assert.False(t, Status("").IsValid())
}
