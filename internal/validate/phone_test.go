package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"international", "+380501234567", true},
		{"national", "0501234567", true},
		{"national with separators", "050-123-45-67", true},
		{"international with spaces", "+380 67 111 22 33", true},
		{"parenthesized", "(050) 123 45 67", true},
		{"empty", "", false},
		{"too short international", "+38050123456", false},
		{"too long national", "05012345678", false},
		{"unknown operator", "0101234567", false},
		{"unknown operator international", "+380101234567", false},
		{"foreign prefix", "+15551234567", false},
		{"letters", "phone me", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := Phone(tt.phone)
			assert.Equal(t, tt.valid, ok)
			if !tt.valid {
				assert.NotEmpty(t, reason)
			}
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		phone string
		want  string
	}{
		{"+380501234567", "+380501234567"},
		{"0501234567", "+380501234567"},
		{"050-123-45-67", "+380501234567"},
		{"+380 67 111 22 33", "+380671112233"},
	}
	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			got, err := NormalizePhone(tt.phone)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := NormalizePhone("12345")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPhone)
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "+380 50 123 45 67", FormatPhone("+380501234567"))

	// Anything not in normalized form passes through unchanged.
	assert.Equal(t, "0501234567", FormatPhone("0501234567"))
	assert.Equal(t, "", FormatPhone(""))
}
