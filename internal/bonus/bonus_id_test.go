package bonus_test

import (
	"testing"

	"go-bonus/internal/bonus"
	bonuserrors "go-bonus/internal/bonus/errors"

	"github.com/stretchr/testify/assert"
)

func TestNextBonusID(t *testing.T) {
	tests := []struct {
		maxID string
		want  string
	}{
		{"", "BON0001"},
		{"BON0001", "BON0002"},
		{"BON0042", "BON0043"},
		{"BON0099", "BON0100"},
		{"BON9998", "BON9999"},
	}

	for _, tt := range tests {
		got, err := bonus.NextBonusID(tt.maxID)
		assert.NoError(t, err, tt.maxID)
		assert.Equal(t, tt.want, got, tt.maxID)
	}
}

func TestNextBonusID_Exhausted(t *testing.T) {
	_, err := bonus.NextBonusID("BON9999")

	assert.ErrorIs(t, err, bonuserrors.ErrBonusIDExhausted)
}

func TestNextBonusID_Malformed(t *testing.T) {
	for _, maxID := range []string{"BONUS01", "XYZ0001", "BON12345", "BON00a1"} {
		_, err := bonus.NextBonusID(maxID)
		assert.ErrorIs(t, err, bonuserrors.ErrMalformedBonusID, maxID)
	}
}
