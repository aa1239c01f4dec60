package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorConstants(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectedMsg string
	}{
		{"ErrAlreadySubscribed", ErrAlreadySubscribed, "email already subscribed"},
		{"ErrCEPNotFound", ErrCEPNotFound, "cep not found"},
		{"ErrInvalidCEP", ErrInvalidCEP, "invalid cep"},
		{"ErrRateLimited", ErrRateLimited, "too many submissions"},
		{"ErrPolicyNotAccepted", ErrPolicyNotAccepted, "privacy policy not accepted"},
		{"ErrUnknownProduct", ErrUnknownProduct, "unknown product"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.err)
			assert.Equal(t, tt.expectedMsg, tt.err.Error())
		})
	}
}

func TestErrorWrapping(t *testing.T) {
	wrapped := fmt.Errorf("subscribe foo@bar.com: %w", ErrAlreadySubscribed)
	assert.True(t, errors.Is(wrapped, ErrAlreadySubscribed))
	assert.False(t, errors.Is(wrapped, ErrCEPNotFound))
}
