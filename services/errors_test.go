package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("credit limit %0.2f exceeded", 50000.0)
	assert.EqualError(t, err, "credit limit 50000.00 exceeded")
	assert.True(t, IsValidationError(err))

	wrapped := fmt.Errorf("creating builty: %w", err)
	assert.True(t, IsValidationError(wrapped))

	assert.False(t, IsValidationError(errors.New("plain failure")))
	assert.False(t, IsValidationError(nil))
}
