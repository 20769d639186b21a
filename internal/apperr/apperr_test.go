package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindChecks(t *testing.T) {
	assert.True(t, IsAuth(Auth("invalid credentials")))
	assert.True(t, IsValidation(Validation("empty text")))
	assert.True(t, IsNetwork(Network("write failed", errors.New("timeout"))))

	assert.False(t, IsAuth(Validation("empty text")))
	assert.False(t, IsValidation(nil))
	assert.False(t, IsNetwork(errors.New("plain")))
}

func TestWrappedCauseSurvivesFurtherWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := Network("fetch profiles", cause)

	wrapped := fmt.Errorf("directory: %w", err)

	assert.True(t, IsNetwork(wrapped))
	assert.True(t, errors.Is(wrapped, cause))
	assert.Contains(t, err.Error(), "connection refused")
}
