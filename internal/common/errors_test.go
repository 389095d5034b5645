package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	err := NewUserError("no balance recorded", ErrNoBalanceSnapshot)

	assert.Equal(t, "no balance recorded: no balance snapshot recorded", err.Error())
	assert.ErrorIs(t, err, ErrNoBalanceSnapshot)
}

func TestUserError_NoWrapped(t *testing.T) {
	err := NewUserError("standalone message", nil)
	assert.Equal(t, "standalone message", err.Error())
}
