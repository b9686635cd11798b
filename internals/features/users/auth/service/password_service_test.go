package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("donor123")
	require.NoError(t, err)
	assert.NotEqual(t, "donor123", hashed)

	assert.NoError(t, CheckPasswordHash(hashed, "donor123"))
	assert.Error(t, CheckPasswordHash(hashed, "Donor123"))
}
