package controller

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	usageDTO "bayanihan_backend/internals/features/fundusage/dto"
)

func TestStoreRequestSpendingDateIsOptional(t *testing.T) {
	req := usageDTO.StoreFundUsageRequest{
		Amount:   decimal.NewFromInt(500),
		Category: "supplies",
	}
	assert.NoError(t, validate.Struct(req))
}

func TestParseSpentAtDefaultsToNow(t *testing.T) {
	before := time.Now()
	got, err := parseSpentAt("")
	require.NoError(t, err)
	assert.False(t, got.Before(before))
	assert.False(t, got.After(time.Now()))
}

func TestParseSpentAtFormats(t *testing.T) {
	got, err := parseSpentAt("2026-08-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), *got)

	got, err = parseSpentAt("2026-08-01T10:30:00+08:00")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Hour())

	_, err = parseSpentAt("last tuesday")
	assert.Error(t, err)
}
