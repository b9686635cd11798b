package controller

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRemainingBalance(t *testing.T) {
	received := decimal.NewFromFloat(1000.50)
	spent := decimal.NewFromFloat(400.25)

	assert.True(t, RemainingBalance(received, spent).Equal(decimal.NewFromFloat(600.25)))
	assert.True(t, RemainingBalance(received, received).IsZero())
}

func TestRemainingBalanceClampsAtZero(t *testing.T) {
	received := decimal.NewFromInt(100)
	spent := decimal.NewFromInt(250)

	assert.True(t, RemainingBalance(received, spent).IsZero())
}
