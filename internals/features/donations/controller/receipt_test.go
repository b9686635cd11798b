package controller

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	donationModel "bayanihan_backend/internals/features/donations/model"
)

func confirmedDonation() *donationModel.DonationModel {
	confirmedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return &donationModel.DonationModel{
		ID:          uuid.New(),
		DonorID:     uuid.New(),
		CharityID:   uuid.New(),
		Amount:      decimal.NewFromInt(500),
		Status:      donationModel.DonationConfirmed,
		ConfirmedAt: &confirmedAt,
		CreatedAt:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestBuildReceipt(t *testing.T) {
	d := confirmedDonation()
	receipt := BuildReceipt(d, "Bantay Bata", "Juan dela Cruz")

	assert.Equal(t, "Juan dela Cruz", receipt["donor"])
	assert.Equal(t, "Bantay Bata", receipt["charity"])
	assert.Equal(t, "500.00", receipt["amount"])
	assert.Equal(t, "PHP", receipt["currency"])
	assert.Equal(t, donationModel.DonationConfirmed, receipt["status"])
	assert.Contains(t, receipt, "confirmed_at")
}

func TestBuildReceiptHidesAnonymousDonor(t *testing.T) {
	d := confirmedDonation()
	d.Anonymous = true

	receipt := BuildReceipt(d, "Bantay Bata", "Juan dela Cruz")
	assert.Equal(t, "Anonymous donor", receipt["donor"])
}

func TestReceiptNumberIsStableAndReadable(t *testing.T) {
	d := confirmedDonation()

	first := ReceiptNumber(d)
	assert.Equal(t, first, ReceiptNumber(d))
	assert.True(t, strings.HasPrefix(first, "RCPT-2026-"))
	assert.Len(t, first, len("RCPT-2026-")+12)
}
