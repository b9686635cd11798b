package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDonationTransitionsFromPending(t *testing.T) {
	assert.True(t, CanTransitionDonation(DonationPending, DonationConfirmed))
	assert.True(t, CanTransitionDonation(DonationPending, DonationRejected))
}

func TestDonationTerminalStatesAreFinal(t *testing.T) {
	for _, terminal := range []string{DonationConfirmed, DonationRejected} {
		for _, target := range []string{DonationPending, DonationConfirmed, DonationRejected} {
			assert.False(t, CanTransitionDonation(terminal, target),
				"%s -> %s must be illegal", terminal, target)
		}
	}
}

func TestDonationUnknownStatusHasNoTransitions(t *testing.T) {
	assert.False(t, CanTransitionDonation("completed", DonationConfirmed))
	assert.False(t, CanTransitionDonation("", DonationConfirmed))
}
