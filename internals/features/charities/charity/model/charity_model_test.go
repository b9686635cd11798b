package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerificationPendingIsTheOnlySourceState(t *testing.T) {
	assert.True(t, CanTransitionVerification(VerificationPending, VerificationApproved))
	assert.True(t, CanTransitionVerification(VerificationPending, VerificationRejected))

	// decisions are terminal: no re-approving a rejected charity, no
	// re-deciding an approved one
	assert.False(t, CanTransitionVerification(VerificationRejected, VerificationApproved))
	assert.False(t, CanTransitionVerification(VerificationApproved, VerificationRejected))
	assert.False(t, CanTransitionVerification(VerificationApproved, VerificationApproved))
	assert.False(t, CanTransitionVerification(VerificationRejected, VerificationPending))
	assert.False(t, CanTransitionVerification(VerificationApproved, VerificationPending))
}

func TestIsApproved(t *testing.T) {
	assert.True(t, (&CharityModel{VerificationStatus: VerificationApproved}).IsApproved())
	assert.False(t, (&CharityModel{VerificationStatus: VerificationPending}).IsApproved())
	assert.False(t, (&CharityModel{VerificationStatus: VerificationRejected}).IsApproved())
}
