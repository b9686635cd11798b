package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	securityModel "bayanihan_backend/internals/features/users/security/model"
)

func TestSeenIPBefore(t *testing.T) {
	history := []securityModel.SecurityEventModel{
		{Event: securityModel.EventUserLogin, IP: "203.0.113.10"},
		{Event: securityModel.EventUserLogin, IP: "203.0.113.11"},
		{Event: securityModel.EventLoginFailed, IP: "198.51.100.7"},
	}

	assert.True(t, SeenIPBefore(history, "203.0.113.10"))
	assert.True(t, SeenIPBefore(history, "203.0.113.11"))

	// a failed attempt from an IP does not make it a known login IP
	assert.False(t, SeenIPBefore(history, "198.51.100.7"))
	assert.False(t, SeenIPBefore(history, "192.0.2.1"))
	assert.False(t, SeenIPBefore(nil, "203.0.113.10"))
}
