package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	notificationModel "bayanihan_backend/internals/features/notifications/model"
	userModel "bayanihan_backend/internals/features/users/user/model"
)

func TestBuildAdminAlertsOnePerAdmin(t *testing.T) {
	admins := []userModel.UserModel{
		{ID: uuid.New(), Role: "admin"},
		{ID: uuid.New(), Role: "admin"},
		{ID: uuid.New(), Role: "admin"},
	}

	alerts := BuildAdminAlerts(admins, "A new charity has registered and needs verification.", map[string]interface{}{
		"charity_name": "Bantay Kalikasan",
	})

	assert.Len(t, alerts, 3)
	seen := map[uuid.UUID]bool{}
	for i, n := range alerts {
		assert.Equal(t, admins[i].ID, n.UserID)
		assert.Equal(t, notificationModel.KindInfo, n.Kind)
		assert.Equal(t, "Bantay Kalikasan", n.Data["charity_name"])
		seen[n.UserID] = true
	}
	assert.Len(t, seen, 3)
}

func TestBuildAdminAlertsEmptySet(t *testing.T) {
	alerts := BuildAdminAlerts(nil, "msg", nil)
	assert.Empty(t, alerts)
}
