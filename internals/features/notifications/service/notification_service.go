package service

import (
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"bayanihan_backend/internals/constants"
	notificationModel "bayanihan_backend/internals/features/notifications/model"
	userModel "bayanihan_backend/internals/features/users/user/model"
)

// SendSystemAlert writes one notification row. Fire-and-forget: the caller's
// workflow must not fail because a notification could not be written.
func SendSystemAlert(db *gorm.DB, userID uuid.UUID, kind, message string, data map[string]interface{}) {
	n := notificationModel.NotificationModel{
		UserID:  userID,
		Kind:    kind,
		Message: message,
		Data:    datatypes.JSONMap(data),
	}
	if err := db.Create(&n).Error; err != nil {
		log.WithFields(log.Fields{"user_id": userID, "kind": kind, "err": err}).
			Warn("failed to write notification")
	}
}

// BuildAdminAlerts materializes one notification per admin for a broadcast.
func BuildAdminAlerts(admins []userModel.UserModel, message string, data map[string]interface{}) []notificationModel.NotificationModel {
	out := make([]notificationModel.NotificationModel, 0, len(admins))
	for _, admin := range admins {
		out = append(out, notificationModel.NotificationModel{
			UserID:  admin.ID,
			Kind:    notificationModel.KindInfo,
			Message: message,
			Data:    datatypes.JSONMap(data),
		})
	}
	return out
}

// NotifyAdmins fans a message out to every admin user. Explicit query-then-
// notify so partial delivery stays visible in the logs.
func NotifyAdmins(db *gorm.DB, message string, data map[string]interface{}) {
	var admins []userModel.UserModel
	if err := db.Where("role = ?", constants.RoleAdmin).Find(&admins).Error; err != nil {
		log.Printf("[ERROR] admin fan-out query: %v", err)
		return
	}
	for _, n := range BuildAdminAlerts(admins, message, data) {
		if err := db.Create(&n).Error; err != nil {
			log.WithFields(log.Fields{"admin_id": n.UserID, "err": err}).
				Warn("admin fan-out: notification not delivered")
		}
	}
}
