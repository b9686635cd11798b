package service

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	notificationModel "bayanihan_backend/internals/features/notifications/model"
	notificationService "bayanihan_backend/internals/features/notifications/service"
	securityModel "bayanihan_backend/internals/features/users/security/model"
	userModel "bayanihan_backend/internals/features/users/user/model"
)

// LogAuthEvent appends an audit row tied to a known user. Never fails the
// calling workflow.
func LogAuthEvent(db *gorm.DB, event string, user *userModel.UserModel, ip string, meta map[string]interface{}) {
	ev := securityModel.SecurityEventModel{
		Event:  event,
		UserID: &user.ID,
		Email:  &user.Email,
		IP:     ip,
		Meta:   datatypes.JSONMap(meta),
	}
	if err := db.Create(&ev).Error; err != nil {
		log.WithFields(log.Fields{"event": event, "user_id": user.ID, "err": err}).
			Warn("failed to write security event")
	}
}

// LogFailedLogin records an attempt keyed by email + IP. There may be no user
// row at all for that email.
func LogFailedLogin(db *gorm.DB, email, ip, reason string) {
	ev := securityModel.SecurityEventModel{
		Event: securityModel.EventLoginFailed,
		Email: &email,
		IP:    ip,
		Meta:  datatypes.JSONMap{"reason": reason},
	}
	if err := db.Create(&ev).Error; err != nil {
		log.WithFields(log.Fields{"email": email, "err": err}).
			Warn("failed to write failed-login event")
	}
	log.WithFields(log.Fields{"email": email, "ip": ip, "reason": reason}).
		Info("login attempt rejected")
}

// LogActivity appends a non-auth audit row (profile change, deactivation, ...).
func LogActivity(db *gorm.DB, user *userModel.UserModel, event, ip string, meta map[string]interface{}) {
	LogAuthEvent(db, event, user, ip, meta)
}

// SeenIPBefore reports whether any prior successful login for this user came
// from the given IP.
func SeenIPBefore(events []securityModel.SecurityEventModel, ip string) bool {
	for _, ev := range events {
		if ev.Event == securityModel.EventUserLogin && ev.IP == ip {
			return true
		}
	}
	return false
}

// CheckSuspiciousLogin runs after a successful login. A login from an IP the
// user has never used before emits a security notification. It never blocks
// the login.
func CheckSuspiciousLogin(db *gorm.DB, user *userModel.UserModel, ip string) {
	var prior []securityModel.SecurityEventModel
	if err := db.
		Where("user_id = ? AND event = ?", user.ID, securityModel.EventUserLogin).
		Order("created_at DESC").
		Limit(50).
		Find(&prior).Error; err != nil {
		log.Printf("[ERROR] suspicious-login lookup: %v", err)
		return
	}

	// first login ever is not suspicious
	if len(prior) <= 1 {
		return
	}

	// skip the event just written for this login
	if SeenIPBefore(prior[1:], ip) {
		return
	}

	log.WithFields(log.Fields{"user_id": user.ID, "ip": ip}).
		Warn("login from a new IP address")
	notificationService.SendSystemAlert(db, user.ID, notificationModel.KindSecurity,
		"New login to your account from an unrecognized device or location.",
		map[string]interface{}{"ip": ip})
}

// RecentEvents returns the admin activity-log page.
func RecentEvents(db *gorm.DB, event, email string, limit, offset int) ([]securityModel.SecurityEventModel, int64, error) {
	q := db.Model(&securityModel.SecurityEventModel{})
	if event != "" {
		q = q.Where("event = ?", event)
	}
	if email != "" {
		q = q.Where("email = ?", email)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []securityModel.SecurityEventModel
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&events).Error
	return events, total, err
}
