package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	notifModel "bayanihan_backend/internals/features/notifications/model"
	helper "bayanihan_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// Index lists the caller's notifications newest first. Pass ?unread=true to
// fetch only unread ones.
func (nc *NotificationController) Index(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	page := helper.ParsePage(c, helper.DirectoryOpts)

	base := nc.DB.Model(&notifModel.NotificationModel{}).Where("user_id = ?", userID)
	if c.Query("unread") == "true" {
		base = base.Where("read_at IS NULL")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load notifications")
	}

	var notifications []notifModel.NotificationModel
	if err := base.Order("created_at DESC").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&notifications).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load notifications")
	}

	return helper.Success(c, "OK", fiber.Map{
		"notifications": notifications,
		"meta":          helper.BuildPageMeta(total, page),
	})
}

func (nc *NotificationController) UnreadCount(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	var count int64
	if err := nc.DB.Model(&notifModel.NotificationModel{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count notifications")
	}
	return helper.Success(c, "OK", fiber.Map{"unread": count})
}

func (nc *NotificationController) MarkAsRead(c *fiber.Ctx) error {
	notification, err := nc.owned(c)
	if err != nil {
		return err
	}
	if notification.ReadAt == nil {
		now := time.Now()
		notification.ReadAt = &now
		if err := nc.DB.Save(notification).Error; err != nil {
			log.Printf("[ERROR] mark notification read: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to update notification")
		}
	}
	return helper.Success(c, "Notification marked as read", notification)
}

func (nc *NotificationController) MarkAllAsRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	res := nc.DB.Model(&notifModel.NotificationModel{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Update("read_at", time.Now())
	if res.Error != nil {
		log.Printf("[ERROR] mark all notifications read: %v", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update notifications")
	}
	return helper.Success(c, "All notifications marked as read", fiber.Map{"updated": res.RowsAffected})
}

func (nc *NotificationController) Destroy(c *fiber.Ctx) error {
	notification, err := nc.owned(c)
	if err != nil {
		return err
	}
	if err := nc.DB.Delete(notification).Error; err != nil {
		log.Printf("[ERROR] notification delete: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete notification")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (nc *NotificationController) owned(c *fiber.Ctx) (*notifModel.NotificationModel, error) {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return nil, err
	}
	var notification notifModel.NotificationModel
	if err := nc.DB.First(&notification, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Notification not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load notification")
	}
	if notification.UserID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "This notification is not yours")
	}
	return &notification, nil
}
