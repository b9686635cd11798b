package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"bayanihan_backend/internals/constants"
	charityModel "bayanihan_backend/internals/features/charities/charity/model"
	notificationModel "bayanihan_backend/internals/features/notifications/model"
	notificationService "bayanihan_backend/internals/features/notifications/service"
	securityModel "bayanihan_backend/internals/features/users/security/model"
	securityService "bayanihan_backend/internals/features/users/security/service"
	userModel "bayanihan_backend/internals/features/users/user/model"
	helper "bayanihan_backend/internals/helpers"
)

// VerificationController hosts the admin-only workflow over the charity
// registry: approve/reject plus user suspension/activation.
type VerificationController struct {
	DB *gorm.DB
}

func NewVerificationController(db *gorm.DB) *VerificationController {
	return &VerificationController{DB: db}
}

// Index lists charities awaiting a decision.
func (vc *VerificationController) Index(c *fiber.Ctx) error {
	page := helper.ParsePage(c, helper.AdminOpts)

	var total int64
	base := vc.DB.Model(&charityModel.CharityModel{}).
		Where("verification_status = ?", charityModel.VerificationPending)
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load verifications")
	}

	var pending []charityModel.CharityModel
	if err := base.Order("created_at ASC").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&pending).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load verifications")
	}

	return helper.Success(c, "OK", fiber.Map{
		"charities": pending,
		"meta":      helper.BuildPageMeta(total, page),
	})
}

func (vc *VerificationController) AllCharities(c *fiber.Ctx) error {
	page := helper.ParsePage(c, helper.AdminOpts)

	var total int64
	if err := vc.DB.Model(&charityModel.CharityModel{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load charities")
	}

	var charities []charityModel.CharityModel
	if err := vc.DB.Order("created_at DESC").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&charities).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load charities")
	}

	return helper.Success(c, "OK", fiber.Map{
		"charities": charities,
		"meta":      helper.BuildPageMeta(total, page),
	})
}

func (vc *VerificationController) Users(c *fiber.Ctx) error {
	page := helper.ParsePage(c, helper.AdminOpts)

	q := vc.DB.Model(&userModel.UserModel{})
	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load users")
	}

	var users []userModel.UserModel
	if err := q.Order("created_at DESC").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&users).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load users")
	}

	return helper.Success(c, "OK", fiber.Map{
		"users": users,
		"meta":  helper.BuildPageMeta(total, page),
	})
}

// Approve moves pending → approved. The transition table makes the decision
// terminal: an already-decided charity cannot be re-decided.
func (vc *VerificationController) Approve(c *fiber.Ctx) error {
	return vc.decide(c, charityModel.VerificationApproved,
		"Your charity has been approved. You are now visible in the public directory.")
}

// Reject moves pending → rejected, terminally.
func (vc *VerificationController) Reject(c *fiber.Ctx) error {
	return vc.decide(c, charityModel.VerificationRejected,
		"Your charity registration was rejected. Contact support for details.")
}

func (vc *VerificationController) decide(c *fiber.Ctx, target, ownerMessage string) error {
	var charity charityModel.CharityModel
	if err := vc.DB.First(&charity, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Charity not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load charity")
	}

	if !charityModel.CanTransitionVerification(charity.VerificationStatus, target) {
		return helper.Error(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Cannot move charity from '%s' to '%s'", charity.VerificationStatus, target))
	}

	// guard on the source state so a concurrent decision cannot overwrite
	res := vc.DB.Model(&charityModel.CharityModel{}).
		Where("id = ? AND verification_status = ?", charity.ID, charityModel.VerificationPending).
		Update("verification_status", target)
	if res.Error != nil {
		log.Printf("[ERROR] verification decide: %v", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update charity")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Charity has already been decided")
	}
	charity.VerificationStatus = target

	notificationService.SendSystemAlert(vc.DB, charity.OwnerID, notificationModel.KindInfo,
		ownerMessage, map[string]interface{}{"charity_id": charity.ID.String()})

	return helper.Success(c, "Verification updated", charity)
}

// SuspendUser flips a user to inactive. Their tokens stop working on the next
// request because the auth middleware re-checks status.
func (vc *VerificationController) SuspendUser(c *fiber.Ctx) error {
	return vc.setUserStatus(c, constants.StatusInactive, securityModel.EventUserSuspended, "User suspended")
}

func (vc *VerificationController) ActivateUser(c *fiber.Ctx) error {
	return vc.setUserStatus(c, constants.StatusActive, securityModel.EventUserActivated, "User activated")
}

func (vc *VerificationController) setUserStatus(c *fiber.Ctx, status, event, message string) error {
	var user userModel.UserModel
	if err := vc.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load user")
	}

	if err := vc.DB.Model(&user).Update("status", status).Error; err != nil {
		log.Printf("[ERROR] user status update: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	user.Status = status

	securityService.LogActivity(vc.DB, &user, event, c.IP(), nil)
	return helper.Success(c, message, user)
}
