package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bayanihan_backend/internals/constants"
	campaignModel "bayanihan_backend/internals/features/campaigns/model"
	charityModel "bayanihan_backend/internals/features/charities/charity/model"
	donationModel "bayanihan_backend/internals/features/donations/model"
	userModel "bayanihan_backend/internals/features/users/user/model"
	helper "bayanihan_backend/internals/helpers"
)

type MetricsController struct {
	DB *gorm.DB
}

func NewMetricsController(db *gorm.DB) *MetricsController {
	return &MetricsController{DB: db}
}

// PlatformMetrics backs the public landing page counters. Everything here is
// non-sensitive aggregate data.
func (mc *MetricsController) PlatformMetrics(c *fiber.Ctx) error {
	var (
		totalUsers        int64
		donors            int64
		approvedCharities int64
		campaigns         int64
		donations         int64
	)

	if err := mc.DB.Model(&userModel.UserModel{}).Count(&totalUsers).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load metrics")
	}
	if err := mc.DB.Model(&userModel.UserModel{}).
		Where("role = ?", constants.RoleDonor).Count(&donors).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load metrics")
	}
	if err := mc.DB.Model(&charityModel.CharityModel{}).
		Where("verification_status = ?", charityModel.VerificationApproved).
		Count(&approvedCharities).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load metrics")
	}
	if err := mc.DB.Model(&campaignModel.CampaignModel{}).
		Where("status = ?", campaignModel.CampaignPublished).Count(&campaigns).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load metrics")
	}
	if err := mc.DB.Model(&donationModel.DonationModel{}).
		Where("status = ?", donationModel.DonationConfirmed).Count(&donations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load metrics")
	}

	return helper.Success(c, "OK", fiber.Map{
		"total_users":         totalUsers,
		"donors":              donors,
		"approved_charities":  approvedCharities,
		"active_campaigns":    campaigns,
		"confirmed_donations": donations,
	})
}
