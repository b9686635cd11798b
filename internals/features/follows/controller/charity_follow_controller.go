package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	charityModel "bayanihan_backend/internals/features/charities/charity/model"
	followModel "bayanihan_backend/internals/features/follows/model"
	helper "bayanihan_backend/internals/helpers"
)

type CharityFollowController struct {
	DB *gorm.DB
}

func NewCharityFollowController(db *gorm.DB) *CharityFollowController {
	return &CharityFollowController{DB: db}
}

// Toggle follows the charity if not followed, unfollows it otherwise, and
// reports the resulting state. The unique index on (donor_id, charity_id)
// keeps a double-submit from creating two rows.
func (fc *CharityFollowController) Toggle(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var charity charityModel.CharityModel
	if err := fc.DB.First(&charity, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Charity not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load charity")
	}
	if !charity.IsApproved() {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Charity is not available to follow")
	}

	var existing followModel.CharityFollowModel
	err = fc.DB.Where("donor_id = ? AND charity_id = ?", userID, charity.ID).First(&existing).Error
	switch {
	case err == nil:
		if err := fc.DB.Delete(&existing).Error; err != nil {
			log.Printf("[ERROR] unfollow: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to unfollow charity")
		}
		return helper.Success(c, "Charity unfollowed", fiber.Map{"following": false})
	case errors.Is(err, gorm.ErrRecordNotFound):
		follow := followModel.CharityFollowModel{DonorID: userID, CharityID: charity.ID}
		if err := fc.DB.Create(&follow).Error; err != nil {
			log.Printf("[ERROR] follow: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to follow charity")
		}
		return helper.Success(c, "Charity followed", fiber.Map{"following": true})
	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check follow status")
	}
}

func (fc *CharityFollowController) Status(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	var count int64
	if err := fc.DB.Model(&followModel.CharityFollowModel{}).
		Where("donor_id = ? AND charity_id = ?", userID, c.Params("id")).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check follow status")
	}
	return helper.Success(c, "OK", fiber.Map{"following": count > 0})
}

// MyFollowed lists the charities the donor follows, with enough fields for a
// card list.
func (fc *CharityFollowController) MyFollowed(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	page := helper.ParsePage(c, helper.DirectoryOpts)

	base := fc.DB.Model(&followModel.CharityFollowModel{}).
		Joins("JOIN charities ON charities.id = charity_follows.charity_id").
		Where("charity_follows.donor_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load followed charities")
	}

	var charities []charityModel.CharityModel
	if err := base.Select("charities.*").
		Order("charity_follows.created_at DESC").
		Limit(page.Limit()).Offset(page.Offset()).
		Scan(&charities).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load followed charities")
	}

	return helper.Success(c, "OK", fiber.Map{
		"charities": charities,
		"meta":      helper.BuildPageMeta(total, page),
	})
}

// FollowersCount is public: shown on the charity profile page.
func (fc *CharityFollowController) FollowersCount(c *fiber.Ctx) error {
	var count int64
	if err := fc.DB.Model(&followModel.CharityFollowModel{}).
		Where("charity_id = ?", c.Params("id")).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count followers")
	}
	return helper.Success(c, "OK", fiber.Map{"followers": count})
}
