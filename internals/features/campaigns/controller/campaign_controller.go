package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	campaignDTO "bayanihan_backend/internals/features/campaigns/dto"
	campaignModel "bayanihan_backend/internals/features/campaigns/model"
	charityModel "bayanihan_backend/internals/features/charities/charity/model"
	helper "bayanihan_backend/internals/helpers"
)

var validate = validator.New()

type CampaignController struct {
	DB *gorm.DB
}

func NewCampaignController(db *gorm.DB) *CampaignController {
	return &CampaignController{DB: db}
}

// Index lists a charity's published campaigns, newest first, 12 per page.
func (cc *CampaignController) Index(c *fiber.Ctx) error {
	charityID := c.Params("id")
	page := helper.ParsePage(c, helper.DirectoryOpts)

	base := cc.DB.Model(&campaignModel.CampaignModel{}).
		Where("charity_id = ? AND status = ?", charityID, campaignModel.CampaignPublished)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load campaigns")
	}

	var campaigns []campaignModel.CampaignModel
	if err := base.Order("created_at DESC").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&campaigns).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load campaigns")
	}

	return helper.Success(c, "OK", fiber.Map{
		"campaigns": campaigns,
		"meta":      helper.BuildPageMeta(total, page),
	})
}

func (cc *CampaignController) Show(c *fiber.Ctx) error {
	var campaign campaignModel.CampaignModel
	if err := cc.DB.First(&campaign, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Campaign not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load campaign")
	}
	return helper.Success(c, "OK", campaign)
}

func (cc *CampaignController) Store(c *fiber.Ctx) error {
	charity, err := cc.ownedCharityByParam(c)
	if err != nil {
		return err
	}

	var req campaignDTO.CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	status := req.Status
	if status == "" {
		status = campaignModel.CampaignDraft
	}
	deadline, err := parseDeadline(req.DeadlineAt)
	if err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity,
			"Validation failed", fiber.Map{"deadline_at": "datetime"})
	}

	campaign := campaignModel.CampaignModel{
		CharityID:    charity.ID,
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		DeadlineAt:   deadline,
		Status:       status,
	}
	if err := cc.DB.Create(&campaign).Error; err != nil {
		log.Printf("[ERROR] campaign create: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create campaign")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Campaign created", campaign)
}

// Update mutates an owned campaign. Status changes must follow the lifecycle
// graph; arbitrary jumps are rejected before anything is persisted.
func (cc *CampaignController) Update(c *fiber.Ctx) error {
	campaign, err := cc.ownedCampaign(c)
	if err != nil {
		return err
	}

	var req campaignDTO.UpdateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Status != nil && !campaignModel.CanTransitionCampaign(campaign.Status, *req.Status) {
		return helper.Error(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Cannot move campaign from '%s' to '%s'", campaign.Status, *req.Status))
	}

	if req.Title != nil {
		campaign.Title = *req.Title
	}
	if req.Description != nil {
		campaign.Description = req.Description
	}
	if req.TargetAmount != nil {
		campaign.TargetAmount = req.TargetAmount
	}
	if req.DeadlineAt != nil {
		deadline, err := parseDeadline(req.DeadlineAt)
		if err != nil {
			return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity,
				"Validation failed", fiber.Map{"deadline_at": "datetime"})
		}
		campaign.DeadlineAt = deadline
	}
	if req.Status != nil {
		campaign.Status = *req.Status
	}

	if err := cc.DB.Save(campaign).Error; err != nil {
		log.Printf("[ERROR] campaign update: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update campaign")
	}
	return helper.Success(c, "Campaign updated", campaign)
}

func (cc *CampaignController) Destroy(c *fiber.Ctx) error {
	campaign, err := cc.ownedCampaign(c)
	if err != nil {
		return err
	}
	if err := cc.DB.Delete(campaign).Error; err != nil {
		log.Printf("[ERROR] campaign delete: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete campaign")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// =======================
// internals
// =======================

func (cc *CampaignController) ownedCharityByParam(c *fiber.Ctx) (*charityModel.CharityModel, error) {
	var charity charityModel.CharityModel
	if err := cc.DB.First(&charity, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Charity not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load charity")
	}
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return nil, err
	}
	if charity.OwnerID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "You do not own this charity")
	}
	return &charity, nil
}

func (cc *CampaignController) ownedCampaign(c *fiber.Ctx) (*campaignModel.CampaignModel, error) {
	var campaign campaignModel.CampaignModel
	if err := cc.DB.First(&campaign, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Campaign not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load campaign")
	}

	var charity charityModel.CharityModel
	if err := cc.DB.First(&charity, "id = ?", campaign.CharityID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load charity")
	}
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return nil, err
	}
	if charity.OwnerID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "You do not own this campaign")
	}
	return &campaign, nil
}

func parseDeadline(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		// date-only input from the frontend form
		t, err = time.Parse("2006-01-02", *raw)
		if err != nil {
			return nil, err
		}
	}
	return &t, nil
}
