package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	campaignModel "bayanihan_backend/internals/features/campaigns/model"
	charityModel "bayanihan_backend/internals/features/charities/charity/model"
	usageDTO "bayanihan_backend/internals/features/fundusage/dto"
	usageModel "bayanihan_backend/internals/features/fundusage/model"
	helper "bayanihan_backend/internals/helpers"
	"bayanihan_backend/internals/helpers/storage"
)

var validate = validator.New()

type FundUsageController struct {
	DB    *gorm.DB
	Storage *storage.LocalStore
}

func NewFundUsageController(db *gorm.DB, store *storage.LocalStore) *FundUsageController {
	return &FundUsageController{DB: db, Storage: store}
}

// CharityIndex lists a charity's whole expenditure log, most recent spending
// first. Anyone can read this; it is the core of the transparency promise.
func (fc *FundUsageController) CharityIndex(c *fiber.Ctx) error {
	base := fc.DB.Model(&usageModel.FundUsageLogModel{}).
		Where("charity_id = ?", c.Params("id"))
	if category := c.Query("category"); category != "" {
		base = base.Where("category = ?", category)
	}
	return fc.listLogs(c, base)
}

// CampaignIndex is the same log narrowed to one campaign.
func (fc *FundUsageController) CampaignIndex(c *fiber.Ctx) error {
	base := fc.DB.Model(&usageModel.FundUsageLogModel{}).
		Where("campaign_id = ?", c.Params("id"))
	if category := c.Query("category"); category != "" {
		base = base.Where("category = ?", category)
	}
	return fc.listLogs(c, base)
}

// Store appends an expenditure record against the campaign in the URL. Logs
// are append-only; there is deliberately no update or delete handler here.
func (fc *FundUsageController) Store(c *fiber.Ctx) error {
	campaign, charity, err := fc.ownedCampaign(c)
	if err != nil {
		return err
	}

	var req usageDTO.StoreFundUsageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !req.Amount.IsPositive() {
		return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity,
			"Validation failed", fiber.Map{"amount": "gt"})
	}

	spentAt, err := parseSpentAt(req.SpentAt)
	if err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity,
			"Validation failed", fiber.Map{"spent_at": "datetime"})
	}
	if spentAt.After(time.Now()) {
		return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity,
			"Validation failed", fiber.Map{"spent_at": "Spending date cannot be in the future"})
	}

	entry := usageModel.FundUsageLogModel{
		CharityID:   charity.ID,
		CampaignID:  campaign.ID,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		SpentAt:     *spentAt,
	}

	if fh, err := c.FormFile("attachment"); err == nil && fh != nil {
		path, _, err := fc.Storage.Save("fund_usage", fh)
		if err != nil {
			log.Printf("[ERROR] fund usage attachment: %v", err)
			return helper.Error(c, fiber.StatusUnprocessableEntity, "Failed to store attachment")
		}
		entry.AttachmentPath = &path
	}

	if err := fc.DB.Create(&entry).Error; err != nil {
		if entry.AttachmentPath != nil {
			fc.Storage.ReleaseOld(*entry.AttachmentPath)
		}
		log.Printf("[ERROR] fund usage create: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to record fund usage")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Fund usage recorded", entry)
}

// =======================
// internals
// =======================

func (fc *FundUsageController) listLogs(c *fiber.Ctx, base *gorm.DB) error {
	page := helper.ParsePage(c, helper.FundUsageOpts)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load fund usage logs")
	}

	var logs []usageModel.FundUsageLogModel
	if err := base.Order("spent_at DESC").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&logs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load fund usage logs")
	}

	return helper.Success(c, "OK", fiber.Map{
		"fund_usage_logs": logs,
		"meta":            helper.BuildPageMeta(total, page),
	})
}

func (fc *FundUsageController) ownedCampaign(c *fiber.Ctx) (*campaignModel.CampaignModel, *charityModel.CharityModel, error) {
	var campaign campaignModel.CampaignModel
	if err := fc.DB.First(&campaign, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fiber.NewError(fiber.StatusNotFound, "Campaign not found")
		}
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load campaign")
	}

	var charity charityModel.CharityModel
	if err := fc.DB.First(&charity, "id = ?", campaign.CharityID).Error; err != nil {
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load charity")
	}
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return nil, nil, err
	}
	if charity.OwnerID != userID {
		return nil, nil, fiber.NewError(fiber.StatusForbidden, "You do not own this campaign")
	}
	return &campaign, &charity, nil
}

func parseSpentAt(raw string) (*time.Time, error) {
	if raw == "" {
		now := time.Now()
		return &now, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		t, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, err
		}
	}
	return &t, nil
}
