package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	charityDTO "bayanihan_backend/internals/features/charities/charity/dto"
	charityModel "bayanihan_backend/internals/features/charities/charity/model"
	donationModel "bayanihan_backend/internals/features/donations/model"
	notificationService "bayanihan_backend/internals/features/notifications/service"
	helper "bayanihan_backend/internals/helpers"
	"bayanihan_backend/internals/helpers/storage"
)

var validate = validator.New()

type CharityController struct {
	DB    *gorm.DB
	Store *storage.LocalStore
}

func NewCharityController(db *gorm.DB, store *storage.LocalStore) *CharityController {
	return &CharityController{DB: db, Store: store}
}

type charityWithTotal struct {
	charityModel.CharityModel
	TotalReceived decimal.Decimal `json:"total_received" gorm:"column:total_received"`
}

// =======================
// PUBLIC DIRECTORY
// =======================

// Index lists approved charities with free-text search, category/region/
// municipality filters and three sort modes. 12 per page.
func (cc *CharityController) Index(c *fiber.Ctx) error {
	base := cc.DB.Model(&charityModel.CharityModel{}).
		Where("verification_status = ?", charityModel.VerificationApproved)

	if term := c.Query("q"); term != "" {
		like := "%" + term + "%"
		base = base.Where("(name ILIKE ? OR mission ILIKE ? OR vision ILIKE ?)", like, like, like)
	}
	if category := c.Query("category"); category != "" {
		base = base.Where("category = ?", category)
	}
	if region := c.Query("region"); region != "" {
		base = base.Where("region = ?", region)
	}
	if municipality := c.Query("municipality"); municipality != "" {
		base = base.Where("municipality = ?", municipality)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] charity directory count: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load charities")
	}

	page := helper.ParsePage(c, helper.DirectoryOpts)

	// only confirmed donations ever count toward public totals
	q := base.Session(&gorm.Session{}).
		Select("charities.*, COALESCE(SUM(donations.amount), 0) AS total_received").
		Joins("LEFT JOIN donations ON donations.charity_id = charities.id AND donations.status = ?",
			donationModel.DonationConfirmed).
		Group("charities.id")

	switch c.Query("sort", "name") {
	case "newest":
		q = q.Order("charities.created_at DESC")
	case "total_received":
		q = q.Order("total_received DESC")
	default:
		q = q.Order("charities.name ASC")
	}

	var charities []charityWithTotal
	if err := q.Limit(page.Limit()).Offset(page.Offset()).Scan(&charities).Error; err != nil {
		log.Printf("[ERROR] charity directory query: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load charities")
	}

	filters, err := cc.filterValues()
	if err != nil {
		log.Printf("[ERROR] charity directory filters: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load charities")
	}

	return helper.Success(c, "OK", fiber.Map{
		"charities": charities,
		"filters":   filters,
		"meta":      helper.BuildPageMeta(total, page),
		"total":     total,
	})
}

func (cc *CharityController) Show(c *fiber.Ctx) error {
	charity, err := cc.findCharity(c)
	if err != nil {
		return err
	}

	var documents []charityModel.CharityDocumentModel
	if err := cc.DB.Where("charity_id = ?", charity.ID).
		Order("created_at DESC").Find(&documents).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load charity")
	}

	var totalReceived decimal.Decimal
	row := cc.DB.Model(&donationModel.DonationModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("charity_id = ? AND status = ?", charity.ID, donationModel.DonationConfirmed).
		Row()
	if err := row.Scan(&totalReceived); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load charity")
	}

	return helper.Success(c, "OK", fiber.Map{
		"charity":        charity,
		"documents":      documents,
		"total_received": totalReceived,
	})
}

// GetDocuments is the public document list used by donors to inspect a
// charity's verification artifacts.
func (cc *CharityController) GetDocuments(c *fiber.Ctx) error {
	charity, err := cc.findCharity(c)
	if err != nil {
		return err
	}
	var documents []charityModel.CharityDocumentModel
	if err := cc.DB.Where("charity_id = ?", charity.ID).
		Order("created_at DESC").Find(&documents).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load documents")
	}
	return helper.Success(c, "OK", documents)
}

func (cc *CharityController) GetChannels(c *fiber.Ctx) error {
	charity, err := cc.findCharity(c)
	if err != nil {
		return err
	}
	var channels []charityModel.DonationChannelModel
	if err := cc.DB.Where("charity_id = ?", charity.ID).Find(&channels).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load channels")
	}
	return helper.Success(c, "OK", channels)
}

// =======================
// OWNER MUTATIONS
// =======================

func (cc *CharityController) Update(c *fiber.Ctx) error {
	charity, err := cc.findOwnedCharity(c)
	if err != nil {
		return err
	}

	var req charityDTO.UpdateCharityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Name != nil {
		charity.Name = *req.Name
	}
	if req.LegalTradingName != nil {
		charity.LegalTradingName = req.LegalTradingName
	}
	if req.Mission != nil {
		charity.Mission = req.Mission
	}
	if req.Vision != nil {
		charity.Vision = req.Vision
	}
	if req.Website != nil {
		charity.Website = req.Website
	}
	if req.ContactEmail != nil {
		charity.ContactEmail = req.ContactEmail
	}
	if req.ContactPhone != nil {
		charity.ContactPhone = req.ContactPhone
	}
	if req.Address != nil {
		charity.Address = req.Address
	}
	if req.Region != nil {
		charity.Region = req.Region
	}
	if req.Municipality != nil {
		charity.Municipality = req.Municipality
	}
	if req.Category != nil {
		charity.Category = req.Category
	}

	if err := cc.DB.Save(charity).Error; err != nil {
		log.Printf("[ERROR] charity update: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update charity")
	}
	return helper.Success(c, "Charity updated", charity)
}

// UploadDocument appends one verification artifact. The sha256 over the
// stored bytes is recorded for tamper evidence.
func (cc *CharityController) UploadDocument(c *fiber.Ctx) error {
	charity, err := cc.findOwnedCharity(c)
	if err != nil {
		return err
	}

	var req charityDTO.UploadDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity,
			"Validation failed", fiber.Map{"file": "required"})
	}

	rel, hash, err := cc.Store.Save("charity_docs", fh)
	if err != nil {
		log.Printf("[ERROR] document store: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to store document")
	}

	userID, _ := helper.GetUserUUID(c)
	doc := charityModel.CharityDocumentModel{
		CharityID:  charity.ID,
		DocType:    req.DocType,
		FilePath:   rel,
		Sha256:     hash,
		UploadedBy: userID,
	}
	if err := cc.DB.Create(&doc).Error; err != nil {
		cc.Store.ReleaseOld(rel)
		log.Printf("[ERROR] document create: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save document")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Document uploaded", doc)
}

func (cc *CharityController) StoreChannel(c *fiber.Ctx) error {
	charity, err := cc.findOwnedCharity(c)
	if err != nil {
		return err
	}

	var req charityDTO.StoreChannelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	channel := charityModel.DonationChannelModel{
		CharityID: charity.ID,
		Type:      req.Type,
		Label:     req.Label,
		Details:   datatypes.JSONMap(req.Details),
	}
	if err := cc.DB.Create(&channel).Error; err != nil {
		log.Printf("[ERROR] channel create: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save channel")
	}

	notificationService.SendSystemAlert(cc.DB, charity.OwnerID, "info",
		fmt.Sprintf("Donation channel '%s' added.", channel.Label), nil)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Channel created", channel)
}

// =======================
// internals
// =======================

func (cc *CharityController) findCharity(c *fiber.Ctx) (*charityModel.CharityModel, error) {
	var charity charityModel.CharityModel
	if err := cc.DB.First(&charity, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Charity not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load charity")
	}
	return &charity, nil
}

// findOwnedCharity is the uniform abort-unless-owner guard for charity
// mutations.
func (cc *CharityController) findOwnedCharity(c *fiber.Ctx) (*charityModel.CharityModel, error) {
	charity, err := cc.findCharity(c)
	if err != nil {
		return nil, err
	}
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return nil, err
	}
	if charity.OwnerID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "You do not own this charity")
	}
	return charity, nil
}

func (cc *CharityController) filterValues() (fiber.Map, error) {
	var categories, regions []string
	if err := cc.DB.Model(&charityModel.CharityModel{}).
		Where("verification_status = ? AND category IS NOT NULL", charityModel.VerificationApproved).
		Distinct().Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	if err := cc.DB.Model(&charityModel.CharityModel{}).
		Where("verification_status = ? AND region IS NOT NULL", charityModel.VerificationApproved).
		Distinct().Pluck("region", &regions).Error; err != nil {
		return nil, err
	}
	return fiber.Map{"categories": categories, "regions": regions}, nil
}
