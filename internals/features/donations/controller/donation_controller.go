package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	charityModel "bayanihan_backend/internals/features/charities/charity/model"
	donationDTO "bayanihan_backend/internals/features/donations/dto"
	donationModel "bayanihan_backend/internals/features/donations/model"
	donationService "bayanihan_backend/internals/features/donations/service"
	notificationModel "bayanihan_backend/internals/features/notifications/model"
	notificationService "bayanihan_backend/internals/features/notifications/service"
	userModel "bayanihan_backend/internals/features/users/user/model"
	helper "bayanihan_backend/internals/helpers"
	"bayanihan_backend/internals/helpers/storage"
)

var validate = validator.New()

type DonationController struct {
	DB    *gorm.DB
	Storage *storage.LocalStore
}

func NewDonationController(db *gorm.DB, store *storage.LocalStore) *DonationController {
	return &DonationController{DB: db, Storage: store}
}

// =======================
// DONOR SIDE
// =======================

// Store creates a pending donation. Only approved charities accept donations,
// and a campaign reference must belong to that same charity.
func (dc *DonationController) Store(c *fiber.Ctx) error {
	var req donationDTO.CreateDonationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !req.Amount.IsPositive() {
		return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity,
			"Validation failed", fiber.Map{"amount": "gt=0"})
	}

	donorID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var charity charityModel.CharityModel
	if err := dc.DB.First(&charity, "id = ?", req.CharityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Charity not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create donation")
	}
	if !charity.IsApproved() {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Charity is not accepting donations")
	}

	var campaignID *uuid.UUID
	if req.CampaignID != nil {
		id, belongs, err := dc.campaignBelongsTo(*req.CampaignID, charity.ID)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to create donation")
		}
		if !belongs {
			return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity,
				"Validation failed", fiber.Map{"campaign_id": "must belong to the charity"})
		}
		campaignID = &id
	}

	donation := donationModel.DonationModel{
		DonorID:    donorID,
		CharityID:  charity.ID,
		CampaignID: campaignID,
		Amount:     req.Amount,
		Status:     donationModel.DonationPending,
		Message:    req.Message,
		Anonymous:  req.Anonymous,
	}
	if err := dc.DB.Create(&donation).Error; err != nil {
		log.Printf("[ERROR] donation create: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create donation")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated,
		"Donation recorded. Upload your proof of payment for confirmation.", donation)
}

// UploadProof attaches the proof-of-payment artifact. Only the donation's
// creator may do this. No status guard: donors may still attach proof after
// the charity has decided.
func (dc *DonationController) UploadProof(c *fiber.Ctx) error {
	donation, err := dc.findDonation(c)
	if err != nil {
		return err
	}
	donorID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	if donation.DonorID != donorID {
		return helper.Error(c, fiber.StatusForbidden, "This is not your donation")
	}

	fh, err := c.FormFile("proof")
	if err != nil || fh == nil {
		return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity,
			"Validation failed", fiber.Map{"proof": "required"})
	}

	rel, _, err := dc.Storage.Save("donation_proofs", fh)
	if err != nil {
		log.Printf("[ERROR] proof store: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to store proof")
	}

	var old string
	if donation.ProofPath != nil {
		old = *donation.ProofPath
	}
	if err := dc.DB.Model(donation).Update("proof_path", rel).Error; err != nil {
		dc.Storage.ReleaseOld(rel)
		log.Printf("[ERROR] proof update: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save proof")
	}
	dc.Storage.ReleaseOld(old)
	donation.ProofPath = &rel

	return helper.Success(c, "Proof uploaded", donation)
}

func (dc *DonationController) MyDonations(c *fiber.Ctx) error {
	donorID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	page := helper.ParsePage(c, helper.DirectoryOpts)

	base := dc.DB.Model(&donationModel.DonationModel{}).Where("donor_id = ?", donorID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load donations")
	}

	var donations []donationModel.DonationModel
	if err := base.Order("created_at DESC").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&donations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load donations")
	}

	return helper.Success(c, "OK", fiber.Map{
		"donations": donations,
		"meta":      helper.BuildPageMeta(total, page),
	})
}

// DownloadReceipt returns the receipt payload. Only confirmed donations have
// a receipt.
func (dc *DonationController) DownloadReceipt(c *fiber.Ctx) error {
	donation, err := dc.findDonation(c)
	if err != nil {
		return err
	}
	donorID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	if donation.DonorID != donorID {
		return helper.Error(c, fiber.StatusForbidden, "This is not your donation")
	}
	if donation.Status != donationModel.DonationConfirmed {
		return helper.Error(c, fiber.StatusUnprocessableEntity,
			"Receipts are only available for confirmed donations")
	}

	var charity charityModel.CharityModel
	if err := dc.DB.First(&charity, "id = ?", donation.CharityID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build receipt")
	}
	var donor userModel.UserModel
	if err := dc.DB.First(&donor, "id = ?", donation.DonorID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build receipt")
	}

	return helper.Success(c, "OK", BuildReceipt(donation, charity.Name, donor.Name))
}

// =======================
// CHARITY SIDE
// =======================

// CharityInbox lists donations to review for the owning charity admin.
func (dc *DonationController) CharityInbox(c *fiber.Ctx) error {
	charity, err := dc.ownedCharityByParam(c)
	if err != nil {
		return err
	}
	page := helper.ParsePage(c, helper.DirectoryOpts)

	base := dc.DB.Model(&donationModel.DonationModel{}).Where("charity_id = ?", charity.ID)
	if status := c.Query("status"); status != "" {
		base = base.Where("status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load donations")
	}

	var donations []donationModel.DonationModel
	if err := base.Order("created_at DESC").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&donations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load donations")
	}

	return helper.Success(c, "OK", fiber.Map{
		"donations": donations,
		"meta":      helper.BuildPageMeta(total, page),
	})
}

// Confirm flips pending → confirmed. Only from then on does the amount count
// toward public totals.
func (dc *DonationController) Confirm(c *fiber.Ctx) error {
	return dc.decide(c, donationModel.DonationConfirmed)
}

// Reject flips pending → rejected, terminally.
func (dc *DonationController) Reject(c *fiber.Ctx) error {
	return dc.decide(c, donationModel.DonationRejected)
}

func (dc *DonationController) decide(c *fiber.Ctx, target string) error {
	donation, err := dc.findDonation(c)
	if err != nil {
		return err
	}

	// confirmation rights belong to the charity owner, not the donor
	var charity charityModel.CharityModel
	if err := dc.DB.First(&charity, "id = ?", donation.CharityID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load charity")
	}
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	if charity.OwnerID != userID {
		return helper.Error(c, fiber.StatusForbidden, "You do not own this charity")
	}

	if !donationModel.CanTransitionDonation(donation.Status, target) {
		return helper.Error(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Cannot move donation from '%s' to '%s'", donation.Status, target))
	}

	decided, err := donationService.ApplyDecision(dc.DB, donation.ID, target)
	if err != nil {
		log.Printf("[ERROR] donation decide: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update donation")
	}
	if !decided {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Donation has already been decided")
	}
	donation.Status = target

	if target == donationModel.DonationConfirmed {
		notificationService.SendSystemAlert(dc.DB, donation.DonorID, notificationModel.KindDonation,
			fmt.Sprintf("%s confirmed your donation of ₱%s. Thank you!",
				charity.Name, donation.Amount.StringFixed(2)),
			map[string]interface{}{"donation_id": donation.ID.String()})
	}

	return helper.Success(c, "Donation updated", donation)
}

// =======================
// RECURRING DONATIONS
// =======================

func (dc *DonationController) StoreRecurring(c *fiber.Ctx) error {
	var req donationDTO.CreateRecurringDonationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !req.Amount.IsPositive() {
		return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity,
			"Validation failed", fiber.Map{"amount": "gt=0"})
	}

	donorID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var charity charityModel.CharityModel
	if err := dc.DB.First(&charity, "id = ?", req.CharityID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Charity not found")
	}
	if !charity.IsApproved() {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Charity is not accepting donations")
	}

	var campaignID *uuid.UUID
	if req.CampaignID != nil {
		id, belongs, err := dc.campaignBelongsTo(*req.CampaignID, charity.ID)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to create schedule")
		}
		if !belongs {
			return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity,
				"Validation failed", fiber.Map{"campaign_id": "must belong to the charity"})
		}
		campaignID = &id
	}

	startAt := time.Now()
	if req.StartAt != nil && *req.StartAt != "" {
		t, err := time.Parse(time.RFC3339, *req.StartAt)
		if err != nil {
			return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity,
				"Validation failed", fiber.Map{"start_at": "datetime"})
		}
		startAt = t
	}

	schedule := donationModel.RecurringDonationModel{
		DonorID:    donorID,
		CharityID:  charity.ID,
		CampaignID: campaignID,
		Amount:     req.Amount,
		Frequency:  req.Frequency,
		NextRunAt:  startAt,
		Active:     true,
	}
	if err := dc.DB.Create(&schedule).Error; err != nil {
		log.Printf("[ERROR] recurring create: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create schedule")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Recurring donation scheduled", schedule)
}

func (dc *DonationController) MyRecurring(c *fiber.Ctx) error {
	donorID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	var schedules []donationModel.RecurringDonationModel
	if err := dc.DB.Where("donor_id = ?", donorID).
		Order("created_at DESC").Find(&schedules).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load schedules")
	}
	return helper.Success(c, "OK", schedules)
}

func (dc *DonationController) CancelRecurring(c *fiber.Ctx) error {
	donorID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	var schedule donationModel.RecurringDonationModel
	if err := dc.DB.First(&schedule, "id = ?", c.Params("id")).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Schedule not found")
	}
	if schedule.DonorID != donorID {
		return helper.Error(c, fiber.StatusForbidden, "This is not your schedule")
	}
	if err := dc.DB.Model(&schedule).Update("active", false).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to cancel schedule")
	}
	return helper.Success(c, "Recurring donation cancelled", nil)
}

// ProcessRecurring is the admin/cron-triggered batch: every due active
// schedule is re-materialized into a fresh pending donation and advanced to
// its next run.
func (dc *DonationController) ProcessRecurring(c *fiber.Ctx) error {
	due, created, err := donationService.ProcessDueSchedules(dc.DB, time.Now())
	if err != nil {
		log.Printf("[ERROR] recurring batch: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to process recurring donations")
	}

	return helper.Success(c, "Recurring donations processed", fiber.Map{
		"due":     due,
		"created": created,
	})
}

// =======================
// internals
// =======================

func (dc *DonationController) findDonation(c *fiber.Ctx) (*donationModel.DonationModel, error) {
	var donation donationModel.DonationModel
	if err := dc.DB.First(&donation, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Donation not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load donation")
	}
	return &donation, nil
}

func (dc *DonationController) ownedCharityByParam(c *fiber.Ctx) (*charityModel.CharityModel, error) {
	var charity charityModel.CharityModel
	if err := dc.DB.First(&charity, "id = ?", c.Params("id")).Error; err != nil {
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

func (dc *DonationController) campaignBelongsTo(campaignID string, charityID uuid.UUID) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(campaignID)
	if err != nil {
		return uuid.Nil, false, nil
	}
	var count int64
	if err := dc.DB.Table("campaigns").
		Where("id = ? AND charity_id = ?", id, charityID).
		Count(&count).Error; err != nil {
		return uuid.Nil, false, err
	}
	return id, count > 0, nil
}
