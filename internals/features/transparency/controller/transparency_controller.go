package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	charityModel "bayanihan_backend/internals/features/charities/charity/model"
	donationModel "bayanihan_backend/internals/features/donations/model"
	helper "bayanihan_backend/internals/helpers"
)

type TransparencyController struct {
	DB *gorm.DB
}

func NewTransparencyController(db *gorm.DB) *TransparencyController {
	return &TransparencyController{DB: db}
}

// campaignBreakdownRow is scanned straight out of the grouped query.
type campaignBreakdownRow struct {
	CampaignID    string          `json:"campaign_id"`
	Title         string          `json:"title"`
	Status        string          `json:"status"`
	TotalReceived decimal.Decimal `json:"total_received"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
}

// Summary is the public transparency page for one charity: confirmed income,
// logged spending, remaining balance, and a per-campaign breakdown. Pending
// and rejected donations never count toward the totals.
func (tc *TransparencyController) Summary(c *fiber.Ctx) error {
	var charity charityModel.CharityModel
	if err := tc.DB.First(&charity, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Charity not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load charity")
	}
	if !charity.IsApproved() {
		return helper.Error(c, fiber.StatusNotFound, "Charity not found")
	}

	received, spent, err := tc.charityTotals(charity.ID.String())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to compute totals")
	}

	breakdown, err := tc.campaignBreakdown(charity.ID.String())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to compute campaign breakdown")
	}

	var donationCount int64
	if err := tc.DB.Model(&donationModel.DonationModel{}).
		Where("charity_id = ? AND status = ?", charity.ID, donationModel.DonationConfirmed).
		Count(&donationCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to compute totals")
	}

	return helper.Success(c, "OK", fiber.Map{
		"charity_id":     charity.ID,
		"charity_name":   charity.Name,
		"total_received": received,
		"total_spent":    spent,
		"balance":        RemainingBalance(received, spent),
		"donation_count": donationCount,
		"campaigns":      breakdown,
	})
}

// Dashboard is the owner's view of the same numbers, plus the figures a
// charity admin needs day to day: pending inbox size and recent totals.
func (tc *TransparencyController) Dashboard(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var charity charityModel.CharityModel
	if err := tc.DB.First(&charity, "owner_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "You do not have a charity profile")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load charity")
	}

	received, spent, err := tc.charityTotals(charity.ID.String())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to compute totals")
	}
	breakdown, err := tc.campaignBreakdown(charity.ID.String())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to compute campaign breakdown")
	}

	var pendingCount int64
	if err := tc.DB.Model(&donationModel.DonationModel{}).
		Where("charity_id = ? AND status = ?", charity.ID, donationModel.DonationPending).
		Count(&pendingCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to compute totals")
	}

	return helper.Success(c, "OK", fiber.Map{
		"charity":             charity,
		"verification_status": charity.VerificationStatus,
		"total_received":      received,
		"total_spent":         spent,
		"balance":             RemainingBalance(received, spent),
		"pending_donations":   pendingCount,
		"campaigns":           breakdown,
	})
}

// MyImpact tells a donor what happened to their own money: how much they
// gave per charity (confirmed only) and how transparent each charity has
// been about spending it.
func (tc *TransparencyController) MyImpact(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	type impactRow struct {
		CharityID   string          `json:"charity_id"`
		CharityName string          `json:"charity_name"`
		TotalGiven  decimal.Decimal `json:"total_given"`
		Donations   int64           `json:"donations"`
	}
	var rows []impactRow
	if err := tc.DB.Table("donations").
		Select(`donations.charity_id,
			charities.name AS charity_name,
			COALESCE(SUM(donations.amount), 0) AS total_given,
			COUNT(donations.id) AS donations`).
		Joins("JOIN charities ON charities.id = donations.charity_id").
		Where("donations.donor_id = ? AND donations.status = ?", userID, donationModel.DonationConfirmed).
		Group("donations.charity_id, charities.name").
		Order("total_given DESC").
		Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to compute impact")
	}

	totalGiven := decimal.Zero
	for _, r := range rows {
		totalGiven = totalGiven.Add(r.TotalGiven)
	}

	return helper.Success(c, "OK", fiber.Map{
		"total_given": totalGiven,
		"charities":   rows,
	})
}

// =======================
// internals
// =======================

// RemainingBalance never goes negative in the response even when a charity
// has logged more spending than confirmed income (pre-platform reserves).
func RemainingBalance(received, spent decimal.Decimal) decimal.Decimal {
	balance := received.Sub(spent)
	if balance.IsNegative() {
		return decimal.Zero
	}
	return balance
}

func (tc *TransparencyController) charityTotals(charityID string) (decimal.Decimal, decimal.Decimal, error) {
	var received, spent decimal.Decimal

	row := tc.DB.Table("donations").
		Select("COALESCE(SUM(amount), 0)").
		Where("charity_id = ? AND status = ?", charityID, donationModel.DonationConfirmed).
		Row()
	if err := row.Scan(&received); err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	row = tc.DB.Table("fund_usage_logs").
		Select("COALESCE(SUM(amount), 0)").
		Where("charity_id = ?", charityID).
		Row()
	if err := row.Scan(&spent); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return received, spent, nil
}

func (tc *TransparencyController) campaignBreakdown(charityID string) ([]campaignBreakdownRow, error) {
	var rows []campaignBreakdownRow
	err := tc.DB.Table("campaigns").
		Select(`campaigns.id AS campaign_id,
			campaigns.title,
			campaigns.status,
			(
				SELECT COALESCE(SUM(d.amount), 0) FROM donations d
				WHERE d.campaign_id = campaigns.id AND d.status = 'confirmed'
			) AS total_received,
			(
				SELECT COALESCE(SUM(f.amount), 0) FROM fund_usage_logs f
				WHERE f.campaign_id = campaigns.id
			) AS total_spent`).
		Where("campaigns.charity_id = ?", charityID).
		Order("campaigns.created_at DESC").
		Scan(&rows).Error
	return rows, err
}
