package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bayanihan_backend/internals/constants"
	charityModel "bayanihan_backend/internals/features/charities/charity/model"
	donationModel "bayanihan_backend/internals/features/donations/model"
	securityService "bayanihan_backend/internals/features/users/security/service"
	userModel "bayanihan_backend/internals/features/users/user/model"
	helper "bayanihan_backend/internals/helpers"
)

type SecurityController struct {
	DB *gorm.DB
}

func NewSecurityController(db *gorm.DB) *SecurityController {
	return &SecurityController{DB: db}
}

// ActivityLogs is the admin audit trail, filterable by event name and email.
func (sc *SecurityController) ActivityLogs(c *fiber.Ctx) error {
	page := helper.ParsePage(c, helper.AdminOpts)

	events, total, err := securityService.RecentEvents(
		sc.DB, c.Query("event"), c.Query("email"), page.Limit(), page.Offset())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load activity logs")
	}

	return helper.Success(c, "OK", fiber.Map{
		"events": events,
		"meta":   helper.BuildPageMeta(total, page),
	})
}

// ComplianceReport gives an admin the platform-wide numbers a regulator or
// auditor would ask for.
func (sc *SecurityController) ComplianceReport(c *fiber.Ctx) error {
	var (
		totalUsers       int64
		donors           int64
		charityAdmins    int64
		suspendedUsers   int64
		approved         int64
		pending          int64
		rejected         int64
		totalDonations   int64
		pendingDonations int64
	)

	counts := []struct {
		dest  *int64
		model interface{}
		query string
		args  []interface{}
	}{
		{&totalUsers, &userModel.UserModel{}, "", nil},
		{&donors, &userModel.UserModel{}, "role = ?", []interface{}{constants.RoleDonor}},
		{&charityAdmins, &userModel.UserModel{}, "role = ?", []interface{}{constants.RoleCharityAdmin}},
		{&suspendedUsers, &userModel.UserModel{}, "status = ?", []interface{}{constants.StatusInactive}},
		{&approved, &charityModel.CharityModel{}, "verification_status = ?", []interface{}{charityModel.VerificationApproved}},
		{&pending, &charityModel.CharityModel{}, "verification_status = ?", []interface{}{charityModel.VerificationPending}},
		{&rejected, &charityModel.CharityModel{}, "verification_status = ?", []interface{}{charityModel.VerificationRejected}},
		{&totalDonations, &donationModel.DonationModel{}, "", nil},
		{&pendingDonations, &donationModel.DonationModel{}, "status = ?", []interface{}{donationModel.DonationPending}},
	}
	for _, item := range counts {
		q := sc.DB.Model(item.model)
		if item.query != "" {
			q = q.Where(item.query, item.args...)
		}
		if err := q.Count(item.dest).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to build compliance report")
		}
	}

	var confirmedTotal, spentTotal decimal.Decimal
	row := sc.DB.Table("donations").Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", donationModel.DonationConfirmed).Row()
	if err := row.Scan(&confirmedTotal); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build compliance report")
	}
	row = sc.DB.Table("fund_usage_logs").Select("COALESCE(SUM(amount), 0)").Row()
	if err := row.Scan(&spentTotal); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build compliance report")
	}

	return helper.Success(c, "OK", fiber.Map{
		"users": fiber.Map{
			"total":          totalUsers,
			"donors":         donors,
			"charity_admins": charityAdmins,
			"suspended":      suspendedUsers,
		},
		"charities": fiber.Map{
			"approved": approved,
			"pending":  pending,
			"rejected": rejected,
		},
		"donations": fiber.Map{
			"total":           totalDonations,
			"pending":         pendingDonations,
			"confirmed_total": confirmedTotal,
		},
		"fund_usage": fiber.Map{
			"logged_total": spentTotal,
		},
	})
}
