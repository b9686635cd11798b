package controller

import (
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"bayanihan_backend/internals/configs"
	"bayanihan_backend/internals/constants"
	campaignModel "bayanihan_backend/internals/features/campaigns/model"
	charityModel "bayanihan_backend/internals/features/charities/charity/model"
	donationModel "bayanihan_backend/internals/features/donations/model"
	followModel "bayanihan_backend/internals/features/follows/model"
	fundUsageModel "bayanihan_backend/internals/features/fundusage/model"
	notificationModel "bayanihan_backend/internals/features/notifications/model"
	notificationService "bayanihan_backend/internals/features/notifications/service"
	postModel "bayanihan_backend/internals/features/posts/model"
	authDTO "bayanihan_backend/internals/features/users/auth/dto"
	authService "bayanihan_backend/internals/features/users/auth/service"
	securityModel "bayanihan_backend/internals/features/users/security/model"
	securityService "bayanihan_backend/internals/features/users/security/service"
	userModel "bayanihan_backend/internals/features/users/user/model"
	helper "bayanihan_backend/internals/helpers"
	"bayanihan_backend/internals/helpers/storage"
)

var validate = validator.New()

type AuthController struct {
	DB    *gorm.DB
	Store *storage.LocalStore
}

func NewAuthController(db *gorm.DB, store *storage.LocalStore) *AuthController {
	return &AuthController{DB: db, Store: store}
}

// =======================
// REGISTRATION
// =======================

func (ac *AuthController) RegisterDonor(c *fiber.Ctx) error {
	var req authDTO.RegisterDonorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if taken, err := ac.emailTaken(req.Email); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error creating account")
	} else if taken {
		return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity,
			"Validation failed", fiber.Map{"email": "unique"})
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error creating account")
	}

	var profileImagePath *string
	if fh, err := c.FormFile("profile_image"); err == nil && fh != nil {
		data, name, err := helper.NormalizeImage(fh)
		if err != nil {
			return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity,
				"Validation failed", fiber.Map{"profile_image": "image"})
		}
		rel, _, err := ac.Store.SaveBytes("profile_images", name, data)
		if err != nil {
			log.Printf("[ERROR] profile image store: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Server error creating account")
		}
		profileImagePath = &rel
	}

	user := userModel.UserModel{
		Name:         req.Name,
		Email:        req.Email,
		Password:     hashed,
		Phone:        req.Phone,
		Address:      req.Address,
		ProfileImage: profileImagePath,
		Role:         constants.RoleDonor,
		Status:       constants.StatusActive,
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		if profileImagePath != nil {
			ac.Store.ReleaseOld(*profileImagePath)
		}
		log.Printf("[ERROR] register donor: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error creating account")
	}

	securityService.LogAuthEvent(ac.DB, securityModel.EventUserRegistered, &user, c.IP(),
		map[string]interface{}{"role": constants.RoleDonor, "registration_method": "email"})

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registration successful", fiber.Map{
		"user": user,
	})
}

// RegisterCharityAdmin creates the user, the charity and every attached
// document in one transaction. Any failure rolls the whole chain back so an
// orphan user without a charity can never persist.
func (ac *AuthController) RegisterCharityAdmin(c *fiber.Ctx) error {
	var req authDTO.RegisterCharityAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if taken, err := ac.emailTaken(req.ContactEmail); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error creating account")
	} else if taken {
		return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity,
			"Validation failed", fiber.Map{"contact_email": "unique"})
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error creating account")
	}

	// Stored blobs cannot be rolled back by the DB; track them so a failed
	// transaction leaves no dangling artifacts behind.
	var storedFiles []string
	cleanup := func() {
		for _, rel := range storedFiles {
			ac.Store.ReleaseOld(rel)
		}
	}

	var user userModel.UserModel
	var charity charityModel.CharityModel
	var documents []charityModel.CharityDocumentModel

	txErr := ac.DB.Transaction(func(tx *gorm.DB) error {
		user = userModel.UserModel{
			Name:     req.ContactPersonName,
			Email:    req.ContactEmail,
			Password: hashed,
			Phone:    req.ContactPhone,
			Role:     constants.RoleCharityAdmin,
			Status:   constants.StatusActive,
		}
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		var logoPath, coverPath *string
		if fh, err := c.FormFile("logo"); err == nil && fh != nil {
			rel, err := ac.saveImage("charity_logos", fh)
			if err != nil {
				return err
			}
			storedFiles = append(storedFiles, rel)
			logoPath = &rel
		}
		if fh, err := c.FormFile("cover_image"); err == nil && fh != nil {
			rel, err := ac.saveImage("charity_covers", fh)
			if err != nil {
				return err
			}
			storedFiles = append(storedFiles, rel)
			coverPath = &rel
		}

		charity = charityModel.CharityModel{
			OwnerID:            user.ID,
			Name:               req.OrganizationName,
			LegalTradingName:   req.LegalTradingName,
			RegNo:              req.RegistrationNumber,
			TaxID:              req.TaxID,
			Mission:            req.MissionStatement,
			Vision:             req.Description,
			Website:            req.Website,
			ContactEmail:       &req.ContactEmail,
			ContactPhone:       req.ContactPhone,
			Address:            req.Address,
			Region:             req.Region,
			Municipality:       req.Municipality,
			Category:           req.NonprofitCategory,
			LogoPath:           logoPath,
			CoverImage:         coverPath,
			VerificationStatus: charityModel.VerificationPending,
		}
		if err := tx.Create(&charity).Error; err != nil {
			return fmt.Errorf("create charity: %w", err)
		}

		form, err := c.MultipartForm()
		if err != nil || form == nil {
			return nil // JSON body without documents is fine
		}
		docTypes := form.Value["doc_types"]
		for i, fh := range form.File["documents"] {
			docType := charityModel.DocTypeOther
			if i < len(docTypes) && docTypes[i] != "" {
				docType = docTypes[i]
			}
			rel, hash, err := ac.Store.Save("charity_docs", fh)
			if err != nil {
				return fmt.Errorf("store document %d: %w", i, err)
			}
			storedFiles = append(storedFiles, rel)

			doc := charityModel.CharityDocumentModel{
				CharityID:  charity.ID,
				DocType:    docType,
				FilePath:   rel,
				Sha256:     hash,
				UploadedBy: user.ID,
			}
			if err := tx.Create(&doc).Error; err != nil {
				return fmt.Errorf("create document %d: %w", i, err)
			}
			documents = append(documents, doc)
		}
		return nil
	})
	if txErr != nil {
		cleanup()
		log.WithFields(log.Fields{
			"organization": req.OrganizationName,
			"email":        req.ContactEmail,
			"err":          txErr,
		}).Error("charity admin registration rolled back")
		return helper.Error(c, fiber.StatusInternalServerError, "Server error creating account")
	}

	securityService.LogAuthEvent(ac.DB, securityModel.EventUserRegistered, &user, c.IP(),
		map[string]interface{}{"role": constants.RoleCharityAdmin, "charity_id": charity.ID.String()})
	notificationService.NotifyAdmins(ac.DB,
		fmt.Sprintf("A new charity '%s' has registered and needs verification.", charity.Name),
		map[string]interface{}{"charity_id": charity.ID.String()})

	return helper.SuccessWithCode(c, fiber.StatusCreated,
		"Registration successful. Your charity is pending verification.", fiber.Map{
			"user":      user,
			"charity":   charity,
			"documents": documents,
		})
}

// =======================
// LOGIN / SESSION
// =======================

func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	err := ac.DB.Where("email = ?", req.Email).First(&user).Error
	// one generic message for absent user, bad password and inactive account
	if err != nil ||
		authService.CheckPasswordHash(user.Password, req.Password) != nil ||
		!user.IsActive() {
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] login lookup: %v", err)
		}
		securityService.LogFailedLogin(ac.DB, req.Email, c.IP(), "invalid_credentials")
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	securityService.LogAuthEvent(ac.DB, securityModel.EventUserLogin, &user, c.IP(),
		map[string]interface{}{"login_method": "password"})
	securityService.CheckSuspiciousLogin(ac.DB, &user, c.IP())

	token, err := authService.GenerateToken(configs.JWTSecret, user.ID, user.Role)
	if err != nil {
		log.Printf("[ERROR] token issue: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.Success(c, "Login successful", fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	// Tokens are stateless; the client discards it. Still worth an audit row.
	if user, err := ac.currentUser(c); err == nil {
		securityService.LogActivity(ac.DB, user, "user_logout", c.IP(), nil)
	}
	return helper.Success(c, "Logged out", nil)
}

func (ac *AuthController) Me(c *fiber.Ctx) error {
	user, err := ac.currentUser(c)
	if err != nil {
		return err
	}

	resp := fiber.Map{"user": user}
	if user.Role == constants.RoleCharityAdmin {
		if charity, err := ac.ownedCharity(user.ID); err == nil {
			resp["charity"] = charity
		}
	}
	return helper.Success(c, "OK", resp)
}

// =======================
// SELF-SERVICE PROFILE
// =======================

func (ac *AuthController) UpdateProfile(c *fiber.Ctx) error {
	user, err := ac.currentUser(c)
	if err != nil {
		return err
	}

	var req authDTO.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updated := []string{}
	if req.Name != nil {
		user.Name = *req.Name
		updated = append(updated, "name")
	}
	if req.Phone != nil {
		user.Phone = req.Phone
		updated = append(updated, "phone")
	}
	if req.Address != nil {
		user.Address = req.Address
		updated = append(updated, "address")
	}

	// donor profile image: store the new one, swap the reference, release old
	var oldImage string
	if user.Role == constants.RoleDonor {
		if fh, err := c.FormFile("profile_image"); err == nil && fh != nil {
			rel, err := ac.saveImage("profile_images", fh)
			if err != nil {
				return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity,
					"Validation failed", fiber.Map{"profile_image": "image"})
			}
			if user.ProfileImage != nil {
				oldImage = *user.ProfileImage
			}
			user.ProfileImage = &rel
			updated = append(updated, "profile_image")
		}
	}

	var charity *charityModel.CharityModel
	var oldLogo string
	if user.Role == constants.RoleCharityAdmin {
		if ch, err := ac.ownedCharity(user.ID); err == nil {
			charity = ch
		}
		if req.ContactPersonName != nil {
			user.Name = *req.ContactPersonName
			updated = append(updated, "contact_person_name")
		}
		if req.ContactEmail != nil && *req.ContactEmail != user.Email {
			if taken, err := ac.emailTaken(*req.ContactEmail); err != nil {
				return helper.Error(c, fiber.StatusInternalServerError, "Failed to update profile")
			} else if taken {
				return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity,
					"Validation failed", fiber.Map{"contact_email": "unique"})
			}
			user.Email = *req.ContactEmail
			if charity != nil {
				charity.ContactEmail = req.ContactEmail
			}
			updated = append(updated, "contact_email")
		}
		if charity != nil {
			if fh, err := c.FormFile("logo"); err == nil && fh != nil {
				rel, err := ac.saveImage("charity_logos", fh)
				if err != nil {
					return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity,
						"Validation failed", fiber.Map{"logo": "image"})
				}
				if charity.LogoPath != nil {
					oldLogo = *charity.LogoPath
				}
				charity.LogoPath = &rel
				updated = append(updated, "logo")
			}
		}
	}

	if err := ac.DB.Save(user).Error; err != nil {
		log.Printf("[ERROR] profile update: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update profile")
	}
	if charity != nil {
		if err := ac.DB.Save(charity).Error; err != nil {
			log.Printf("[ERROR] charity profile update: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to update profile")
		}
	}

	// references swapped and committed, now the old artifacts can go
	ac.Store.ReleaseOld(oldImage)
	ac.Store.ReleaseOld(oldLogo)

	securityService.LogActivity(ac.DB, user, securityModel.EventProfileUpdated, c.IP(),
		map[string]interface{}{"updated_fields": updated, "user_role": user.Role})

	resp := fiber.Map{"user": user}
	if charity != nil {
		resp["charity"] = charity
	}
	return helper.Success(c, "Profile updated successfully", resp)
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	user, err := ac.currentUser(c)
	if err != nil {
		return err
	}

	var req authDTO.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if authService.CheckPasswordHash(user.Password, req.CurrentPassword) != nil {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Current password is incorrect")
	}

	hashed, err := authService.HashPassword(req.NewPassword)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to change password")
	}
	if err := ac.DB.Model(user).Update("password", hashed).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to change password")
	}

	securityService.LogActivity(ac.DB, user, securityModel.EventPasswordChanged, c.IP(), nil)
	return helper.Success(c, "Password changed successfully", nil)
}

func (ac *AuthController) DeactivateAccount(c *fiber.Ctx) error {
	user, err := ac.currentUser(c)
	if err != nil {
		return err
	}

	reason := c.FormValue("reason", "User requested deactivation")
	securityService.LogActivity(ac.DB, user, securityModel.EventAccountDeactivated, c.IP(),
		map[string]interface{}{"reason": reason})

	// soft flip; only an admin "activate" can reverse this
	if err := ac.DB.Model(user).Update("status", constants.StatusInactive).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to deactivate account")
	}
	return helper.Success(c, "Account deactivated successfully", nil)
}

// DeleteAccount hard-deletes the user and every record they own.
func (ac *AuthController) DeleteAccount(c *fiber.Ctx) error {
	user, err := ac.currentUser(c)
	if err != nil {
		return err
	}

	var req authDTO.DeleteAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if authService.CheckPasswordHash(user.Password, req.Password) != nil {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Password is incorrect")
	}

	meta := map[string]interface{}{}
	if req.Reason != nil {
		meta["reason"] = *req.Reason
	}
	securityService.LogActivity(ac.DB, user, securityModel.EventAccountDeleted, c.IP(), meta)

	txErr := ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("donor_id = ?", user.ID).Delete(&followModel.CharityFollowModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&notificationModel.NotificationModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("donor_id = ?", user.ID).Delete(&donationModel.RecurringDonationModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("donor_id = ?", user.ID).Delete(&donationModel.DonationModel{}).Error; err != nil {
			return err
		}

		var charity charityModel.CharityModel
		if err := tx.Where("owner_id = ?", user.ID).First(&charity).Error; err == nil {
			for _, del := range []error{
				tx.Where("charity_id = ?", charity.ID).Delete(&fundUsageModel.FundUsageLogModel{}).Error,
				tx.Where("charity_id = ?", charity.ID).Delete(&postModel.CharityPostModel{}).Error,
				tx.Where("charity_id = ?", charity.ID).Delete(&followModel.CharityFollowModel{}).Error,
				tx.Where("charity_id = ?", charity.ID).Delete(&donationModel.DonationModel{}).Error,
				tx.Where("charity_id = ?", charity.ID).Delete(&donationModel.RecurringDonationModel{}).Error,
				tx.Where("charity_id = ?", charity.ID).Delete(&campaignModel.CampaignModel{}).Error,
				tx.Where("charity_id = ?", charity.ID).Delete(&charityModel.DonationChannelModel{}).Error,
				tx.Where("charity_id = ?", charity.ID).Delete(&charityModel.CharityDocumentModel{}).Error,
				tx.Delete(&charity).Error,
			} {
				if del != nil {
					return del
				}
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Delete(user).Error
	})
	if txErr != nil {
		log.Printf("[ERROR] account delete: %v", txErr)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete account")
	}

	return helper.Success(c, "Account deleted successfully", nil)
}

// =======================
// internals
// =======================

func (ac *AuthController) currentUser(c *fiber.Ctx) (*userModel.UserModel, error) {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return nil, err
	}
	var user userModel.UserModel
	if err := ac.DB.First(&user, "id = ?", userID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
	}
	return &user, nil
}

func (ac *AuthController) ownedCharity(ownerID interface{}) (*charityModel.CharityModel, error) {
	var charity charityModel.CharityModel
	if err := ac.DB.Where("owner_id = ?", ownerID).First(&charity).Error; err != nil {
		return nil, err
	}
	return &charity, nil
}

func (ac *AuthController) emailTaken(email string) (bool, error) {
	var count int64
	if err := ac.DB.Model(&userModel.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// saveImage normalizes an uploaded image to webp and stores it.
func (ac *AuthController) saveImage(folder string, fh *multipart.FileHeader) (string, error) {
	data, name, err := helper.NormalizeImage(fh)
	if err != nil {
		return "", err
	}
	rel, _, err := ac.Store.SaveBytes(folder, name, data)
	return rel, err
}
