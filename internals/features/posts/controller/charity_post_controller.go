package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	charityModel "bayanihan_backend/internals/features/charities/charity/model"
	postDTO "bayanihan_backend/internals/features/posts/dto"
	postModel "bayanihan_backend/internals/features/posts/model"
	helper "bayanihan_backend/internals/helpers"
	"bayanihan_backend/internals/helpers/storage"
)

var validate = validator.New()

type CharityPostController struct {
	DB    *gorm.DB
	Storage *storage.LocalStore
}

func NewCharityPostController(db *gorm.DB, store *storage.LocalStore) *CharityPostController {
	return &CharityPostController{DB: db, Storage: store}
}

// Feed is the public landing feed: published posts from approved charities
// only, newest first.
func (pc *CharityPostController) Feed(c *fiber.Ctx) error {
	page := helper.ParsePage(c, helper.DirectoryOpts)

	base := pc.DB.Model(&postModel.CharityPostModel{}).
		Joins("JOIN charities ON charities.id = charity_posts.charity_id").
		Where("charity_posts.published = ? AND charities.verification_status = ?",
			true, charityModel.VerificationApproved)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load feed")
	}

	type feedRow struct {
		postModel.CharityPostModel
		CharityName string  `json:"charity_name"`
		CharityLogo *string `json:"charity_logo,omitempty"`
	}
	var rows []feedRow
	if err := base.
		Select("charity_posts.*, charities.name AS charity_name, charities.logo_path AS charity_logo").
		Order("charity_posts.created_at DESC").
		Limit(page.Limit()).Offset(page.Offset()).
		Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load feed")
	}

	return helper.Success(c, "OK", fiber.Map{
		"posts": rows,
		"meta":  helper.BuildPageMeta(total, page),
	})
}

// GetCharityPosts lists one charity's published posts for its public profile.
func (pc *CharityPostController) GetCharityPosts(c *fiber.Ctx) error {
	page := helper.ParsePage(c, helper.DirectoryOpts)

	base := pc.DB.Model(&postModel.CharityPostModel{}).
		Where("charity_id = ? AND published = ?", c.Params("id"), true)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load posts")
	}

	var posts []postModel.CharityPostModel
	if err := base.Order("created_at DESC").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&posts).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load posts")
	}

	return helper.Success(c, "OK", fiber.Map{
		"posts": posts,
		"meta":  helper.BuildPageMeta(total, page),
	})
}

// GetMyPosts lists the owner's posts including unpublished drafts.
func (pc *CharityPostController) GetMyPosts(c *fiber.Ctx) error {
	charity, err := pc.ownedCharity(c)
	if err != nil {
		return err
	}

	var posts []postModel.CharityPostModel
	if err := pc.DB.Where("charity_id = ?", charity.ID).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load posts")
	}
	return helper.Success(c, "OK", posts)
}

func (pc *CharityPostController) Store(c *fiber.Ctx) error {
	charity, err := pc.ownedCharity(c)
	if err != nil {
		return err
	}

	var req postDTO.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}
	post := postModel.CharityPostModel{
		CharityID: charity.ID,
		Title:     req.Title,
		Body:      req.Body,
		Published: published,
	}

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		data, name, err := helper.NormalizeImage(fh)
		if err != nil {
			return helper.Error(c, fiber.StatusUnprocessableEntity, "Invalid image")
		}
		path, _, err := pc.Storage.SaveBytes("posts", name, data)
		if err != nil {
			log.Printf("[ERROR] post image: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to store image")
		}
		post.ImagePath = &path
	}

	if err := pc.DB.Create(&post).Error; err != nil {
		if post.ImagePath != nil {
			pc.Storage.ReleaseOld(*post.ImagePath)
		}
		log.Printf("[ERROR] post create: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create post")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Post created", post)
}

func (pc *CharityPostController) Update(c *fiber.Ctx) error {
	post, err := pc.ownedPost(c)
	if err != nil {
		return err
	}

	var req postDTO.UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Body != nil {
		post.Body = *req.Body
	}
	if req.Published != nil {
		post.Published = *req.Published
	}

	var oldImage string
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		data, name, err := helper.NormalizeImage(fh)
		if err != nil {
			return helper.Error(c, fiber.StatusUnprocessableEntity, "Invalid image")
		}
		path, _, err := pc.Storage.SaveBytes("posts", name, data)
		if err != nil {
			log.Printf("[ERROR] post image: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to store image")
		}
		if post.ImagePath != nil {
			oldImage = *post.ImagePath
		}
		post.ImagePath = &path
	}

	if err := pc.DB.Save(post).Error; err != nil {
		log.Printf("[ERROR] post update: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update post")
	}
	if oldImage != "" {
		pc.Storage.ReleaseOld(oldImage)
	}
	return helper.Success(c, "Post updated", post)
}

func (pc *CharityPostController) Destroy(c *fiber.Ctx) error {
	post, err := pc.ownedPost(c)
	if err != nil {
		return err
	}
	if err := pc.DB.Delete(post).Error; err != nil {
		log.Printf("[ERROR] post delete: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete post")
	}
	if post.ImagePath != nil {
		pc.Storage.ReleaseOld(*post.ImagePath)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// =======================
// internals
// =======================

func (pc *CharityPostController) ownedCharity(c *fiber.Ctx) (*charityModel.CharityModel, error) {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return nil, err
	}
	var charity charityModel.CharityModel
	if err := pc.DB.First(&charity, "owner_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "You do not have a charity profile")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load charity")
	}
	return &charity, nil
}

func (pc *CharityPostController) ownedPost(c *fiber.Ctx) (*postModel.CharityPostModel, error) {
	charity, err := pc.ownedCharity(c)
	if err != nil {
		return nil, err
	}
	var post postModel.CharityPostModel
	if err := pc.DB.First(&post, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Post not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load post")
	}
	if post.CharityID != charity.ID {
		return nil, fiber.NewError(fiber.StatusForbidden, "You do not own this post")
	}
	return &post, nil
}
