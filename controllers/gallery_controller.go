package controllers

import (
	"errors"
	"strconv"

	"github.com/Nikhilesh-cheepu/kiik69-sub000/entity"
	"github.com/Nikhilesh-cheepu/kiik69-sub000/pkg/resp"
	"github.com/Nikhilesh-cheepu/kiik69-sub000/pkg/upload"
	"github.com/Nikhilesh-cheepu/kiik69-sub000/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GalleryController struct {
	repo   *repository.Resource[entity.GalleryItem]
	upload upload.Policy
}

func NewGalleryController(db *gorm.DB, uploadRoot string) *GalleryController {
	return &GalleryController{
		repo: repository.NewResource[entity.GalleryItem](db, "created_at desc", map[string]string{
			"category": "category",
			"featured": "is_featured",
		}),
		upload: upload.GalleryPolicy(uploadRoot),
	}
}

// GET /api/gallery?category=&featured=
func (ctl *GalleryController) List(c *gin.Context) {
	items, err := ctl.repo.List(c.Request.URL.Query(), 0, 0)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/gallery/:id
func (ctl *GalleryController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	item, err := ctl.repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "gallery item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /api/gallery (admin). The media kind follows the uploaded file's
// extension: an item holds image_url or video_url, never both.
func (ctl *GalleryController) Create(c *gin.Context) {
	var req struct {
		Title       string `form:"title" json:"title"`
		Description string `form:"description" json:"description"`
		ImageURL    string `form:"image_url" json:"image_url"`
		VideoURL    string `form:"video_url" json:"video_url"`
		Category    string `form:"category" json:"category"`
		IsFeatured  *bool  `form:"is_featured" json:"is_featured"`
	}
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if fh, err := c.FormFile("media"); err == nil {
		rule, err := ctl.upload.Validate(fh)
		if err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		saved, err := ctl.upload.Save(c, fh)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		if rule.Kind == "video" {
			req.VideoURL = saved.URL
			req.ImageURL = ""
		} else {
			req.ImageURL = saved.URL
			req.VideoURL = ""
		}
	}

	if req.ImageURL != "" && req.VideoURL != "" {
		resp.BadRequest(c, "image_url and video_url are mutually exclusive")
		return
	}
	if req.ImageURL == "" && req.VideoURL == "" {
		resp.BadRequest(c, "media file or url is required")
		return
	}

	item := entity.GalleryItem{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		VideoURL:    req.VideoURL,
		Category:    req.Category,
	}
	if req.IsFeatured != nil {
		item.IsFeatured = *req.IsFeatured
	}

	created, err := ctl.repo.Create(&item)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, created)
}

// PUT /api/gallery/:id (admin, omitted fields are preserved)
func (ctl *GalleryController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req struct {
		Title       *string `form:"title" json:"title"`
		Description *string `form:"description" json:"description"`
		Category    *string `form:"category" json:"category"`
		IsFeatured  *bool   `form:"is_featured" json:"is_featured"`
	}
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.IsFeatured != nil {
		fields["is_featured"] = *req.IsFeatured
	}

	if fh, err := c.FormFile("media"); err == nil {
		rule, err := ctl.upload.Validate(fh)
		if err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		saved, err := ctl.upload.Save(c, fh)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		// swapping kinds clears the other column
		if rule.Kind == "video" {
			fields["video_url"] = saved.URL
			fields["image_url"] = ""
		} else {
			fields["image_url"] = saved.URL
			fields["video_url"] = ""
		}
	}

	item, err := ctl.repo.Update(uint(id), fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "gallery item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /api/gallery/:id (admin)
func (ctl *GalleryController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := ctl.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "gallery item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "gallery item deleted"})
}

// GET /api/gallery/categories/list
func (ctl *GalleryController) Categories(c *gin.Context) {
	values, err := ctl.repo.DistinctValues("category")
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, values)
}
