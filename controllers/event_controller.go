package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/Nikhilesh-cheepu/kiik69-sub000/entity"
	"github.com/Nikhilesh-cheepu/kiik69-sub000/pkg/resp"
	"github.com/Nikhilesh-cheepu/kiik69-sub000/pkg/upload"
	"github.com/Nikhilesh-cheepu/kiik69-sub000/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EventController struct {
	repo   *repository.Resource[entity.Event]
	upload upload.Policy
}

func NewEventController(db *gorm.DB, uploadRoot string) *EventController {
	return &EventController{
		repo: repository.NewResource[entity.Event](db, "created_at desc", map[string]string{
			"featured": "is_featured",
		}),
		upload: upload.ImagePolicy(uploadRoot, "events", "event"),
	}
}

// GET /api/events?featured=
func (ctl *EventController) List(c *gin.Context) {
	items, err := ctl.repo.List(c.Request.URL.Query(), 0, 0)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/events/:id
func (ctl *EventController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	item, err := ctl.repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "event not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /api/events (admin)
func (ctl *EventController) Create(c *gin.Context) {
	var req struct {
		Title       string `form:"title" json:"title" binding:"required"`
		Description string `form:"description" json:"description"`
		Date        string `form:"date" json:"date" binding:"required"`
		Time        string `form:"time" json:"time"`
		ImageURL    string `form:"image_url" json:"image_url"`
		IsFeatured  *bool  `form:"is_featured" json:"is_featured"`
	}
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		resp.BadRequest(c, "date must be YYYY-MM-DD")
		return
	}

	if fh, err := c.FormFile("image"); err == nil {
		if _, err := ctl.upload.Validate(fh); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		saved, err := ctl.upload.Save(c, fh)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		req.ImageURL = saved.URL
	}

	event := entity.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		ImageURL:    req.ImageURL,
	}
	if req.IsFeatured != nil {
		event.IsFeatured = *req.IsFeatured
	}

	created, err := ctl.repo.Create(&event)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, created)
}

// PUT /api/events/:id (admin, omitted fields are preserved)
func (ctl *EventController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req struct {
		Title       *string `form:"title" json:"title"`
		Description *string `form:"description" json:"description"`
		Date        *string `form:"date" json:"date"`
		Time        *string `form:"time" json:"time"`
		ImageURL    *string `form:"image_url" json:"image_url"`
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
	if req.Date != nil {
		if _, err := time.Parse("2006-01-02", *req.Date); err != nil {
			resp.BadRequest(c, "date must be YYYY-MM-DD")
			return
		}
		fields["date"] = *req.Date
	}
	if req.Time != nil {
		fields["time"] = *req.Time
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if req.IsFeatured != nil {
		fields["is_featured"] = *req.IsFeatured
	}

	if fh, err := c.FormFile("image"); err == nil {
		if _, err := ctl.upload.Validate(fh); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		saved, err := ctl.upload.Save(c, fh)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		fields["image_url"] = saved.URL
	}

	item, err := ctl.repo.Update(uint(id), fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "event not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /api/events/:id (admin)
func (ctl *EventController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := ctl.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "event not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "event deleted"})
}
