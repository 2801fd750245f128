package controllers

import (
	"errors"
	"strconv"

	"github.com/Nikhilesh-cheepu/kiik69-sub000/entity"
	"github.com/Nikhilesh-cheepu/kiik69-sub000/pkg/resp"
	"github.com/Nikhilesh-cheepu/kiik69-sub000/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContactController struct {
	repo *repository.Resource[entity.ContactMessage]
	DB   *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{
		repo: repository.NewResource[entity.ContactMessage](db, "created_at desc", map[string]string{
			"status": "status",
		}),
		DB: db,
	}
}

// POST /api/contact (public)
func (ctl *ContactController) Create(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Phone   string `json:"phone"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	msg := entity.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
		Status:  entity.ContactStatusUnread,
	}
	created, err := ctl.repo.Create(&msg)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, created)
}

// GET /api/contact?status=&limit=&offset= (admin; default page 50/0)
func (ctl *ContactController) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	items, err := ctl.repo.List(c.Request.URL.Query(), limit, offset)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/contact/:id (admin)
func (ctl *ContactController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	item, err := ctl.repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "message not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// PATCH /api/contact/:id/status (admin). Only the enumerated statuses pass.
func (ctl *ContactController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !entity.ValidContactStatus(req.Status) {
		resp.BadRequest(c, "status must be one of unread, read, replied, archived")
		return
	}

	item, err := ctl.repo.Update(uint(id), map[string]any{"status": req.Status})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "message not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /api/contact/:id (admin)
func (ctl *ContactController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := ctl.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "message not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "contact message deleted"})
}

// GET /api/contact/stats/overview (admin)
func (ctl *ContactController) Stats(c *gin.Context) {
	type bucket struct {
		Status string
		Count  int64
	}
	var buckets []bucket
	if err := ctl.DB.Model(&entity.ContactMessage{}).
		Select("status, count(*) as count").
		Group("status").Scan(&buckets).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	stats := gin.H{
		entity.ContactStatusUnread:   int64(0),
		entity.ContactStatusRead:     int64(0),
		entity.ContactStatusReplied:  int64(0),
		entity.ContactStatusArchived: int64(0),
	}
	var total int64
	for _, b := range buckets {
		stats[b.Status] = b.Count
		total += b.Count
	}
	stats["total"] = total
	resp.OK(c, stats)
}
