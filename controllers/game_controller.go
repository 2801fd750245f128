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

type GameController struct {
	repo   *repository.Resource[entity.Game]
	upload upload.Policy
}

func NewGameController(db *gorm.DB, uploadRoot string) *GameController {
	return &GameController{
		repo: repository.NewResource[entity.Game](db, "name asc", map[string]string{
			"type":      "type",
			"available": "is_available",
		}),
		upload: upload.ImagePolicy(uploadRoot, "games", "game"),
	}
}

// GET /api/games?type=&available=
func (ctl *GameController) List(c *gin.Context) {
	items, err := ctl.repo.List(c.Request.URL.Query(), 0, 0)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/games/:id
func (ctl *GameController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	item, err := ctl.repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "game not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /api/games (admin)
func (ctl *GameController) Create(c *gin.Context) {
	var req struct {
		Name        string `form:"name" json:"name" binding:"required"`
		Description string `form:"description" json:"description"`
		Type        string `form:"type" json:"type"`
		ImageURL    string `form:"image_url" json:"image_url"`
		IsAvailable *bool  `form:"is_available" json:"is_available"`
	}
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
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

	game := entity.Game{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		ImageURL:    req.ImageURL,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		game.IsAvailable = *req.IsAvailable
	}

	created, err := ctl.repo.Create(&game)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, created)
}

// PUT /api/games/:id (admin, omitted fields are preserved)
func (ctl *GameController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req struct {
		Name        *string `form:"name" json:"name"`
		Description *string `form:"description" json:"description"`
		Type        *string `form:"type" json:"type"`
		ImageURL    *string `form:"image_url" json:"image_url"`
		IsAvailable *bool   `form:"is_available" json:"is_available"`
	}
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if req.IsAvailable != nil {
		fields["is_available"] = *req.IsAvailable
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
			resp.NotFound(c, "game not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /api/games/:id (admin)
func (ctl *GameController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := ctl.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "game not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "game deleted"})
}

// GET /api/games/types/list
func (ctl *GameController) Types(c *gin.Context) {
	values, err := ctl.repo.DistinctValues("type")
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, values)
}
