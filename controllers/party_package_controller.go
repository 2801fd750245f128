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

type PartyPackageController struct {
	repo   *repository.Resource[entity.PartyPackage]
	upload upload.Policy
}

func NewPartyPackageController(db *gorm.DB, uploadRoot string) *PartyPackageController {
	return &PartyPackageController{
		repo: repository.NewResource[entity.PartyPackage](db, "price asc", map[string]string{
			"available": "is_available",
		}),
		upload: upload.ImagePolicy(uploadRoot, "party-packages", "package"),
	}
}

// GET /api/party-packages?available=
func (ctl *PartyPackageController) List(c *gin.Context) {
	items, err := ctl.repo.List(c.Request.URL.Query(), 0, 0)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/party-packages/:id
func (ctl *PartyPackageController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	item, err := ctl.repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "party package not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /api/party-packages (admin)
func (ctl *PartyPackageController) Create(c *gin.Context) {
	var req struct {
		Name        string   `form:"name" json:"name" binding:"required"`
		Description string   `form:"description" json:"description"`
		Price       *float64 `form:"price" json:"price" binding:"required,gte=0"`
		Includes    string   `form:"includes" json:"includes"`
		ImageURL    string   `form:"image_url" json:"image_url"`
		IsAvailable *bool    `form:"is_available" json:"is_available"`
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

	pkg := entity.PartyPackage{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Includes:    req.Includes,
		ImageURL:    req.ImageURL,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		pkg.IsAvailable = *req.IsAvailable
	}

	created, err := ctl.repo.Create(&pkg)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, created)
}

// PUT /api/party-packages/:id (admin, omitted fields are preserved)
func (ctl *PartyPackageController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req struct {
		Name        *string  `form:"name" json:"name"`
		Description *string  `form:"description" json:"description"`
		Price       *float64 `form:"price" json:"price" binding:"omitempty,gte=0"`
		Includes    *string  `form:"includes" json:"includes"`
		ImageURL    *string  `form:"image_url" json:"image_url"`
		IsAvailable *bool    `form:"is_available" json:"is_available"`
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
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Includes != nil {
		fields["includes"] = *req.Includes
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
			resp.NotFound(c, "party package not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /api/party-packages/:id (admin)
func (ctl *PartyPackageController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := ctl.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "party package not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "party package deleted"})
}
