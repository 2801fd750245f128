package controllers

import (
	"errors"
	"strconv"

	"github.com/Nikhilesh-cheepu/kiik69-sub000/entity"
	"github.com/Nikhilesh-cheepu/kiik69-sub000/pkg/resp"
	"github.com/Nikhilesh-cheepu/kiik69-sub000/pkg/upload"
	"github.com/Nikhilesh-cheepu/kiik69-sub000/repository"
	"github.com/Nikhilesh-cheepu/kiik69-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AssetController struct {
	repo   *repository.Resource[entity.Asset]
	svc    *services.AssetService
	upload upload.Policy
}

func NewAssetController(db *gorm.DB, uploadRoot string) *AssetController {
	return &AssetController{
		repo: repository.NewResource[entity.Asset](db, "created_at desc", map[string]string{
			"category": "category",
			"type":     "file_type",
			"featured": "is_featured",
			"public":   "is_public",
		}),
		svc:    services.NewAssetService(db, uploadRoot),
		upload: upload.AssetPolicy(uploadRoot),
	}
}

// GET /api/assets?category=&type=&featured=&public=
func (ctl *AssetController) List(c *gin.Context) {
	items, err := ctl.repo.List(c.Request.URL.Query(), 0, 0)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/assets/:id
func (ctl *AssetController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	item, err := ctl.repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "asset not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /api/assets (admin, file required)
func (ctl *AssetController) Create(c *gin.Context) {
	var req struct {
		Category    string `form:"category"`
		Description string `form:"description"`
		Tags        string `form:"tags"`
		IsFeatured  *bool  `form:"is_featured"`
		IsPublic    *bool  `form:"is_public"`
	}
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "file is required")
		return
	}
	if _, err := ctl.upload.Validate(fh); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	saved, err := ctl.upload.Save(c, fh)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	asset := entity.Asset{
		Filename:     saved.Filename,
		OriginalName: fh.Filename,
		FilePath:     saved.Path,
		FileURL:      saved.URL,
		FileType:     saved.Kind,
		Category:     req.Category,
		FileSize:     saved.Size,
		MimeType:     saved.Mime,
		Description:  req.Description,
		Tags:         req.Tags,
		IsPublic:     true,
	}
	if req.IsFeatured != nil {
		asset.IsFeatured = *req.IsFeatured
	}
	if req.IsPublic != nil {
		asset.IsPublic = *req.IsPublic
	}

	created, err := ctl.repo.Create(&asset)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, created)
}

// PUT /api/assets/:id (admin, metadata only; omitted fields are preserved)
func (ctl *AssetController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req struct {
		Category    *string `form:"category" json:"category"`
		Description *string `form:"description" json:"description"`
		Tags        *string `form:"tags" json:"tags"`
		IsFeatured  *bool   `form:"is_featured" json:"is_featured"`
		IsPublic    *bool   `form:"is_public" json:"is_public"`
	}
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fields := map[string]any{}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Tags != nil {
		fields["tags"] = *req.Tags
	}
	if req.IsFeatured != nil {
		fields["is_featured"] = *req.IsFeatured
	}
	if req.IsPublic != nil {
		fields["is_public"] = *req.IsPublic
	}

	// a replacement file re-points the registry row; the old file stays on
	// disk (only delete cleans up)
	if fh, err := c.FormFile("file"); err == nil {
		if _, err := ctl.upload.Validate(fh); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		saved, err := ctl.upload.Save(c, fh)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		fields["filename"] = saved.Filename
		fields["original_name"] = fh.Filename
		fields["file_path"] = saved.Path
		fields["file_url"] = saved.URL
		fields["file_type"] = saved.Kind
		fields["file_size"] = saved.Size
		fields["mime_type"] = saved.Mime
	}

	item, err := ctl.repo.Update(uint(id), fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "asset not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /api/assets/:id (admin). Removes the row, then the file.
func (ctl *AssetController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := ctl.svc.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "asset not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "asset deleted"})
}

// GET /api/assets/stats/overview (admin)
func (ctl *AssetController) Stats(c *gin.Context) {
	stats, err := ctl.svc.Stats()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}

// POST /api/assets/import-existing (admin). Synchronous: the counts are
// exact when the response goes out.
func (ctl *AssetController) ImportExisting(c *gin.Context) {
	result, err := ctl.svc.ImportExisting()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, result)
}
