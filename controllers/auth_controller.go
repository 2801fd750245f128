package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/Nikhilesh-cheepu/kiik69-sub000/entity"
	"github.com/Nikhilesh-cheepu/kiik69-sub000/pkg/resp"
	"github.com/Nikhilesh-cheepu/kiik69-sub000/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	DB        *gorm.DB
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthController(db *gorm.DB, secret string, ttl time.Duration) *AuthController {
	return &AuthController{DB: db, JWTSecret: secret, JWTTTL: ttl}
}

// POST /api/auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var admin entity.Admin
	if err := a.DB.Where("email = ?", strings.ToLower(req.Email)).First(&admin).Error; err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(admin.ID, admin.Role, a.JWTSecret, a.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user": gin.H{
			"id": admin.ID, "email": admin.Email, "name": admin.Name, "role": admin.Role,
		},
	})
}

// GET /api/auth/me
func (a *AuthController) Me(c *gin.Context) {
	var admin entity.Admin
	if err := a.DB.First(&admin, utils.CurrentUserID(c)).Error; err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, gin.H{
		"id": admin.ID, "email": admin.Email, "name": admin.Name,
		"role": utils.CurrentRole(c),
	})
}
