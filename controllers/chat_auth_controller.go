package controllers

import (
	"errors"

	"github.com/Nikhilesh-cheepu/kiik69-sub000/entity"
	"github.com/Nikhilesh-cheepu/kiik69-sub000/pkg/resp"
	"github.com/Nikhilesh-cheepu/kiik69-sub000/repository"
	"github.com/Nikhilesh-cheepu/kiik69-sub000/services"
	"github.com/Nikhilesh-cheepu/kiik69-sub000/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ChatAuthController struct {
	svc  *services.ChatAuthService
	repo *repository.ChatRepository
	hub  *ws.ChatHub
}

func NewChatAuthController(svc *services.ChatAuthService, repo *repository.ChatRepository, hub *ws.ChatHub) *ChatAuthController {
	return &ChatAuthController{svc: svc, repo: repo, hub: hub}
}

type otpRequest struct {
	Phone string `json:"phone"`
	Email string `json:"email" binding:"omitempty,email"`
}

// POST /api/chat-auth/request-otp
func (ctl *ChatAuthController) RequestOTP(c *gin.Context) {
	var req otpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if _, err := ctl.svc.RequestOTP(req.Phone, req.Email); err != nil {
		switch {
		case errors.Is(err, services.ErrNoIdentifier), errors.Is(err, services.ErrBadPhone):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"message": "otp sent"})
}

// POST /api/chat-auth/verify-otp
func (ctl *ChatAuthController) VerifyOTP(c *gin.Context) {
	var req struct {
		Phone string `json:"phone"`
		Email string `json:"email" binding:"omitempty,email"`
		OTP   string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ctl.svc.VerifyOTP(req.Phone, req.Email, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "user not found")
		case errors.Is(err, services.ErrInvalidOTP), errors.Is(err, services.ErrOTPExpired),
			errors.Is(err, services.ErrNoIdentifier), errors.Is(err, services.ErrBadPhone):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"session_id": user.SessionID, "user": user})
}

// GET /api/chat-auth/history/:sessionId
func (ctl *ChatAuthController) History(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if _, err := ctl.repo.FindUserBySession(sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "session not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	chats, err := ctl.repo.History(sessionID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, chats)
}

// POST /api/chat-auth/message — appends one line to the immutable chat log
// and fans it out to live websocket subscribers.
func (ctl *ChatAuthController) PostMessage(c *gin.Context) {
	var req struct {
		SessionID string `json:"session_id" binding:"required"`
		Message   string `json:"message" binding:"required"`
		IsBot     bool   `json:"is_bot"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ctl.repo.FindUserBySession(req.SessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "session not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	chat := entity.UserChat{
		UserID:    user.ID,
		SessionID: req.SessionID,
		Message:   req.Message,
		IsBot:     req.IsBot,
	}
	if err := ctl.repo.Append(&chat); err != nil {
		resp.ServerError(c, err)
		return
	}

	ctl.hub.Publish(req.SessionID, &chat)
	resp.Created(c, chat)
}
