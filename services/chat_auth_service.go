package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	"github.com/Nikhilesh-cheepu/kiik69-sub000/entity"
	"github.com/Nikhilesh-cheepu/kiik69-sub000/repository"
	"github.com/Nikhilesh-cheepu/kiik69-sub000/utils"
	"gorm.io/gorm"
)

var (
	ErrNoIdentifier = errors.New("phone or email is required")
	ErrBadPhone     = errors.New("invalid phone number")
	ErrInvalidOTP   = errors.New("invalid otp")
	ErrOTPExpired   = errors.New("otp expired")
)

const otpTTL = 10 * time.Minute

// OTPSender delivers a one-time code. Production would plug an SMS/email
// gateway here; the default just logs.
type OTPSender interface {
	Send(destination, code string) error
}

type LogOTPSender struct{}

func (LogOTPSender) Send(destination, code string) error {
	log.Printf("otp for %s: %s", destination, code)
	return nil
}

// ChatAuthService owns the chat-widget identity flow: find-or-create a chat
// user by phone or email, issue an OTP, verify it and hand back the session.
type ChatAuthService struct {
	repo   *repository.ChatRepository
	sender OTPSender
}

func NewChatAuthService(repo *repository.ChatRepository, sender OTPSender) *ChatAuthService {
	if sender == nil {
		sender = LogOTPSender{}
	}
	return &ChatAuthService{repo: repo, sender: sender}
}

// RequestOTP finds or creates the chat user and issues a 6-digit code with
// a 10-minute expiry.
func (s *ChatAuthService) RequestOTP(phone, email string) (*entity.ChatUser, error) {
	user, destination, err := s.lookupOrCreate(phone, email)
	if err != nil {
		return nil, err
	}

	code := generateOTP()
	expires := time.Now().Add(otpTTL)
	user.OTP = &code
	user.OTPExpiresAt = &expires
	if err := s.repo.SaveUser(user); err != nil {
		return nil, err
	}

	if err := s.sender.Send(destination, code); err != nil {
		return nil, err
	}
	return user, nil
}

// VerifyOTP checks the code and expiry, marks the user verified and stamps
// last_login. The stored code is single-use.
func (s *ChatAuthService) VerifyOTP(phone, email, code string) (*entity.ChatUser, error) {
	user, err := s.lookup(phone, email)
	if err != nil {
		return nil, err
	}

	if user.OTP == nil || *user.OTP != code {
		return nil, ErrInvalidOTP
	}
	if user.OTPExpiresAt == nil || time.Now().After(*user.OTPExpiresAt) {
		return nil, ErrOTPExpired
	}

	now := time.Now()
	user.OTP = nil
	user.OTPExpiresAt = nil
	user.IsVerified = true
	user.LastLogin = &now
	if err := s.repo.SaveUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *ChatAuthService) lookup(phone, email string) (*entity.ChatUser, error) {
	switch {
	case phone != "":
		if !utils.ValidatePhone(phone) {
			return nil, ErrBadPhone
		}
		return s.repo.FindUserByPhone(utils.NormalizePhone(phone))
	case email != "":
		return s.repo.FindUserByEmail(strings.ToLower(strings.TrimSpace(email)))
	default:
		return nil, ErrNoIdentifier
	}
}

func (s *ChatAuthService) lookupOrCreate(phone, email string) (*entity.ChatUser, string, error) {
	user, err := s.lookup(phone, email)
	if err == nil {
		if user.Phone != nil {
			return user, *user.Phone, nil
		}
		return user, *user.Email, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	fresh := &entity.ChatUser{SessionID: utils.GenerateSessionID()}
	var destination string
	if phone != "" {
		normalized := utils.NormalizePhone(phone)
		fresh.Phone = &normalized
		destination = normalized
	} else {
		lowered := strings.ToLower(strings.TrimSpace(email))
		fresh.Email = &lowered
		destination = lowered
	}
	if err := s.repo.CreateUser(fresh); err != nil {
		return nil, "", err
	}
	return fresh, destination, nil
}

func generateOTP() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		panic(err)
	}
	return fmt.Sprintf("%06d", n.Int64())
}
