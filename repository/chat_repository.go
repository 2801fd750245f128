package repository

import (
	"github.com/Nikhilesh-cheepu/kiik69-sub000/entity"
	"gorm.io/gorm"
)

type ChatRepository struct {
	DB *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{DB: db}
}

func (r *ChatRepository) FindUserByPhone(phone string) (*entity.ChatUser, error) {
	var user entity.ChatUser
	err := r.DB.Where("phone = ?", phone).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *ChatRepository) FindUserByEmail(email string) (*entity.ChatUser, error) {
	var user entity.ChatUser
	err := r.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *ChatRepository) FindUserBySession(sessionID string) (*entity.ChatUser, error) {
	var user entity.ChatUser
	err := r.DB.Where("session_id = ?", sessionID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *ChatRepository) CreateUser(user *entity.ChatUser) error {
	return r.DB.Create(user).Error
}

func (r *ChatRepository) SaveUser(user *entity.ChatUser) error {
	return r.DB.Save(user).Error
}

// History returns a session's messages oldest first.
func (r *ChatRepository) History(sessionID string) ([]entity.UserChat, error) {
	var chats []entity.UserChat
	err := r.DB.Where("session_id = ?", sessionID).
		Order("timestamp asc, id asc").
		Find(&chats).Error
	return chats, err
}

// Append writes one chat line. The log is append-only; there is no update
// or delete counterpart on purpose.
func (r *ChatRepository) Append(chat *entity.UserChat) error {
	return r.DB.Create(chat).Error
}
