package models

import "time"

type User struct {
	BaseModel
	Email                 string             `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash          string             `gorm:"not null" json:"-"`
	FirstName             string             `gorm:"not null" json:"first_name"`
	LastName              string             `gorm:"not null" json:"last_name"`
	AvatarURL             *string            `json:"avatar_url"`
	SubscriptionPlan      SubscriptionPlan   `gorm:"type:varchar(20);default:'free'" json:"subscription_plan"`
	SubscriptionStatus    SubscriptionStatus `gorm:"type:varchar(20);default:'active'" json:"subscription_status"`
	SubscriptionExpiresAt *time.Time         `json:"subscription_expires_at"`

	// Relations
	Workspaces []Workspace `gorm:"foreignKey:OwnerID" json:"-"`
	Sessions   []Session   `gorm:"foreignKey:UserID" json:"-"`
}

// Session - серверная запись о выданном токене.
// Хранится хеш токена, а не сам токен.
type Session struct {
	BaseModel
	UserID    string    `gorm:"not null;index" json:"user_id"`
	TokenHash string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}

// Expired сообщает, истекла ли сессия
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
