package support

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusResolved   Status = "resolved"
)

// Request is one support-contact submission with a message thread.
type Request struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Subject   string    `gorm:"size:200;not null" json:"subject"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	Status    Status    `gorm:"size:20;not null;default:'pending'" json:"status"`
	Messages  []Message `gorm:"foreignKey:RequestID" json:"messages,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message is one reply on a support thread. Both staff and the requester can
// post.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RequestID uint      `gorm:"not null;index" json:"request_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateRequestDTO struct {
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

type CreateMessageDTO struct {
	Content string `json:"content" binding:"required"`
}
