package entity

import "time"

// Message is a direct message between two users.
// FromUserID and ToUserID reference User.ID; both foreign keys restrict
// deletion of the referenced user. IsReading starts false and flips to true
// exactly once, via UserService.SetIsReadMessage.
type Message struct {
	ID            int       `json:"id" gorm:"primaryKey"`
	FromUserID    int       `json:"fromUserId" gorm:"index"`
	FromUser      *User     `json:"-" gorm:"foreignKey:FromUserID"`
	ToUserID      int       `json:"toUserId" gorm:"index"`
	ToUser        *User     `json:"-" gorm:"foreignKey:ToUserID"`
	Header        string    `json:"header" gorm:"size:50"`
	Body          string    `json:"body" gorm:"size:200"`
	IsReading     bool      `json:"isReading" gorm:"default:false"`
	DateOfMessage time.Time `json:"dateOfMessage"`
}

type SendMessageRequest struct {
	FromUserID int    `json:"fromUserId" binding:"required"`
	Login      string `json:"login" binding:"required,max=50"`
	Header     string `json:"header" binding:"required,max=50"`
	Body       string `json:"body" binding:"required,max=200"`
}

// MessageView is the inbox summary row.
type MessageView struct {
	ID            int    `json:"id"`
	FromUserLogin string `json:"fromUserLogin"`
	Header        string `json:"header"`
	IsReading     bool   `json:"isReading"`
	DateOfMessage string `json:"dateOfMessage"`
}

// OneMessageView is the single-message detail shape.
type OneMessageView struct {
	ID            int    `json:"id"`
	Header        string `json:"header"`
	Body          string `json:"body"`
	IsReading     bool   `json:"isReading"`
	DateOfMessage string `json:"dateOfMessage"`
}

// DateLayout is how message dates are rendered in views.
const DateLayout = "02.01.2006"
