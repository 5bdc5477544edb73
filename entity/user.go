package entity

// User is an account that can send and receive messages.
// Login is unique; the uniqueIndex backs the application-level check in
// AuthService so a registration race cannot produce two rows.
// Password holds a bcrypt hash and is never serialized.
type User struct {
	ID         int    `json:"id" gorm:"primaryKey"`
	Login      string `json:"login" gorm:"uniqueIndex;size:50"`
	Password   string `json:"-" gorm:"size:72"`
	Surname    string `json:"surname" gorm:"size:50"`
	Name       string `json:"name" gorm:"size:50"`
	Middlename string `json:"middlename" gorm:"size:50"`

	// Both associations restrict deletion: a user referenced by any
	// message cannot be removed.
	SentMessages     []Message `json:"-" gorm:"foreignKey:FromUserID;constraint:OnDelete:RESTRICT"`
	ReceivedMessages []Message `json:"-" gorm:"foreignKey:ToUserID;constraint:OnDelete:RESTRICT"`
}

type RegisterRequest struct {
	Login      string `json:"login" binding:"required,max=50"`
	Password   string `json:"password" binding:"required,max=50"`
	Surname    string `json:"surname" binding:"max=50"`
	Name       string `json:"name" binding:"max=50"`
	Middlename string `json:"middlename" binding:"max=50"`
}

type AuthRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserView is the profile shape returned to clients. No password.
type UserView struct {
	ID         int    `json:"id"`
	Login      string `json:"login,omitempty"`
	Surname    string `json:"surname"`
	Name       string `json:"name"`
	Middlename string `json:"middlename"`
}
