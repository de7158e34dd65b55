package user

// Account is a registered identity. Only PasswordHash may change after
// registration, and nothing in this service changes it.
type Account struct {
	ID           uint64 `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:hashed_password;not null"`
}

func (Account) TableName() string {
	return "users"
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=150"`
	Password string `json:"password" binding:"required,max=72"`
}

// LoginForm is the form-encoded body of POST /token.
type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}
