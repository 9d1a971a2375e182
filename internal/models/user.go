package models

const DefaultCredits = 5

type User struct {
	BaseModel
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Credits      int    `gorm:"not null;default:5"`

	// Relations
	Transactions []Transaction `gorm:"foreignKey:UserID"`
}
