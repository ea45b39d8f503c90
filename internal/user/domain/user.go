package domain

import "time"

type User struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	Username      string    `json:"username" gorm:"uniqueIndex;not null"`
	Email         string    `json:"email" gorm:"uniqueIndex;not null"`
	FullName      string    `json:"fullName" gorm:"index;not null"`
	AvatarURL     string    `json:"avatarUrl" gorm:"not null"`
	CoverImageURL string    `json:"coverImageUrl,omitempty"`
	PasswordHash  string    `json:"-" gorm:"column:password_hash"`
	RefreshToken  string    `json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Sanitized returns a copy safe to hand to clients: the hash and the stored
// refresh token never leave the server. The json:"-" tags already hide them,
// the copy keeps them out of any non-JSON serialization path too.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	u.RefreshToken = ""
	return u
}
