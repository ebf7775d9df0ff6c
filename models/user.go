package models

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
)

// RoleName enumerates the fixed authorization tiers. Roles are seeded at
// startup and never created through the API.
type RoleName string

const (
	RoleCitizen       RoleName = "Citizen"
	RoleAdministrator RoleName = "Administrator"
	RoleOfficial      RoleName = "Official"
)

type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;not null;uniqueIndex" json:"name"`

	Users []User `json:"-"`
}

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email        string `gorm:"size:100;not null;uniqueIndex" json:"email"`
	PasswordHash []byte `gorm:"not null" json:"-"`
	PasswordSalt []byte `gorm:"not null" json:"-"`

	RoleID uint `gorm:"not null" json:"roleId"`
	Role   Role `gorm:"constraint:OnDelete:RESTRICT" json:"-"`

	ReportedProblems []Problem `gorm:"foreignKey:ReporterID;constraint:OnDelete:CASCADE" json:"-"`
	Notes            []Note    `gorm:"foreignKey:UserID" json:"-"`
}

const saltLength = 64

// SetPassword derives a fresh random salt and stores the keyed
// HMAC-SHA512 digest of the password. The plaintext is never persisted.
func (u *User) SetPassword(password string) error {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return err
	}
	u.PasswordSalt = salt
	u.PasswordHash = hashPassword(password, salt)
	return nil
}

// CheckPassword recomputes the digest with the stored salt and compares in
// constant time.
func (u *User) CheckPassword(candidate string) bool {
	return hmac.Equal(u.PasswordHash, hashPassword(candidate, u.PasswordSalt))
}

func hashPassword(password string, salt []byte) []byte {
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))
	return mac.Sum(nil)
}
