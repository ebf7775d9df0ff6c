package models

import "time"

// Note is an official's annotation on a problem. Notes are immutable once
// created and are deleted together with the owning problem.
type Note struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"size:1000;not null" json:"content"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`

	UserID uint `gorm:"not null" json:"userId"`
	User   User `json:"-"`

	ProblemID uint    `gorm:"not null" json:"problemId"`
	Problem   Problem `json:"-"`
}
