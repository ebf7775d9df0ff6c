package models

import "time"

// Seeded status names. The lifecycle starts at New; authorized callers may
// move a report to any status, there is no forbidden-transition set.
const (
	StatusNew        = "New"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
	StatusRejected   = "Rejected"
)

type Status struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;not null;uniqueIndex" json:"name"`

	Problems []Problem `json:"-"`
}

type ProblemType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null;uniqueIndex" json:"name"`

	Problems []Problem `json:"-"`
}

// Problem is a citizen-reported issue. Location is a plain lat/lon pair;
// radius search works on it with a planar degree approximation.
type Problem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	ReportedAt  time.Time `gorm:"not null" json:"reportedAt"`
	Latitude    float64   `gorm:"not null" json:"latitude"`
	Longitude   float64   `gorm:"not null" json:"longitude"`

	ReporterID uint `gorm:"not null" json:"reporterId"`
	Reporter   User `json:"-"`

	ProblemTypeID uint        `gorm:"not null" json:"problemTypeId"`
	ProblemType   ProblemType `json:"-"`

	StatusID uint   `gorm:"not null" json:"statusId"`
	Status   Status `json:"-"`

	Notes []Note `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
