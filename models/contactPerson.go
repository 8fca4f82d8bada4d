package models

import "time"

// Status is the lifecycle state of a contact person. Contacts are never
// removed from storage; deleting one only flips its status to DELETED.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusDeleted Status = "DELETED"
)

type ContactPerson struct {
	Id           uint       `json:"id" gorm:"primaryKey"`
	FirstName    string     `json:"firstName" gorm:"not null"`
	LastName     string     `json:"lastName" gorm:"not null"`
	Email        string     `json:"email" gorm:"unique;not null"`
	PhoneNumber  string     `json:"phoneNumber" gorm:"unique"`
	CompanyId    *uint      `json:"-"`
	Company      *Company   `json:"company" gorm:"foreignKey:CompanyId;references:Id"`
	Comment      string     `json:"comment" gorm:"type:text"`
	Status       Status     `json:"status" gorm:"type:varchar(16);not null"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastModified *time.Time `json:"lastModified"`
}
