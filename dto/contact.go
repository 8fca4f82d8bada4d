package dto

import (
	"time"

	"contacts-backend/models"
)

// ContactPersonInput is the request body shared by create and update.
type ContactPersonInput struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Comment     string `json:"comment"`
	CompanyName string `json:"companyName" validate:"required"`
}

// ContactPersonDetail is the full single-record view. The nested company
// is flattened to its plain name.
type ContactPersonDetail struct {
	Id           uint       `json:"id"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Email        string     `json:"email"`
	PhoneNumber  string     `json:"phoneNumber"`
	CompanyName  string     `json:"companyName"`
	Comment      string     `json:"comment"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastModified *time.Time `json:"lastModified"`
}

// SimplifiedContactPerson is the compact row used by the paginated list.
type SimplifiedContactPerson struct {
	Name        string `json:"name"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// companyName tolerates an absent company reference and maps it to "".
// Callers get an incomplete view rather than an error.
func companyName(entity *models.ContactPerson) string {
	if entity.Company == nil {
		return ""
	}
	return entity.Company.Name
}

func DetailView(entity *models.ContactPerson) ContactPersonDetail {
	return ContactPersonDetail{
		Id:           entity.Id,
		FirstName:    entity.FirstName,
		LastName:     entity.LastName,
		Email:        entity.Email,
		PhoneNumber:  entity.PhoneNumber,
		CompanyName:  companyName(entity),
		Comment:      entity.Comment,
		Status:       string(entity.Status),
		CreatedAt:    entity.CreatedAt,
		LastModified: entity.LastModified,
	}
}

func SimplifiedView(entity *models.ContactPerson) SimplifiedContactPerson {
	return SimplifiedContactPerson{
		Name:        entity.FirstName + " " + entity.LastName,
		CompanyName: companyName(entity),
		Email:       entity.Email,
		PhoneNumber: entity.PhoneNumber,
	}
}
