package repositories

import (
	"errors"

	"contacts-backend/models"
)

// ErrRecordNotFound is returned by lookups that match no row.
var ErrRecordNotFound = errors.New("record not found")

// ContactFilter holds the optional exact-match predicates for the active
// contact listing. An empty field is a wildcard, not "match empty".
type ContactFilter struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Comment     string
}

// ContactRepository is the store contract for contact persons.
type ContactRepository interface {
	// FindByID returns the contact regardless of its status.
	FindByID(id uint) (*models.ContactPerson, error)
	// Save inserts the contact when its id is zero, otherwise updates it.
	Save(contact *models.ContactPerson) error
	// FindActive returns ACTIVE contacts matching every set filter field,
	// ordered by first name then last name, limited to the given window.
	FindActive(filter ContactFilter, offset, limit int) ([]models.ContactPerson, error)
}

// CompanyRepository is the store contract for companies.
type CompanyRepository interface {
	FindByName(name string) (*models.Company, error)
	Save(company *models.Company) error
}
