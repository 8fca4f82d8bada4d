package services

import (
	"errors"
	"fmt"
	"time"

	"contacts-backend/dto"
	"contacts-backend/models"
	"contacts-backend/phone"
	"contacts-backend/repositories"

	"github.com/go-playground/validator/v10"
)

// PageSize is the fixed number of rows per list page.
const PageSize = 10

// ContactService holds the business rules around querying, creating,
// updating and soft-deleting contact persons. All collaborators are
// injected so tests can substitute them.
type ContactService struct {
	contacts  repositories.ContactRepository
	companies repositories.CompanyRepository
	phones    phone.Validator
	validate  *validator.Validate
}

func NewContactService(contacts repositories.ContactRepository, companies repositories.CompanyRepository, phones phone.Validator) *ContactService {
	return &ContactService{
		contacts:  contacts,
		companies: companies,
		phones:    phones,
		validate:  validator.New(),
	}
}

// ListActive returns one page of simplified views over ACTIVE contacts.
// pageNumber is 1-based; every set filter field must match exactly.
func (s *ContactService) ListActive(filter repositories.ContactFilter, pageNumber int) ([]dto.SimplifiedContactPerson, error) {
	if pageNumber < 1 {
		return nil, ErrInvalidPage
	}

	contacts, err := s.contacts.FindActive(filter, (pageNumber-1)*PageSize, PageSize)
	if err != nil {
		return nil, err
	}

	views := make([]dto.SimplifiedContactPerson, 0, len(contacts))
	for i := range contacts {
		views = append(views, dto.SimplifiedView(&contacts[i]))
	}
	return views, nil
}

// GetDetail returns the full view of a contact, deleted ones included.
func (s *ContactService) GetDetail(id uint) (dto.ContactPersonDetail, error) {
	contact, err := s.findContact(id)
	if err != nil {
		return dto.ContactPersonDetail{}, err
	}
	return dto.DetailView(contact), nil
}

// Create validates the input and stores a new ACTIVE contact. The
// company name is resolved by exact lookup; an unknown name leaves the
// company reference unset rather than failing.
func (s *ContactService) Create(input dto.ContactPersonInput) (*models.ContactPerson, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}
	if err := s.checkPhoneNumber(input.PhoneNumber); err != nil {
		return nil, err
	}

	contact, err := s.toEntity(input)
	if err != nil {
		return nil, err
	}
	contact.Status = models.StatusActive
	contact.CreatedAt = time.Now()

	if err := s.contacts.Save(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// Update replaces every editable field of an existing contact while
// keeping its original createdAt and status, and stamps lastModified.
func (s *ContactService) Update(id uint, input dto.ContactPersonInput) (*models.ContactPerson, error) {
	prior, err := s.findContact(id)
	if err != nil {
		return nil, err
	}

	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}
	if err := s.checkPhoneNumber(input.PhoneNumber); err != nil {
		return nil, err
	}

	contact, err := s.toEntity(input)
	if err != nil {
		return nil, err
	}
	contact.Id = id
	contact.CreatedAt = prior.CreatedAt
	contact.Status = prior.Status
	now := time.Now()
	contact.LastModified = &now

	if err := s.contacts.Save(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// SoftDelete marks the contact DELETED and returns it. Deleting an
// already deleted contact succeeds and re-persists the DELETED state.
func (s *ContactService) SoftDelete(id uint) (*models.ContactPerson, error) {
	contact, err := s.findContact(id)
	if err != nil {
		return nil, err
	}

	contact.Status = models.StatusDeleted
	if err := s.contacts.Save(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *ContactService) findContact(id uint) (*models.ContactPerson, error) {
	contact, err := s.contacts.FindByID(id)
	if errors.Is(err, repositories.ErrRecordNotFound) {
		return nil, ErrContactNotFound
	}
	if err != nil {
		return nil, err
	}
	return contact, nil
}

// checkPhoneNumber validates a phone number when one is given.
func (s *ContactService) checkPhoneNumber(number string) error {
	if number == "" {
		return nil
	}
	if err := s.phones.Validate(number); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPhoneNumber, err)
	}
	return nil
}

func (s *ContactService) toEntity(input dto.ContactPersonInput) (*models.ContactPerson, error) {
	contact := &models.ContactPerson{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Comment:     input.Comment,
	}

	company, err := s.companies.FindByName(input.CompanyName)
	if err != nil && !errors.Is(err, repositories.ErrRecordNotFound) {
		return nil, err
	}
	if company != nil {
		contact.CompanyId = &company.Id
		contact.Company = company
	}
	return contact, nil
}
