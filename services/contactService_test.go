package services

import (
	"errors"
	"testing"
	"time"

	"contacts-backend/dto"
	"contacts-backend/models"
	"contacts-backend/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContactRepo struct {
	contacts map[uint]models.ContactPerson
	nextId   uint

	active     []models.ContactPerson
	lastFilter repositories.ContactFilter
	lastOffset int
	lastLimit  int
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: map[uint]models.ContactPerson{}}
}

func (f *fakeContactRepo) FindByID(id uint) (*models.ContactPerson, error) {
	contact, ok := f.contacts[id]
	if !ok {
		return nil, repositories.ErrRecordNotFound
	}
	return &contact, nil
}

func (f *fakeContactRepo) Save(contact *models.ContactPerson) error {
	if contact.Id == 0 {
		f.nextId++
		contact.Id = f.nextId
	}
	f.contacts[contact.Id] = *contact
	return nil
}

func (f *fakeContactRepo) FindActive(filter repositories.ContactFilter, offset, limit int) ([]models.ContactPerson, error) {
	f.lastFilter = filter
	f.lastOffset = offset
	f.lastLimit = limit
	return f.active, nil
}

type fakeCompanyRepo struct {
	companies map[string]models.Company
}

func newFakeCompanyRepo(companies ...models.Company) *fakeCompanyRepo {
	repo := &fakeCompanyRepo{companies: map[string]models.Company{}}
	for _, company := range companies {
		repo.companies[company.Name] = company
	}
	return repo
}

func (f *fakeCompanyRepo) FindByName(name string) (*models.Company, error) {
	company, ok := f.companies[name]
	if !ok {
		return nil, repositories.ErrRecordNotFound
	}
	return &company, nil
}

func (f *fakeCompanyRepo) Save(company *models.Company) error {
	f.companies[company.Name] = *company
	return nil
}

type stubPhoneValidator struct {
	err    error
	called bool
}

func (s *stubPhoneValidator) Validate(string) error {
	s.called = true
	return s.err
}

func validInput() dto.ContactPersonInput {
	return dto.ContactPersonInput{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "john.doe@example.com",
		PhoneNumber: "+36 30 123 4567",
		Comment:     "key account",
		CompanyName: "Acme",
	}
}

func newService(contacts *fakeContactRepo, companies *fakeCompanyRepo, phones *stubPhoneValidator) *ContactService {
	return NewContactService(contacts, companies, phones)
}

func TestCreateStoresActiveContact(t *testing.T) {
	contacts := newFakeContactRepo()
	companies := newFakeCompanyRepo(models.Company{Id: 7, Name: "Acme"})
	service := newService(contacts, companies, &stubPhoneValidator{})

	before := time.Now()
	contact, err := service.Create(validInput())
	require.NoError(t, err)

	assert.NotZero(t, contact.Id)
	assert.Equal(t, models.StatusActive, contact.Status)
	assert.False(t, contact.CreatedAt.Before(before))
	assert.Nil(t, contact.LastModified)
	require.NotNil(t, contact.Company)
	assert.Equal(t, "Acme", contact.Company.Name)
	require.NotNil(t, contact.CompanyId)
	assert.Equal(t, uint(7), *contact.CompanyId)
	assert.Len(t, contacts.contacts, 1)
}

func TestCreateUnknownCompanyLeavesReferenceUnset(t *testing.T) {
	contacts := newFakeContactRepo()
	service := newService(contacts, newFakeCompanyRepo(), &stubPhoneValidator{})

	contact, err := service.Create(validInput())
	require.NoError(t, err)

	assert.Nil(t, contact.Company)
	assert.Nil(t, contact.CompanyId)
}

func TestCreateInvalidPhoneNumberPersistsNothing(t *testing.T) {
	contacts := newFakeContactRepo()
	phones := &stubPhoneValidator{err: errors.New("not a HU number")}
	service := newService(contacts, newFakeCompanyRepo(), phones)

	_, err := service.Create(validInput())
	assert.ErrorIs(t, err, ErrInvalidPhoneNumber)
	assert.Empty(t, contacts.contacts)
}

func TestCreateWithoutPhoneSkipsValidation(t *testing.T) {
	phones := &stubPhoneValidator{err: errors.New("should not be called")}
	service := newService(newFakeContactRepo(), newFakeCompanyRepo(), phones)

	input := validInput()
	input.PhoneNumber = ""
	_, err := service.Create(input)

	require.NoError(t, err)
	assert.False(t, phones.called)
}

func TestCreateRejectsMissingFields(t *testing.T) {
	service := newService(newFakeContactRepo(), newFakeCompanyRepo(), &stubPhoneValidator{})

	cases := map[string]func(*dto.ContactPersonInput){
		"empty first name":    func(input *dto.ContactPersonInput) { input.FirstName = "" },
		"empty last name":     func(input *dto.ContactPersonInput) { input.LastName = "" },
		"empty email":         func(input *dto.ContactPersonInput) { input.Email = "" },
		"malformed email":     func(input *dto.ContactPersonInput) { input.Email = "not-an-email" },
		"missing companyName": func(input *dto.ContactPersonInput) { input.CompanyName = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			input := validInput()
			mutate(&input)
			_, err := service.Create(input)
			var ve validator.ValidationErrors
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestUpdatePreservesCreatedAtAndStatus(t *testing.T) {
	contacts := newFakeContactRepo()
	createdAt := time.Now().Add(-48 * time.Hour)
	contacts.contacts[1] = models.ContactPerson{
		Id:        1,
		FirstName: "Old",
		LastName:  "Name",
		Email:     "old@example.com",
		Status:    models.StatusDeleted,
		CreatedAt: createdAt,
	}
	contacts.nextId = 1
	service := newService(contacts, newFakeCompanyRepo(models.Company{Id: 7, Name: "Acme"}), &stubPhoneValidator{})

	before := time.Now()
	contact, err := service.Update(1, validInput())
	require.NoError(t, err)

	assert.Equal(t, uint(1), contact.Id)
	assert.True(t, contact.CreatedAt.Equal(createdAt))
	assert.Equal(t, models.StatusDeleted, contact.Status)
	require.NotNil(t, contact.LastModified)
	assert.False(t, contact.LastModified.Before(before))
	assert.Equal(t, "John", contacts.contacts[1].FirstName)
}

func TestUpdateUnknownContact(t *testing.T) {
	service := newService(newFakeContactRepo(), newFakeCompanyRepo(), &stubPhoneValidator{})

	_, err := service.Update(42, validInput())
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestUpdateInvalidPhoneNumber(t *testing.T) {
	contacts := newFakeContactRepo()
	contacts.contacts[1] = models.ContactPerson{Id: 1, Status: models.StatusActive}
	contacts.nextId = 1
	phones := &stubPhoneValidator{err: errors.New("bad")}
	service := newService(contacts, newFakeCompanyRepo(), phones)

	_, err := service.Update(1, validInput())
	assert.ErrorIs(t, err, ErrInvalidPhoneNumber)
}

func TestSoftDeleteMarksContactDeleted(t *testing.T) {
	contacts := newFakeContactRepo()
	contacts.contacts[1] = models.ContactPerson{Id: 1, FirstName: "John", Status: models.StatusActive}
	contacts.nextId = 1
	service := newService(contacts, newFakeCompanyRepo(), &stubPhoneValidator{})

	contact, err := service.SoftDelete(1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDeleted, contact.Status)
	assert.Equal(t, models.StatusDeleted, contacts.contacts[1].Status)

	// The record stays retrievable through the detail view.
	detail, err := service.GetDetail(1)
	require.NoError(t, err)
	assert.Equal(t, string(models.StatusDeleted), detail.Status)

	// Deleting again is not rejected; it re-persists DELETED.
	contact, err = service.SoftDelete(1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDeleted, contact.Status)
}

func TestSoftDeleteUnknownContact(t *testing.T) {
	service := newService(newFakeContactRepo(), newFakeCompanyRepo(), &stubPhoneValidator{})

	_, err := service.SoftDelete(42)
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestGetDetailUnknownContact(t *testing.T) {
	service := newService(newFakeContactRepo(), newFakeCompanyRepo(), &stubPhoneValidator{})

	_, err := service.GetDetail(42)
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestGetDetailFlattensCompanyName(t *testing.T) {
	contacts := newFakeContactRepo()
	contacts.contacts[1] = models.ContactPerson{
		Id:        1,
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@example.com",
		Company:   &models.Company{Id: 7, Name: "Acme"},
		Status:    models.StatusActive,
	}
	service := newService(contacts, newFakeCompanyRepo(), &stubPhoneValidator{})

	detail, err := service.GetDetail(1)
	require.NoError(t, err)
	assert.Equal(t, "Acme", detail.CompanyName)
	assert.Equal(t, "John", detail.FirstName)
}

func TestListActiveTranslatesPageToOffset(t *testing.T) {
	contacts := newFakeContactRepo()
	service := newService(contacts, newFakeCompanyRepo(), &stubPhoneValidator{})

	filter := repositories.ContactFilter{FirstName: "John"}
	_, err := service.ListActive(filter, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, contacts.lastOffset)
	assert.Equal(t, PageSize, contacts.lastLimit)
	assert.Equal(t, filter, contacts.lastFilter)

	_, err = service.ListActive(filter, 3)
	require.NoError(t, err)
	assert.Equal(t, 20, contacts.lastOffset)
}

func TestListActiveRejectsPageBelowOne(t *testing.T) {
	service := newService(newFakeContactRepo(), newFakeCompanyRepo(), &stubPhoneValidator{})

	for _, page := range []int{0, -1, -10} {
		_, err := service.ListActive(repositories.ContactFilter{}, page)
		assert.ErrorIs(t, err, ErrInvalidPage)
	}
}

func TestListActiveBuildsSimplifiedViews(t *testing.T) {
	contacts := newFakeContactRepo()
	contacts.active = []models.ContactPerson{
		{
			FirstName:   "John",
			LastName:    "Doe",
			Email:       "john.doe@example.com",
			PhoneNumber: "+36 30 123 4567",
			Company:     &models.Company{Id: 7, Name: "Acme"},
			Status:      models.StatusActive,
		},
	}
	service := newService(contacts, newFakeCompanyRepo(), &stubPhoneValidator{})

	views, err := service.ListActive(repositories.ContactFilter{}, 1)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "John Doe", views[0].Name)
	assert.Equal(t, "Acme", views[0].CompanyName)
	assert.Equal(t, "john.doe@example.com", views[0].Email)
	assert.Equal(t, "+36 30 123 4567", views[0].PhoneNumber)
}
