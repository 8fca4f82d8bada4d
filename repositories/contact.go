package repositories

import (
	"errors"

	"contacts-backend/models"

	"gorm.io/gorm"
)

// GormContactRepository implements ContactRepository on a gorm.DB.
type GormContactRepository struct {
	db *gorm.DB
}

func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

func (r *GormContactRepository) FindByID(id uint) (*models.ContactPerson, error) {
	var contact models.ContactPerson
	if err := r.db.Preload("Company").First(&contact, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &contact, nil
}

func (r *GormContactRepository) Save(contact *models.ContactPerson) error {
	return r.db.Save(contact).Error
}

func (r *GormContactRepository) FindActive(filter ContactFilter, offset, limit int) ([]models.ContactPerson, error) {
	query := r.db.Model(&models.ContactPerson{}).
		Preload("Company").
		Where("status = ?", models.StatusActive)

	if filter.FirstName != "" {
		query = query.Where("first_name = ?", filter.FirstName)
	}
	if filter.LastName != "" {
		query = query.Where("last_name = ?", filter.LastName)
	}
	if filter.Email != "" {
		query = query.Where("email = ?", filter.Email)
	}
	if filter.PhoneNumber != "" {
		query = query.Where("phone_number = ?", filter.PhoneNumber)
	}
	if filter.Comment != "" {
		query = query.Where("comment = ?", filter.Comment)
	}

	var contacts []models.ContactPerson
	err := query.
		Order("first_name ASC").
		Order("last_name ASC").
		Offset(offset).
		Limit(limit).
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}
