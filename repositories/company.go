package repositories

import (
	"errors"

	"contacts-backend/models"

	"gorm.io/gorm"
)

// GormCompanyRepository implements CompanyRepository on a gorm.DB.
type GormCompanyRepository struct {
	db *gorm.DB
}

func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

func (r *GormCompanyRepository) FindByName(name string) (*models.Company, error) {
	var company models.Company
	if err := r.db.First(&company, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *GormCompanyRepository) Save(company *models.Company) error {
	return r.db.Save(company).Error
}
