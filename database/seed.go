package database

import (
	"fmt"
	"time"

	"contacts-backend/models"

	"gorm.io/gorm"
)

// Seed populates an empty database with 20 demo companies and 20 ACTIVE
// contacts. It is a first-launch convenience and a no-op once any
// company exists.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Company{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i := 1; i <= 20; i++ {
			company := models.Company{
				Id:   uint(i),
				Name: fmt.Sprintf("company%d", i),
			}
			if err := tx.Create(&company).Error; err != nil {
				return err
			}

			contact := models.ContactPerson{
				FirstName:   fmt.Sprintf("%dFirst%d", 100-i, i),
				LastName:    fmt.Sprintf("Last%d", i),
				Email:       fmt.Sprintf("%dasd@gmail.com", i),
				PhoneNumber: fmt.Sprintf("asd%d", i),
				CompanyId:   &company.Id,
				Status:      models.StatusActive,
				CreatedAt:   time.Now(),
			}
			if err := tx.Create(&contact).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
