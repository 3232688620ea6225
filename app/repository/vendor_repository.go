package repository

import (
	"gorm.io/gorm"

	"github.com/vendordesk/vendordesk/app/models"
)

// vendorRepository implements the VendorRepository interface
type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository creates a new vendor repository instance
func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) Create(vendor *models.Vendor) error {
	return r.db.Create(vendor).Error
}

func (r *vendorRepository) GetByID(id uint) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.First(&vendor, id).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

// GetAll retrieves all vendors, newest first
func (r *vendorRepository) GetAll() ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := r.db.Order("created_at DESC").Find(&vendors).Error
	return vendors, err
}

func (r *vendorRepository) Update(vendor *models.Vendor) error {
	return r.db.Save(vendor).Error
}

func (r *vendorRepository) Delete(id uint) error {
	return r.db.Delete(&models.Vendor{}, id).Error
}

func (r *vendorRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Vendor{}).Count(&count).Error
	return count, err
}

func (r *vendorRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Vendor{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
