package repository

import (
	"gorm.io/gorm"

	"github.com/vendordesk/vendordesk/app/models"
)

// contractRepository implements the ContractRepository interface
type contractRepository struct {
	db *gorm.DB
}

// NewContractRepository creates a new contract repository instance
func NewContractRepository(db *gorm.DB) ContractRepository {
	return &contractRepository{db: db}
}

func (r *contractRepository) Create(contract *models.Contract) error {
	return r.db.Create(contract).Error
}

func (r *contractRepository) GetByID(id uint) (*models.Contract, error) {
	var contract models.Contract
	if err := r.db.First(&contract, id).Error; err != nil {
		return nil, err
	}
	return &contract, nil
}

func (r *contractRepository) GetAll() ([]models.Contract, error) {
	var contracts []models.Contract
	err := r.db.Order("created_at DESC").Find(&contracts).Error
	return contracts, err
}

func (r *contractRepository) GetByVendorID(vendorID uint) ([]models.Contract, error) {
	var contracts []models.Contract
	err := r.db.Where("vendor_id = ?", vendorID).Order("created_at DESC").Find(&contracts).Error
	return contracts, err
}

func (r *contractRepository) Update(contract *models.Contract) error {
	return r.db.Save(contract).Error
}

func (r *contractRepository) Delete(id uint) error {
	return r.db.Delete(&models.Contract{}, id).Error
}

func (r *contractRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Contract{}).Count(&count).Error
	return count, err
}

func (r *contractRepository) CountByVendorID(vendorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Contract{}).Where("vendor_id = ?", vendorID).Count(&count).Error
	return count, err
}

// SumValueByStatus totals contract value for the given status; a status with
// no rows yields zero.
func (r *contractRepository) SumValueByStatus(status string) (float64, error) {
	var total float64
	err := r.db.Model(&models.Contract{}).
		Where("status = ?", status).
		Select("COALESCE(SUM(contract_value), 0)").
		Scan(&total).Error
	return total, err
}
