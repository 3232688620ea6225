package repository

import (
	"github.com/vendordesk/vendordesk/app/models"
)

// VendorRepository defines the interface for vendor-related database operations
type VendorRepository interface {
	Create(vendor *models.Vendor) error
	GetByID(id uint) (*models.Vendor, error)
	GetAll() ([]models.Vendor, error)
	Update(vendor *models.Vendor) error
	Delete(id uint) error
	Count() (int64, error)
	CountByStatus(status string) (int64, error)
}

// ContractRepository defines the interface for contract-related database operations
type ContractRepository interface {
	Create(contract *models.Contract) error
	GetByID(id uint) (*models.Contract, error)
	GetAll() ([]models.Contract, error)
	GetByVendorID(vendorID uint) ([]models.Contract, error)
	Update(contract *models.Contract) error
	Delete(id uint) error
	Count() (int64, error)
	CountByVendorID(vendorID uint) (int64, error)
	SumValueByStatus(status string) (float64, error)
}

// ProjectRepository defines the interface for project-related database operations
type ProjectRepository interface {
	Create(project *models.Project) error
	GetByID(id uint) (*models.Project, error)
	GetAll() ([]models.Project, error)
	GetByVendorID(vendorID uint) ([]models.Project, error)
	Update(project *models.Project) error
	Delete(id uint) error
	Count() (int64, error)
	CountByVendorID(vendorID uint) (int64, error)
}
