package repository

import (
	"gorm.io/gorm"

	"github.com/vendordesk/vendordesk/app/models"
)

// projectRepository implements the ProjectRepository interface
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

func (r *projectRepository) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) GetAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order("created_at DESC").Find(&projects).Error
	return projects, err
}

func (r *projectRepository) GetByVendorID(vendorID uint) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("vendor_id = ?", vendorID).Order("created_at DESC").Find(&projects).Error
	return projects, err
}

func (r *projectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

func (r *projectRepository) Delete(id uint) error {
	return r.db.Delete(&models.Project{}, id).Error
}

func (r *projectRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Count(&count).Error
	return count, err
}

func (r *projectRepository) CountByVendorID(vendorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Where("vendor_id = ?", vendorID).Count(&count).Error
	return count, err
}
