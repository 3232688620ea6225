package models

import (
	"fmt"
	"strings"
	"time"
)

const (
	VendorStatusPending    = "Pending"
	VendorStatusOnboarding = "Onboarding"
	VendorStatusActive     = "Active"
	VendorStatusInactive   = "Inactive"
)

// VendorStatuses lists the valid vendor lifecycle states in display order.
var VendorStatuses = []string{
	VendorStatusPending,
	VendorStatusOnboarding,
	VendorStatusActive,
	VendorStatusInactive,
}

// Vendor represents an external vendor or service provider
type Vendor struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(255)" json:"name" validate:"required,min=2,max=255"`
	ContactName     string    `gorm:"type:varchar(150)" json:"contact_name" validate:"max=150"`
	ContactEmail    string    `gorm:"type:varchar(200)" json:"contact_email" validate:"omitempty,email,max=200"`
	Phone           string    `gorm:"type:varchar(50)" json:"phone" validate:"max=50"`
	Location        string    `gorm:"type:varchar(150)" json:"location"`
	VendorType      string    `gorm:"type:varchar(100)" json:"vendor_type"`
	Status          string    `gorm:"type:varchar(50);default:'Pending'" json:"status" validate:"oneof=Pending Onboarding Active Inactive"`
	OnboardingStage string    `gorm:"type:varchar(100)" json:"onboarding_stage"`
	DateAdded       time.Time `json:"date_added"`
	PrimaryServices string    `gorm:"type:text" json:"primary_services"`
	Notes           string    `gorm:"type:text" json:"notes"`
	DriveFolderID   string    `gorm:"type:varchar(255)" json:"drive_folder_id"`
	DriveFolderLink string    `gorm:"type:varchar(255)" json:"drive_folder_link"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Vendor) TableName() string {
	return "vendors"
}

func (v *Vendor) Validate() error {
	return checkStruct(v)
}

// Code returns the display identifier shown in the UI and CSV exports.
func (v Vendor) Code() string {
	return fmt.Sprintf("VND%03d", v.ID)
}

// SearchText concatenates the visible fields for free-text matching.
func (v Vendor) SearchText() string {
	return strings.Join([]string{
		v.Code(), v.Name, v.ContactName, v.ContactEmail, v.Phone,
		v.Location, v.VendorType, v.Status, v.OnboardingStage,
		v.PrimaryServices, v.Notes,
	}, " ")
}
