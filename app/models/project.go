package models

import (
	"fmt"
	"strings"
	"time"
)

// Two status vocabularies exist for projects, one per storage profile.
// The in-memory profile tracks delivery phase, the relational profile
// tracks traffic-light health (matching its schema default of Green).
// They are alternatives, never mixed within one deployment.
const (
	ProjectStatusPlanning   = "Planning"
	ProjectStatusInProgress = "In Progress"
	ProjectStatusCompleted  = "Completed"

	ProjectStatusGreen  = "Green"
	ProjectStatusYellow = "Yellow"
	ProjectStatusRed    = "Red"
)

var (
	ProjectPhaseStatuses = []string{
		ProjectStatusPlanning,
		ProjectStatusInProgress,
		ProjectStatusCompleted,
	}
	ProjectHealthStatuses = []string{
		ProjectStatusGreen,
		ProjectStatusYellow,
		ProjectStatusRed,
	}
)

// Project represents a piece of work delivered by a vendor.
type Project struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Name            string     `gorm:"type:varchar(255)" json:"name" validate:"required,min=2,max=255"`
	VendorID        uint       `gorm:"index" json:"vendor_id"`
	Status          string     `gorm:"type:varchar(50);default:'Green'" json:"status"`
	StartDate       time.Time  `json:"start_date"`
	TargetEndDate   time.Time  `json:"target_end_date"`
	CompletionDate  *time.Time `gorm:"default:null" json:"completion_date"`
	CompletionPct   int        `json:"completion_pct" validate:"gte=0,lte=100"`
	Budget          float64    `json:"budget" validate:"gte=0"`
	ProjectLead     string     `gorm:"type:varchar(150)" json:"project_lead"`
	Deliverables    string     `gorm:"type:text" json:"deliverables"`
	Notes           string     `gorm:"type:text" json:"notes"`
	DriveFolderID   string     `gorm:"type:varchar(255)" json:"drive_folder_id"`
	DriveFolderLink string     `gorm:"type:varchar(255)" json:"drive_folder_link"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}

func (p *Project) Validate() error {
	return checkStruct(p)
}

func (p Project) Code() string {
	return fmt.Sprintf("PRJ%03d", p.ID)
}

func (p Project) SearchText() string {
	return strings.Join([]string{
		p.Code(), p.Name, p.Status, p.ProjectLead, p.Deliverables, p.Notes,
	}, " ")
}
