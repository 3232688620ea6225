package dataset

import (
	"time"

	"github.com/vendordesk/vendordesk/app/models"
)

// Partial updates are fixed, enumerated field sets: only non-nil fields are
// applied. Callers can never smuggle arbitrary column names into a write.

// VendorUpdate enumerates the updatable vendor fields.
type VendorUpdate struct {
	Name            *string
	ContactName     *string
	ContactEmail    *string
	Phone           *string
	Location        *string
	VendorType      *string
	Status          *string
	OnboardingStage *string
	DateAdded       *time.Time
	PrimaryServices *string
	Notes           *string
	DriveFolderID   *string
	DriveFolderLink *string
}

func (u VendorUpdate) Apply(v *models.Vendor) {
	setString(&v.Name, u.Name)
	setString(&v.ContactName, u.ContactName)
	setString(&v.ContactEmail, u.ContactEmail)
	setString(&v.Phone, u.Phone)
	setString(&v.Location, u.Location)
	setString(&v.VendorType, u.VendorType)
	setString(&v.Status, u.Status)
	setString(&v.OnboardingStage, u.OnboardingStage)
	setTime(&v.DateAdded, u.DateAdded)
	setString(&v.PrimaryServices, u.PrimaryServices)
	setString(&v.Notes, u.Notes)
	setString(&v.DriveFolderID, u.DriveFolderID)
	setString(&v.DriveFolderLink, u.DriveFolderLink)
}

// ContractUpdate enumerates the updatable contract fields.
type ContractUpdate struct {
	VendorID          *uint
	ContractName      *string
	ContractType      *string
	StartDate         *time.Time
	EndDate           *time.Time
	ContractValue     *float64
	PONumber          *string
	Status            *string
	RenewalNoticeDays *int
	DocumentLink      *string
	Notes             *string
}

func (u ContractUpdate) Apply(c *models.Contract) {
	if u.VendorID != nil {
		c.VendorID = *u.VendorID
	}
	setString(&c.ContractName, u.ContractName)
	setString(&c.ContractType, u.ContractType)
	setTime(&c.StartDate, u.StartDate)
	setTime(&c.EndDate, u.EndDate)
	if u.ContractValue != nil {
		c.ContractValue = *u.ContractValue
	}
	setString(&c.PONumber, u.PONumber)
	setString(&c.Status, u.Status)
	if u.RenewalNoticeDays != nil {
		c.RenewalNoticeDays = *u.RenewalNoticeDays
	}
	setString(&c.DocumentLink, u.DocumentLink)
	setString(&c.Notes, u.Notes)
}

// ProjectUpdate enumerates the updatable project fields.
type ProjectUpdate struct {
	Name            *string
	VendorID        *uint
	Status          *string
	StartDate       *time.Time
	TargetEndDate   *time.Time
	CompletionDate  *time.Time
	CompletionPct   *int
	Budget          *float64
	ProjectLead     *string
	Deliverables    *string
	Notes           *string
	DriveFolderID   *string
	DriveFolderLink *string
}

func (u ProjectUpdate) Apply(p *models.Project) {
	setString(&p.Name, u.Name)
	if u.VendorID != nil {
		p.VendorID = *u.VendorID
	}
	setString(&p.Status, u.Status)
	setTime(&p.StartDate, u.StartDate)
	setTime(&p.TargetEndDate, u.TargetEndDate)
	if u.CompletionDate != nil {
		d := *u.CompletionDate
		p.CompletionDate = &d
	}
	if u.CompletionPct != nil {
		p.CompletionPct = *u.CompletionPct
	}
	if u.Budget != nil {
		p.Budget = *u.Budget
	}
	setString(&p.ProjectLead, u.ProjectLead)
	setString(&p.Deliverables, u.Deliverables)
	setString(&p.Notes, u.Notes)
	setString(&p.DriveFolderID, u.DriveFolderID)
	setString(&p.DriveFolderLink, u.DriveFolderLink)
}

// TicketUpdate enumerates the updatable ticket fields.
type TicketUpdate struct {
	VendorID    *uint
	TicketType  *string
	Priority    *string
	Status      *string
	Description *string
}

func (u TicketUpdate) Apply(t *models.Ticket) {
	if u.VendorID != nil {
		t.VendorID = *u.VendorID
	}
	setString(&t.TicketType, u.TicketType)
	setString(&t.Priority, u.Priority)
	setString(&t.Status, u.Status)
	setString(&t.Description, u.Description)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setTime(dst *time.Time, src *time.Time) {
	if src != nil {
		*dst = *src
	}
}
