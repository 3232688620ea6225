package models

import (
	"fmt"
	"strings"
	"time"
)

const (
	TicketStatusOpen       = "Open"
	TicketStatusInProgress = "In Progress"
	TicketStatusResolved   = "Resolved"

	TicketPriorityLow    = "Low"
	TicketPriorityMedium = "Medium"
	TicketPriorityHigh   = "High"
)

var (
	TicketStatuses   = []string{TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved}
	TicketPriorities = []string{TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh}

	// ticketPriorityRank orders priorities for sorting, High first.
	ticketPriorityRank = map[string]int{
		TicketPriorityHigh:   0,
		TicketPriorityMedium: 1,
		TicketPriorityLow:    2,
	}
)

// Ticket represents a vendor support request or issue.
type Ticket struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	VendorID    uint      `gorm:"index" json:"vendor_id"`
	TicketType  string    `gorm:"type:varchar(100)" json:"ticket_type" validate:"required"`
	Priority    string    `gorm:"type:varchar(20);default:'Medium'" json:"priority" validate:"oneof=Low Medium High"`
	Status      string    `gorm:"type:varchar(50);default:'Open'" json:"status" validate:"oneof=Open 'In Progress' Resolved"`
	CreatedDate time.Time `json:"created_date"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Ticket) TableName() string {
	return "tickets"
}

func (t *Ticket) Validate() error {
	return checkStruct(t)
}

func (t Ticket) Code() string {
	return fmt.Sprintf("TKT%03d", t.ID)
}

// PriorityRank maps the priority to its sort position, High before Medium
// before Low. Unknown priorities sort last.
func (t Ticket) PriorityRank() int {
	if r, ok := ticketPriorityRank[t.Priority]; ok {
		return r
	}
	return len(ticketPriorityRank)
}

// IsOpen reports whether the ticket still needs attention.
func (t Ticket) IsOpen() bool {
	return t.Status == TicketStatusOpen || t.Status == TicketStatusInProgress
}

func (t Ticket) SearchText() string {
	return strings.Join([]string{
		t.Code(), t.TicketType, t.Priority, t.Status, t.Description,
	}, " ")
}
