package models

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	ContractStatusDraft          = "Draft"
	ContractStatusInReview       = "In Review"
	ContractStatusActive         = "Active"
	ContractStatusExpired        = "Expired"
	ContractStatusPendingRenewal = "Pending Renewal"
)

// ContractStatuses lists the well-known contract states. The status column
// is an open vocabulary; these are the values the UI offers.
var ContractStatuses = []string{
	ContractStatusDraft,
	ContractStatusInReview,
	ContractStatusActive,
	ContractStatusExpired,
	ContractStatusPendingRenewal,
}

// Contract represents an agreement with a vendor. VendorID is zero when the
// contract is not (or no longer) linked to a known vendor; the reference is
// not enforced at insert time.
type Contract struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	VendorID          uint      `gorm:"index" json:"vendor_id"`
	ContractName      string    `gorm:"type:varchar(255)" json:"contract_name" validate:"required,min=2,max=255"`
	ContractType      string    `gorm:"type:varchar(100)" json:"contract_type"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	ContractValue     float64   `json:"contract_value" validate:"gte=0"`
	PONumber          string    `gorm:"type:varchar(100)" json:"po_number"`
	Status            string    `gorm:"type:varchar(50);default:'Draft'" json:"status"`
	RenewalNoticeDays int       `json:"renewal_notice_days" validate:"gte=0"`
	DocumentLink      string    `gorm:"type:varchar(255)" json:"document_link"`
	Notes             string    `gorm:"type:text" json:"notes"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (Contract) TableName() string {
	return "contracts"
}

func (c *Contract) Validate() error {
	return checkStruct(c)
}

func (c Contract) Code() string {
	return fmt.Sprintf("CNT%03d", c.ID)
}

// DaysToExpiry returns the signed number of whole days between ref and the
// contract end date, flooring toward negative infinity so a contract whose
// end date passed earlier in the day already counts as overdue. Negative
// means the contract is already past its end.
func (c Contract) DaysToExpiry(ref time.Time) int {
	return int(math.Floor(c.EndDate.Sub(ref).Hours() / 24))
}

// RenewalNoticeDate is the date by which a renewal decision is due.
func (c Contract) RenewalNoticeDate() time.Time {
	return c.EndDate.AddDate(0, 0, -c.RenewalNoticeDays)
}

func (c Contract) SearchText() string {
	return strings.Join([]string{
		c.Code(), c.ContractName, c.ContractType, c.PONumber, c.Status,
		c.StartDate.Format("2006-01-02"), c.EndDate.Format("2006-01-02"),
		c.Notes,
	}, " ")
}
