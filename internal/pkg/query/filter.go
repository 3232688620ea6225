// Package query narrows entity tables by composed criteria. All criteria
// within one struct AND together; empty membership slices pass every row.
// Filtering preserves the original row order and never mutates its input.
package query

import (
	"strings"
	"time"

	"github.com/vendordesk/vendordesk/app/models"
)

// VendorCriteria filters the vendor directory.
type VendorCriteria struct {
	StatusIn  []string
	TypeIn    []string
	FreeText  string
	AddedFrom *time.Time // inclusive
	AddedTo   *time.Time // inclusive
}

func (c VendorCriteria) Matches(v models.Vendor) bool {
	if !memberOf(v.Status, c.StatusIn) {
		return false
	}
	if !memberOf(v.VendorType, c.TypeIn) {
		return false
	}
	if !inRange(v.DateAdded, c.AddedFrom, c.AddedTo) {
		return false
	}
	return matchesFreeText(v.SearchText(), c.FreeText)
}

func Vendors(rows []models.Vendor, c VendorCriteria) []models.Vendor {
	return apply(rows, c.Matches)
}

// ContractCriteria filters the contract tracker. MaxDaysToExpiry keeps
// contracts whose days-to-expiry relative to Ref is at most the threshold.
type ContractCriteria struct {
	StatusIn        []string
	TypeIn          []string
	FreeText        string
	VendorID        *uint
	MaxDaysToExpiry *int
	Ref             time.Time
}

func (c ContractCriteria) Matches(row models.Contract) bool {
	if c.VendorID != nil && row.VendorID != *c.VendorID {
		return false
	}
	if !memberOf(row.Status, c.StatusIn) {
		return false
	}
	if !memberOf(row.ContractType, c.TypeIn) {
		return false
	}
	if c.MaxDaysToExpiry != nil && row.DaysToExpiry(c.Ref) > *c.MaxDaysToExpiry {
		return false
	}
	return matchesFreeText(row.SearchText(), c.FreeText)
}

func Contracts(rows []models.Contract, c ContractCriteria) []models.Contract {
	return apply(rows, c.Matches)
}

// ProjectCriteria filters the project board.
type ProjectCriteria struct {
	StatusIn []string
	LeadIn   []string
	FreeText string
}

func (c ProjectCriteria) Matches(p models.Project) bool {
	if !memberOf(p.Status, c.StatusIn) {
		return false
	}
	if !memberOf(p.ProjectLead, c.LeadIn) {
		return false
	}
	return matchesFreeText(p.SearchText(), c.FreeText)
}

func Projects(rows []models.Project, c ProjectCriteria) []models.Project {
	return apply(rows, c.Matches)
}

// TicketCriteria filters the ticket queue. CreatedSince keeps tickets
// created on or after the given instant.
type TicketCriteria struct {
	StatusIn     []string
	PriorityIn   []string
	TypeIn       []string
	FreeText     string
	CreatedSince *time.Time
}

func (c TicketCriteria) Matches(t models.Ticket) bool {
	if !memberOf(t.Status, c.StatusIn) {
		return false
	}
	if !memberOf(t.Priority, c.PriorityIn) {
		return false
	}
	if !memberOf(t.TicketType, c.TypeIn) {
		return false
	}
	if c.CreatedSince != nil && t.CreatedDate.Before(*c.CreatedSince) {
		return false
	}
	return matchesFreeText(t.SearchText(), c.FreeText)
}

func Tickets(rows []models.Ticket, c TicketCriteria) []models.Ticket {
	return apply(rows, c.Matches)
}

func apply[T any](rows []T, match func(T) bool) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if match(r) {
			out = append(out, r)
		}
	}
	return out
}

func memberOf(value string, set []string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

func matchesFreeText(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func inRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}
