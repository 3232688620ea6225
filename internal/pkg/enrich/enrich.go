// Package enrich attaches denormalized vendor display fields to fact rows.
// The join is left-outer: a fact row whose vendor reference cannot be
// resolved is kept with an empty VendorName, never dropped. Enriching again
// against an unchanged vendor table yields the same result.
package enrich

import (
	"time"

	"github.com/vendordesk/vendordesk/app/models"
	"github.com/vendordesk/vendordesk/internal/pkg/report"
)

// ContractView is a contract row with its vendor name resolved.
type ContractView struct {
	models.Contract
	VendorName string
}

// RiskAt names the expiry tier of the row at ref, for row styling.
func (v ContractView) RiskAt(ref time.Time) string {
	return report.BucketFor(v.Contract, ref)
}

// ProjectView is a project row with its vendor name resolved.
type ProjectView struct {
	models.Project
	VendorName string
}

// TicketView is a ticket row with its vendor name resolved.
type TicketView struct {
	models.Ticket
	VendorName string
}

func vendorNames(vendors []models.Vendor) map[uint]string {
	names := make(map[uint]string, len(vendors))
	for _, v := range vendors {
		names[v.ID] = v.Name
	}
	return names
}

func Contracts(facts []models.Contract, vendors []models.Vendor) []ContractView {
	names := vendorNames(vendors)
	out := make([]ContractView, len(facts))
	for i, c := range facts {
		out[i] = ContractView{Contract: c, VendorName: names[c.VendorID]}
	}
	return out
}

func Projects(facts []models.Project, vendors []models.Vendor) []ProjectView {
	names := vendorNames(vendors)
	out := make([]ProjectView, len(facts))
	for i, p := range facts {
		out[i] = ProjectView{Project: p, VendorName: names[p.VendorID]}
	}
	return out
}

func Tickets(facts []models.Ticket, vendors []models.Vendor) []TicketView {
	names := vendorNames(vendors)
	out := make([]TicketView, len(facts))
	for i, t := range facts {
		out[i] = TicketView{Ticket: t, VendorName: names[t.VendorID]}
	}
	return out
}
