package report

import (
	"fmt"
	"time"

	"github.com/vendordesk/vendordesk/app/models"
)

// TimelineEntry is one bar of the renewal timeline: the contract period,
// the renewal-notice marker, and a display label. Only Active contracts
// with a resolvable vendor appear; unresolvable references are skipped
// rather than failing the whole computation.
type TimelineEntry struct {
	ContractID    uint      `json:"contract_id"`
	ContractCode  string    `json:"contract_code"`
	VendorName    string    `json:"vendor_name"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	RenewalMarker time.Time `json:"renewal_marker"`
	Label         string    `json:"label"`
	Value         float64   `json:"value"`
}

func Timeline(contracts []models.Contract, vendors []models.Vendor) []TimelineEntry {
	names := make(map[uint]string, len(vendors))
	for _, v := range vendors {
		names[v.ID] = v.Name
	}

	entries := make([]TimelineEntry, 0, len(contracts))
	for _, c := range contracts {
		if c.Status != models.ContractStatusActive {
			continue
		}
		name, ok := names[c.VendorID]
		if !ok {
			continue
		}
		entries = append(entries, TimelineEntry{
			ContractID:    c.ID,
			ContractCode:  c.Code(),
			VendorName:    name,
			Start:         c.StartDate,
			End:           c.EndDate,
			RenewalMarker: c.RenewalNoticeDate(),
			Label:         fmt.Sprintf("%s / %s ($%.0f)", c.Code(), name, c.ContractValue),
			Value:         c.ContractValue,
		})
	}
	return entries
}
