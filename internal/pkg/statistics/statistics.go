// Package statistics computes the dashboard headline numbers and chart
// datasets from an entity store, with a short redis cache in front so the
// dashboard does not rescan the tables on every request.
package statistics

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/vendordesk/vendordesk/app/models"
	"github.com/vendordesk/vendordesk/internal/pkg/cache"
	"github.com/vendordesk/vendordesk/internal/pkg/dataset"
	"github.com/vendordesk/vendordesk/internal/pkg/report"
)

const (
	CacheKeySummary = "statistics:summary:%s" // formatted with the dataset handle
	CacheExpiration = 5 * time.Minute
)

// Summary holds the headline numbers shown on the dashboard.
type Summary struct {
	TotalVendors        int     `json:"total_vendors"`
	ActiveVendors       int     `json:"active_vendors"`
	TotalContracts      int     `json:"total_contracts"`
	ActiveContracts     int     `json:"active_contracts"`
	ActiveContractValue float64 `json:"active_contract_value"`
	ExpiringIn30Days    int     `json:"expiring_in_30_days"`
	ExpiringIn60Days    int     `json:"expiring_in_60_days"`
	OverdueContracts    int     `json:"overdue_contracts"`
	TotalProjects       int     `json:"total_projects"`
	AvgProjectPct       float64 `json:"avg_project_pct"`
	OpenTickets         int     `json:"open_tickets"`
	HighPriorityOpen    int     `json:"high_priority_open"`
}

// ChartData holds the grouped datasets rendered as dashboard charts.
type ChartData struct {
	VendorsByStatus     map[string]int     `json:"vendors_by_status"`
	VendorsByType       map[string]int     `json:"vendors_by_type"`
	ContractExpiry      map[string]int     `json:"contract_expiry"`
	ContractValueByType map[string]float64 `json:"contract_value_by_type"`
	ProjectsByStatus    map[string]int     `json:"projects_by_status"`
	BudgetByStatus      map[string]float64 `json:"budget_by_status"`
	TicketsByPriority   map[string]int     `json:"tickets_by_priority"`
}

// Compute builds the summary from the current store contents. The reference
// time fixes the expiry bucketing so callers can test against known dates.
func Compute(store dataset.EntityStore, ref time.Time) Summary {
	var s Summary

	vendors := store.Vendors()
	contracts := store.Contracts()
	projects := store.Projects()
	tickets := store.Tickets()

	s.TotalVendors = len(vendors)
	for _, v := range vendors {
		if v.Status == models.VendorStatusActive {
			s.ActiveVendors++
		}
	}

	s.TotalContracts = len(contracts)
	buckets := report.BucketByExpiry(contracts, ref)
	s.OverdueContracts = len(buckets.Overdue)
	s.ExpiringIn30Days = len(buckets.Due30)
	s.ExpiringIn60Days = len(buckets.Due60)
	for _, c := range contracts {
		if c.Status == models.ContractStatusActive {
			s.ActiveContracts++
			s.ActiveContractValue += c.ContractValue
		}
	}

	s.TotalProjects = len(projects)
	if avg, err := report.Average(projects, func(p models.Project) float64 {
		return float64(p.CompletionPct)
	}); err == nil {
		s.AvgProjectPct = avg
	}

	for _, t := range tickets {
		if t.IsOpen() {
			s.OpenTickets++
			if t.Priority == models.TicketPriorityHigh {
				s.HighPriorityOpen++
			}
		}
	}

	return s
}

// Charts builds the grouped datasets behind the dashboard charts.
func Charts(store dataset.EntityStore, ref time.Time) ChartData {
	vendors := store.Vendors()
	contracts := store.Contracts()
	projects := store.Projects()

	return ChartData{
		VendorsByStatus: report.GroupCount(vendors, func(v models.Vendor) string { return v.Status }),
		VendorsByType:   report.GroupCount(vendors, func(v models.Vendor) string { return v.VendorType }),
		ContractExpiry:  report.BucketByExpiry(contracts, ref).Counts(),
		ContractValueByType: report.GroupSum(contracts,
			func(c models.Contract) string { return c.ContractType },
			func(c models.Contract) float64 { return c.ContractValue },
		),
		ProjectsByStatus: report.GroupCount(projects, func(p models.Project) string { return p.Status }),
		BudgetByStatus: report.GroupSum(projects,
			func(p models.Project) string { return p.Status },
			func(p models.Project) float64 { return p.Budget },
		),
		TicketsByPriority: report.GroupCount(store.Tickets(), func(t models.Ticket) string { return t.Priority }),
	}
}

// CachedSummary returns the summary for the given dataset handle, serving
// from redis when a fresh copy exists. Cache failures fall through to a
// direct computation.
func CachedSummary(handle string, store dataset.EntityStore) Summary {
	key := cacheKey(handle)

	if raw, err := cache.Get(key); err == nil && raw != "" {
		var s Summary
		if err := json.Unmarshal([]byte(raw), &s); err == nil {
			return s
		}
		log.Warnf("[Statistics] discarding unreadable cache entry %s", key)
	}

	s := Compute(store, time.Now())

	if raw, err := json.Marshal(s); err == nil {
		if err := cache.Set(key, string(raw), CacheExpiration); err != nil {
			log.Warnf("[Statistics] failed to cache summary: %v", err)
		}
	}
	return s
}

// InvalidateSummary drops the cached summary after a mutation.
func InvalidateSummary(handle string) {
	if err := cache.Delete(cacheKey(handle)); err != nil {
		log.Warnf("[Statistics] failed to invalidate summary cache: %v", err)
	}
}

func cacheKey(handle string) string {
	if handle == "" {
		handle = "global"
	}
	return fmt.Sprintf(CacheKeySummary, handle)
}
