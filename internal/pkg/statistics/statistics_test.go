package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendordesk/vendordesk/app/models"
	"github.com/vendordesk/vendordesk/internal/pkg/dataset"
)

func fixtureStore(t *testing.T, ref time.Time) *dataset.Store {
	t.Helper()
	store := dataset.NewStore()

	_, err := store.InsertVendor(models.Vendor{Name: "CloudServe", VendorType: "Cloud", Status: models.VendorStatusActive})
	require.NoError(t, err)
	_, err = store.InsertVendor(models.Vendor{Name: "DataSync", VendorType: "Data", Status: models.VendorStatusPending})
	require.NoError(t, err)

	_, err = store.InsertContract(models.Contract{
		ContractName: "Hosting", ContractType: "Service",
		Status: models.ContractStatusActive, ContractValue: 100000,
		EndDate: ref.AddDate(0, 0, 20),
	})
	require.NoError(t, err)
	_, err = store.InsertContract(models.Contract{
		ContractName: "Support", ContractType: "Service",
		Status: models.ContractStatusActive, ContractValue: 50000,
		EndDate: ref.AddDate(0, 0, 45),
	})
	require.NoError(t, err)
	_, err = store.InsertContract(models.Contract{
		ContractName: "Legacy", ContractType: "License",
		Status: models.ContractStatusExpired, ContractValue: 9000,
		EndDate: ref.AddDate(0, 0, -10),
	})
	require.NoError(t, err)

	_, err = store.InsertProject(models.Project{Name: "Migration", Status: models.ProjectStatusInProgress, CompletionPct: 80, Budget: 40000})
	require.NoError(t, err)
	_, err = store.InsertProject(models.Project{Name: "Rollout", Status: models.ProjectStatusPlanning, CompletionPct: 20, Budget: 15000})
	require.NoError(t, err)

	_, err = store.InsertTicket(models.Ticket{TicketType: "Incident", Priority: models.TicketPriorityHigh, Status: models.TicketStatusOpen})
	require.NoError(t, err)
	_, err = store.InsertTicket(models.Ticket{TicketType: "Request", Priority: models.TicketPriorityLow, Status: models.TicketStatusResolved})
	require.NoError(t, err)

	return store
}

func TestComputeSummary(t *testing.T) {
	ref := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	s := Compute(fixtureStore(t, ref), ref)

	assert.Equal(t, 2, s.TotalVendors)
	assert.Equal(t, 1, s.ActiveVendors)
	assert.Equal(t, 3, s.TotalContracts)
	assert.Equal(t, 2, s.ActiveContracts)
	assert.Equal(t, 150000.0, s.ActiveContractValue)
	assert.Equal(t, 1, s.ExpiringIn30Days)
	assert.Equal(t, 1, s.ExpiringIn60Days)
	assert.Equal(t, 1, s.OverdueContracts)
	assert.Equal(t, 2, s.TotalProjects)
	assert.Equal(t, 50.0, s.AvgProjectPct)
	assert.Equal(t, 1, s.OpenTickets)
	assert.Equal(t, 1, s.HighPriorityOpen)
}

func TestComputeEmptyStore(t *testing.T) {
	s := Compute(dataset.NewStore(), time.Now())
	assert.Zero(t, s.TotalVendors)
	assert.Zero(t, s.AvgProjectPct)
	assert.Zero(t, s.ActiveContractValue)
}

func TestCharts(t *testing.T) {
	ref := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	d := Charts(fixtureStore(t, ref), ref)

	assert.Equal(t, map[string]int{
		models.VendorStatusActive:  1,
		models.VendorStatusPending: 1,
	}, d.VendorsByStatus)
	assert.Equal(t, 150000.0, d.ContractValueByType["Service"])
	assert.Equal(t, 9000.0, d.ContractValueByType["License"])
	assert.Equal(t, map[string]float64{
		models.ProjectStatusInProgress: 40000,
		models.ProjectStatusPlanning:   15000,
	}, d.BudgetByStatus)
	assert.Equal(t, 1, d.ContractExpiry["overdue"])
	assert.Equal(t, 1, d.ContractExpiry["due_30"])
	assert.Equal(t, 2, d.TicketsByPriority[models.TicketPriorityHigh]+d.TicketsByPriority[models.TicketPriorityLow])
}
