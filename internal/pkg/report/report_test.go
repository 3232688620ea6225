package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendordesk/vendordesk/app/models"
)

func TestGroupCount(t *testing.T) {
	rows := []models.Vendor{
		{Status: models.VendorStatusActive},
		{Status: models.VendorStatusActive},
		{Status: models.VendorStatusOnboarding},
	}

	counts := GroupCount(rows, func(v models.Vendor) string { return v.Status })

	assert.Equal(t, 2, counts[models.VendorStatusActive])
	assert.Equal(t, 1, counts[models.VendorStatusOnboarding])
	// zero-count values are absent, and totals cover every row
	_, present := counts[models.VendorStatusInactive]
	assert.False(t, present)

	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, len(rows), total)
}

func TestSumAndAverage(t *testing.T) {
	rows := []models.Project{
		{Budget: 150000, CompletionPct: 65},
		{Budget: 50000, CompletionPct: 35},
	}

	assert.Equal(t, 200000.0, Sum(rows, func(p models.Project) float64 { return p.Budget }))

	avg, err := Average(rows, func(p models.Project) float64 { return float64(p.CompletionPct) })
	require.NoError(t, err)
	assert.Equal(t, 50.0, avg)
}

func TestAverageOfEmptyInputSignalsErrNoRows(t *testing.T) {
	_, err := Average(nil, func(p models.Project) float64 { return p.Budget })
	assert.ErrorIs(t, err, ErrNoRows)

	assert.Equal(t, 0.0, Sum([]models.Project{}, func(p models.Project) float64 { return p.Budget }))
}

func TestBucketByExpiryEdges(t *testing.T) {
	ref := time.Date(2024, 11, 10, 0, 0, 0, 0, time.UTC)
	at := func(days int) models.Contract {
		return models.Contract{EndDate: ref.AddDate(0, 0, days)}
	}

	assert.Equal(t, BucketDue30, BucketFor(at(15), ref))
	assert.Equal(t, BucketOverdue, BucketFor(at(-5), ref))
	assert.Equal(t, BucketDue60, BucketFor(at(45), ref))
	assert.Equal(t, BucketNormal, BucketFor(at(90), ref))
	assert.Equal(t, BucketDue30, BucketFor(at(0), ref))
	assert.Equal(t, BucketDue30, BucketFor(at(30), ref))
	assert.Equal(t, BucketDue60, BucketFor(at(31), ref))
	assert.Equal(t, BucketDue60, BucketFor(at(60), ref))
	assert.Equal(t, BucketNormal, BucketFor(at(61), ref))

	b := BucketByExpiry([]models.Contract{at(15), at(-5), at(45), at(90)}, ref)
	counts := b.Counts()
	assert.Equal(t, 1, counts[BucketOverdue])
	assert.Equal(t, 1, counts[BucketDue30])
	assert.Equal(t, 1, counts[BucketDue60])
	assert.Equal(t, 1, counts[BucketNormal])
}

func TestBucketForMidDayReference(t *testing.T) {
	// a contract that ended at midnight is already overdue by the afternoon
	end := time.Date(2024, 11, 10, 0, 0, 0, 0, time.UTC)
	ref := time.Date(2024, 11, 10, 14, 0, 0, 0, time.UTC)

	assert.Equal(t, BucketOverdue, BucketFor(models.Contract{EndDate: end}, ref))
	assert.Equal(t, BucketDue30, BucketFor(models.Contract{EndDate: end.AddDate(0, 0, 1)}, ref))
}

func TestActiveContractBucketScenario(t *testing.T) {
	ref := time.Date(2024, 11, 10, 0, 0, 0, 0, time.UTC)
	c1 := models.Contract{ID: 1, VendorID: 1, Status: models.ContractStatusActive, EndDate: ref.AddDate(0, 0, 10)}

	b := BucketByExpiry([]models.Contract{c1}, ref)
	require.Len(t, b.Due30, 1)
	assert.Equal(t, uint(1), b.Due30[0].ID)
}

func TestTimelineSkipsUnresolvableVendors(t *testing.T) {
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC)

	vendors := []models.Vendor{{ID: 1, Name: "DataAnnotation Pro"}}
	contracts := []models.Contract{
		{ID: 1, VendorID: 1, Status: models.ContractStatusActive, StartDate: start, EndDate: end, RenewalNoticeDays: 60, ContractValue: 250000},
		{ID: 2, VendorID: 42, Status: models.ContractStatusActive, StartDate: start, EndDate: end}, // vendor unknown
		{ID: 3, VendorID: 1, Status: models.ContractStatusExpired, StartDate: start, EndDate: end}, // not active
	}

	entries := Timeline(contracts, vendors)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, uint(1), e.ContractID)
	assert.Equal(t, "DataAnnotation Pro", e.VendorName)
	assert.Equal(t, end.AddDate(0, 0, -60), e.RenewalMarker)
	assert.Contains(t, e.Label, "CNT001")
}
