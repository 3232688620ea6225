package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractDaysToExpiry(t *testing.T) {
	ref := time.Date(2024, 11, 10, 0, 0, 0, 0, time.UTC)

	c := Contract{EndDate: ref.AddDate(0, 0, 15)}
	assert.Equal(t, 15, c.DaysToExpiry(ref))

	c.EndDate = ref.AddDate(0, 0, -5)
	assert.Equal(t, -5, c.DaysToExpiry(ref))

	c.EndDate = ref
	assert.Equal(t, 0, c.DaysToExpiry(ref))
}

func TestContractDaysToExpiryMidDayReference(t *testing.T) {
	end := time.Date(2024, 11, 10, 0, 0, 0, 0, time.UTC)
	ref := time.Date(2024, 11, 10, 14, 0, 0, 0, time.UTC)

	// expired earlier today: a partial day behind counts as a full day overdue
	c := Contract{EndDate: end}
	assert.Equal(t, -1, c.DaysToExpiry(ref))

	// due tomorrow at midnight: 10 hours ahead is still day zero
	c.EndDate = end.AddDate(0, 0, 1)
	assert.Equal(t, 0, c.DaysToExpiry(ref))

	c.EndDate = end.AddDate(0, 0, 31)
	assert.Equal(t, 30, c.DaysToExpiry(ref))
}

func TestContractRenewalNoticeDate(t *testing.T) {
	end := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)
	c := Contract{EndDate: end, RenewalNoticeDays: 60}

	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), c.RenewalNoticeDate())
}

func TestContractValidate(t *testing.T) {
	c := &Contract{ContractName: "Annual Support Agreement"}
	require.NoError(t, c.Validate())

	c.ContractName = ""
	assert.Error(t, c.Validate())

	c.ContractName = "Annual Support Agreement"
	c.ContractValue = -1
	assert.Error(t, c.Validate())
}

func TestVendorValidate(t *testing.T) {
	v := &Vendor{Name: "Acme", Status: VendorStatusPending}
	require.NoError(t, v.Validate())

	v.ContactEmail = "not-an-email"
	assert.Error(t, v.Validate())

	v.ContactEmail = "ops@acme.test"
	v.Status = "Retired"
	assert.Error(t, v.Validate())
}

func TestTicketPriorityRank(t *testing.T) {
	high := Ticket{Priority: TicketPriorityHigh}
	med := Ticket{Priority: TicketPriorityMedium}
	low := Ticket{Priority: TicketPriorityLow}
	odd := Ticket{Priority: "Urgent"}

	assert.Less(t, high.PriorityRank(), med.PriorityRank())
	assert.Less(t, med.PriorityRank(), low.PriorityRank())
	assert.Greater(t, odd.PriorityRank(), low.PriorityRank())
}

func TestCodes(t *testing.T) {
	assert.Equal(t, "VND007", Vendor{ID: 7}.Code())
	assert.Equal(t, "CNT042", Contract{ID: 42}.Code())
	assert.Equal(t, "PRJ001", Project{ID: 1}.Code())
	assert.Equal(t, "TKT120", Ticket{ID: 120}.Code())
}
