package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendordesk/vendordesk/app/models"
)

func TestContractsLeftOuterJoin(t *testing.T) {
	vendors := []models.Vendor{
		{ID: 1, Name: "DataAnnotation Pro"},
		{ID: 2, Name: "CloudScale Solutions"},
	}
	facts := []models.Contract{
		{ID: 10, VendorID: 1},
		{ID: 11, VendorID: 99}, // dangling reference
		{ID: 12, VendorID: 2},
	}

	got := Contracts(facts, vendors)

	// never drops a fact row
	require.Len(t, got, len(facts))
	assert.Equal(t, "DataAnnotation Pro", got[0].VendorName)
	assert.Equal(t, "", got[1].VendorName)
	assert.Equal(t, "CloudScale Solutions", got[2].VendorName)

	// fact order preserved
	assert.Equal(t, uint(10), got[0].ID)
	assert.Equal(t, uint(11), got[1].ID)
	assert.Equal(t, uint(12), got[2].ID)
}

func TestEnrichIsIdempotentForUnchangedDimension(t *testing.T) {
	vendors := []models.Vendor{{ID: 1, Name: "Acme"}}
	facts := []models.Contract{{ID: 10, VendorID: 1}, {ID: 11, VendorID: 7}}

	first := Contracts(facts, vendors)
	second := Contracts(facts, vendors)
	assert.Equal(t, first, second)
}

func TestEnrichEmptyInputs(t *testing.T) {
	assert.Empty(t, Contracts(nil, nil))
	assert.Len(t, Tickets([]models.Ticket{{ID: 1, VendorID: 5}}, nil), 1)
}

func TestProjectsAndTickets(t *testing.T) {
	vendors := []models.Vendor{{ID: 3, Name: "Quality Data Services"}}

	projects := Projects([]models.Project{{ID: 1, VendorID: 3}}, vendors)
	require.Len(t, projects, 1)
	assert.Equal(t, "Quality Data Services", projects[0].VendorName)

	tickets := Tickets([]models.Ticket{{ID: 1, VendorID: 3}, {ID: 2}}, vendors)
	require.Len(t, tickets, 2)
	assert.Equal(t, "Quality Data Services", tickets[0].VendorName)
	assert.Equal(t, "", tickets[1].VendorName)
}
