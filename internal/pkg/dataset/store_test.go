package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendordesk/vendordesk/app/models"
)

func TestInsertGetRoundTrip(t *testing.T) {
	s := NewStore()

	id, err := s.InsertVendor(models.Vendor{Name: "Acme"})
	require.NoError(t, err)
	require.NotZero(t, id)

	got, err := s.VendorByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Equal(t, models.VendorStatusPending, got.Status)
	assert.False(t, got.DateAdded.IsZero())
}

func TestInsertValidationLeavesStoreUntouched(t *testing.T) {
	s := NewStore()

	_, err := s.InsertVendor(models.Vendor{Name: ""})
	require.Error(t, err)
	assert.Empty(t, s.Vendors())
}

func TestIDsAreMonotonicAndNeverReused(t *testing.T) {
	s := NewStore()

	id1, err := s.InsertVendor(models.Vendor{Name: "First"})
	require.NoError(t, err)
	id2, err := s.InsertVendor(models.Vendor{Name: "Second"})
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	require.NoError(t, s.DeleteVendor(id2))

	id3, err := s.InsertVendor(models.Vendor{Name: "Third"})
	require.NoError(t, err)
	assert.Greater(t, id3, id2)
}

func TestUpdateVendorPartial(t *testing.T) {
	s := NewStore()
	id, err := s.InsertVendor(models.Vendor{Name: "Acme", Location: "Austin, TX"})
	require.NoError(t, err)

	status := models.VendorStatusActive
	require.NoError(t, s.UpdateVendor(id, VendorUpdate{Status: &status}))

	got, err := s.VendorByID(id)
	require.NoError(t, err)
	assert.Equal(t, models.VendorStatusActive, got.Status)
	// untouched fields survive a partial update
	assert.Equal(t, "Acme", got.Name)
	assert.Equal(t, "Austin, TX", got.Location)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt) || got.UpdatedAt.Equal(got.CreatedAt))
}

func TestUpdateUnknownIDSignalsNotFound(t *testing.T) {
	s := NewStore()
	name := "Nobody"
	assert.ErrorIs(t, s.UpdateVendor(999, VendorUpdate{Name: &name}), ErrNotFound)
	assert.ErrorIs(t, s.DeleteVendor(999), ErrNotFound)
	assert.ErrorIs(t, s.DeleteTicket(999), ErrNotFound)
}

func TestUpdateValidationFailureDoesNotApply(t *testing.T) {
	s := NewStore()
	id, err := s.InsertVendor(models.Vendor{Name: "Acme"})
	require.NoError(t, err)

	bad := "Mothballed"
	require.Error(t, s.UpdateVendor(id, VendorUpdate{Status: &bad}))

	got, err := s.VendorByID(id)
	require.NoError(t, err)
	assert.Equal(t, models.VendorStatusPending, got.Status)
}

func TestDeleteVendorLeavesDependentsDangling(t *testing.T) {
	s := NewStore()
	vid, err := s.InsertVendor(models.Vendor{Name: "Acme"})
	require.NoError(t, err)
	cid, err := s.InsertContract(models.Contract{VendorID: vid, ContractName: "Support Agreement"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteVendor(vid))

	_, err = s.VendorByID(vid)
	assert.ErrorIs(t, err, ErrNotFound)

	// dependent contract remains, still pointing at the removed vendor
	c, err := s.ContractByID(cid)
	require.NoError(t, err)
	assert.Equal(t, vid, c.VendorID)
}

func TestVendorDependents(t *testing.T) {
	s := NewStore()
	vid, err := s.InsertVendor(models.Vendor{Name: "Acme"})
	require.NoError(t, err)
	_, err = s.InsertContract(models.Contract{VendorID: vid, ContractName: "MSA"})
	require.NoError(t, err)
	_, err = s.InsertProject(models.Project{VendorID: vid, Name: "Migration"})
	require.NoError(t, err)

	contracts, projects := s.VendorDependents(vid)
	assert.Equal(t, 1, contracts)
	assert.Equal(t, 1, projects)
}

func TestSnapshotsDoNotAliasStore(t *testing.T) {
	s := NewStore()
	_, err := s.InsertVendor(models.Vendor{Name: "Acme"})
	require.NoError(t, err)

	snap := s.Vendors()
	snap[0].Name = "Mutated"

	got := s.Vendors()
	assert.Equal(t, "Acme", got[0].Name)
}

func TestImportIsAllOrNothing(t *testing.T) {
	s := NewStore()

	n, err := s.ImportVendors([]models.Vendor{
		{Name: "Good Vendor"},
		{Name: ""}, // invalid
	})
	require.Error(t, err)
	assert.Zero(t, n)
	assert.Empty(t, s.Vendors())

	n, err = s.ImportVendors([]models.Vendor{
		{Name: "Vendor A"},
		{Name: "Vendor B", Status: models.VendorStatusActive},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, s.Vendors(), 2)
}

func TestImportDoesNotMutateCallerBatch(t *testing.T) {
	s := NewStore()

	vendors := []models.Vendor{{Name: "Vendor A"}}
	tickets := []models.Ticket{{TicketType: "Access Request"}}

	_, err := s.ImportVendors(vendors)
	require.NoError(t, err)
	_, err = s.ImportTickets(tickets)
	require.NoError(t, err)

	// defaults land on the stored rows, not the input slices
	assert.Empty(t, vendors[0].Status)
	assert.Empty(t, tickets[0].Status)
	assert.Empty(t, tickets[0].Priority)
	assert.Equal(t, models.VendorStatusPending, s.Vendors()[0].Status)
	assert.Equal(t, models.TicketStatusOpen, s.Tickets()[0].Status)
}

func TestSeededStore(t *testing.T) {
	s := NewSeededStore()

	assert.Len(t, s.Vendors(), 8)
	assert.Len(t, s.Contracts(), 7)
	assert.Len(t, s.Projects(), 6)
	assert.Len(t, s.Tickets(), 12)
}

func TestRegistryIsolatesSessions(t *testing.T) {
	r := NewRegistry()

	a := r.Get("session-a")
	b := r.Get("session-b")
	require.NotSame(t, a, b)

	_, err := a.InsertVendor(models.Vendor{Name: "Only In A"})
	require.NoError(t, err)
	assert.Len(t, a.Vendors(), 9)
	assert.Len(t, b.Vendors(), 8)

	// same handle returns the same store
	assert.Same(t, a, r.Get("session-a"))

	r.Drop("session-a")
	fresh := r.Get("session-a")
	assert.Len(t, fresh.Vendors(), 8)
}
