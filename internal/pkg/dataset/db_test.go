package dataset

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2/log"
	"github.com/stretchr/testify/assert"

	"github.com/vendordesk/vendordesk/app/models"
)

var errConnLost = errors.New("driver: bad connection")

// brokenVendorRepo fails every operation, standing in for a lost database.
type brokenVendorRepo struct{}

func (brokenVendorRepo) Create(*models.Vendor) error          { return errConnLost }
func (brokenVendorRepo) GetByID(uint) (*models.Vendor, error) { return nil, errConnLost }
func (brokenVendorRepo) GetAll() ([]models.Vendor, error)     { return nil, errConnLost }
func (brokenVendorRepo) Update(*models.Vendor) error          { return errConnLost }
func (brokenVendorRepo) Delete(uint) error                    { return errConnLost }
func (brokenVendorRepo) Count() (int64, error)                { return 0, errConnLost }
func (brokenVendorRepo) CountByStatus(string) (int64, error)  { return 0, errConnLost }

func TestDBStoreVendorsLogsListFailure(t *testing.T) {
	store := &DBStore{vendors: brokenVendorRepo{}, tickets: NewStore()}

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	got := store.Vendors()

	assert.Nil(t, got)
	assert.Contains(t, buf.String(), "listing vendors failed")
	assert.Contains(t, buf.String(), errConnLost.Error())
}

func TestDBStoreVendorByIDFailurePropagates(t *testing.T) {
	store := &DBStore{vendors: brokenVendorRepo{}, tickets: NewStore()}

	_, err := store.VendorByID(1)
	assert.ErrorIs(t, err, errConnLost)
	assert.NotErrorIs(t, err, ErrNotFound)
}
