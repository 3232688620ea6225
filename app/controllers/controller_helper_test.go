package controllers

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postForm runs handler against a urlencoded POST and reports the handler's
// own assertions.
func postForm(t *testing.T, values url.Values, handler fiber.Handler) {
	t.Helper()

	app := fiber.New()
	app.Post("/test", handler)

	req := httptest.NewRequest("POST", "/test", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestVendorFromForm(t *testing.T) {
	values := url.Values{
		"name":          {"CloudServe Solutions"},
		"contact_email": {"ops@cloudserve.example"},
		"status":        {"Active"},
		"date_added":    {"2025-03-01"},
	}

	postForm(t, values, func(c *fiber.Ctx) error {
		v, err := vendorFromForm(c)
		require.NoError(t, err)
		assert.Equal(t, "CloudServe Solutions", v.Name)
		assert.Equal(t, "Active", v.Status)
		assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), v.DateAdded)
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func TestVendorFromFormRejectsBadDate(t *testing.T) {
	values := url.Values{
		"name":       {"CloudServe"},
		"date_added": {"03/01/2025"},
	}

	postForm(t, values, func(c *fiber.Ctx) error {
		_, err := vendorFromForm(c)
		require.Error(t, err)
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func TestVendorUpdateFromFormOnlySubmittedFields(t *testing.T) {
	values := url.Values{
		"status": {"Inactive"},
	}

	postForm(t, values, func(c *fiber.Ctx) error {
		upd, err := vendorUpdateFromForm(c)
		require.NoError(t, err)
		require.NotNil(t, upd.Status)
		assert.Equal(t, "Inactive", *upd.Status)
		assert.Nil(t, upd.Name)
		assert.Nil(t, upd.ContactEmail)
		assert.Nil(t, upd.DateAdded)
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func TestContractFromFormParsesNumbers(t *testing.T) {
	values := url.Values{
		"contract_name":       {"Managed Hosting"},
		"vendor_id":           {"3"},
		"contract_value":      {"120000.50"},
		"renewal_notice_days": {"60"},
		"start_date":          {"2025-01-15"},
		"end_date":            {"2026-01-14"},
	}

	postForm(t, values, func(c *fiber.Ctx) error {
		contract, err := contractFromForm(c)
		require.NoError(t, err)
		assert.Equal(t, uint(3), contract.VendorID)
		assert.Equal(t, 120000.50, contract.ContractValue)
		assert.Equal(t, 60, contract.RenewalNoticeDays)
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func TestContractFromFormRejectsBadValue(t *testing.T) {
	values := url.Values{
		"contract_name":  {"Managed Hosting"},
		"contract_value": {"lots"},
	}

	postForm(t, values, func(c *fiber.Ctx) error {
		_, err := contractFromForm(c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "contract_value")
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func TestProjectUpdateFromFormCompletionDate(t *testing.T) {
	values := url.Values{
		"completion_date": {"2025-06-30"},
		"completion_pct":  {"100"},
	}

	postForm(t, values, func(c *fiber.Ctx) error {
		upd, err := projectUpdateFromForm(c)
		require.NoError(t, err)
		require.NotNil(t, upd.CompletionDate)
		assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), *upd.CompletionDate)
		require.NotNil(t, upd.CompletionPct)
		assert.Equal(t, 100, *upd.CompletionPct)
		assert.Nil(t, upd.Name)
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func TestQueryValues(t *testing.T) {
	app := fiber.New()
	app.Get("/test", func(c *fiber.Ctx) error {
		assert.Equal(t, []string{"Active", "Pending"}, queryValues(c, "status"))
		assert.Nil(t, queryValues(c, "missing"))
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest("GET", "/test?status=Active,%20Pending", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestIdParam(t *testing.T) {
	app := fiber.New()
	app.Get("/test/:id", func(c *fiber.Ctx) error {
		id, err := idParam(c)
		require.NoError(t, err)
		assert.Equal(t, uint(42), id)
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest("GET", "/test/42", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestIdParamRejectsGarbage(t *testing.T) {
	app := fiber.New()
	app.Get("/test/:id", func(c *fiber.Ctx) error {
		_, err := idParam(c)
		require.Error(t, err)
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest("GET", "/test/VND001", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
