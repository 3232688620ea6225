package csvio

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendordesk/vendordesk/app/models"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestExportVendorsRoundTrip(t *testing.T) {
	rows := []models.Vendor{
		{
			ID:           1,
			Name:         "CloudServe Solutions",
			ContactName:  "Maria Lopez",
			ContactEmail: "maria@cloudserve.example",
			VendorType:   "Cloud Services",
			Status:       models.VendorStatusActive,
			DateAdded:    date("2025-03-01"),
		},
		{ID: 2, Name: "DataSync Corp", Status: models.VendorStatusPending},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportVendors(&buf, rows))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(vendorHeader, ","), lines[0])
	assert.Contains(t, lines[1], "VND001")
	assert.Contains(t, lines[1], "2025-03-01")

	imported, err := ImportVendors(&buf)
	require.NoError(t, err)
	require.Len(t, imported, 2)
	assert.Equal(t, "CloudServe Solutions", imported[0].Name)
	assert.Equal(t, "maria@cloudserve.example", imported[0].ContactEmail)
	assert.Equal(t, date("2025-03-01"), imported[0].DateAdded)
	// file ids are display codes and are not carried over
	assert.Zero(t, imported[0].ID)
}

func TestExportContractsFormatsValues(t *testing.T) {
	rows := []models.Contract{
		{
			ID:                4,
			VendorID:          2,
			ContractName:      "Managed Hosting",
			StartDate:         date("2025-01-15"),
			EndDate:           date("2026-01-14"),
			ContractValue:     120000.5,
			Status:            models.ContractStatusActive,
			RenewalNoticeDays: 60,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportContracts(&buf, rows))
	out := buf.String()
	assert.Contains(t, out, "CNT004")
	assert.Contains(t, out, "120000.50")
	assert.Contains(t, out, "2026-01-14")

	imported, err := ImportContracts(&buf)
	require.NoError(t, err)
	require.Len(t, imported, 1)
	assert.Equal(t, uint(2), imported[0].VendorID)
	assert.Equal(t, 120000.5, imported[0].ContractValue)
	assert.Equal(t, 60, imported[0].RenewalNoticeDays)
}

func TestExportProjectsOptionalCompletionDate(t *testing.T) {
	done := date("2025-06-30")
	rows := []models.Project{
		{ID: 1, Name: "Migration", CompletionDate: &done, CompletionPct: 100},
		{ID: 2, Name: "Rollout", CompletionPct: 40},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportProjects(&buf, rows))

	imported, err := ImportProjects(&buf)
	require.NoError(t, err)
	require.Len(t, imported, 2)
	require.NotNil(t, imported[0].CompletionDate)
	assert.Equal(t, done, *imported[0].CompletionDate)
	assert.Nil(t, imported[1].CompletionDate)
}

func TestImportTickets(t *testing.T) {
	in := strings.Join([]string{
		"id,vendor_id,ticket_type,priority,status,created_date,description",
		"TKT001,3,Incident,High,Open,2025-08-01,Service outage in region A",
	}, "\n")

	tickets, err := ImportTickets(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, uint(3), tickets[0].VendorID)
	assert.Equal(t, models.TicketPriorityHigh, tickets[0].Priority)
	assert.Equal(t, date("2025-08-01"), tickets[0].CreatedDate)
}

func TestImportRejectsMissingRequiredColumn(t *testing.T) {
	in := "contact_name,status\nMaria Lopez,Active\n"

	_, err := ImportVendors(strings.NewReader(in))
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Line)
	assert.Equal(t, "name", perr.Field)
}

func TestImportReportsLineOfBadValue(t *testing.T) {
	in := strings.Join([]string{
		"contract_name,contract_value",
		"Hosting,1000",
		"Support,not-a-number",
	}, "\n")

	_, err := ImportContracts(strings.NewReader(in))
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 3, perr.Line)
	assert.Equal(t, "contract_value", perr.Field)
}

func TestImportReportsBadDate(t *testing.T) {
	in := "name,date_added\nCloudServe,08/01/2025\n"

	_, err := ImportVendors(strings.NewReader(in))
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, "date_added", perr.Field)
}

func TestImportEmptyFileFails(t *testing.T) {
	_, err := ImportVendors(strings.NewReader(""))
	require.Error(t, err)

	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
}

func TestImportIgnoresUnknownColumns(t *testing.T) {
	in := "name,legacy_flag\nCloudServe,yes\n"

	vendors, err := ImportVendors(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, vendors, 1)
	assert.Equal(t, "CloudServe", vendors[0].Name)
}

func TestImportRejectsDuplicateColumn(t *testing.T) {
	in := "name,name\nCloudServe,DataSync\n"

	_, err := ImportVendors(strings.NewReader(in))
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Line)
	assert.Equal(t, "name", perr.Field)
}
