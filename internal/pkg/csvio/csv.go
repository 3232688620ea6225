// Package csvio reads and writes the per-entity CSV files used for backup
// and bulk load. Exports are UTF-8 with a header row of field names, one
// record per row, no index column. Imports parse a whole file before
// anything reaches the store, so a malformed file changes nothing.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/vendordesk/vendordesk/app/models"
)

const dateLayout = "2006-01-02"

// ParseError reports a malformed CSV import with its position.
type ParseError struct {
	Line  int
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("csv line %d, field %q: %v", e.Line, e.Field, e.Err)
	}
	return fmt.Sprintf("csv line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var vendorHeader = []string{
	"id", "name", "contact_name", "contact_email", "phone", "location",
	"vendor_type", "status", "onboarding_stage", "date_added",
	"primary_services", "notes",
}

func ExportVendors(w io.Writer, rows []models.Vendor) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(vendorHeader); err != nil {
		return err
	}
	for _, v := range rows {
		record := []string{
			v.Code(), v.Name, v.ContactName, v.ContactEmail, v.Phone,
			v.Location, v.VendorType, v.Status, v.OnboardingStage,
			formatDate(v.DateAdded), v.PrimaryServices, v.Notes,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportVendors parses a vendors CSV. Ids in the file are ignored; the
// store assigns fresh ones on import.
func ImportVendors(r io.Reader) ([]models.Vendor, error) {
	records, cols, err := readAll(r, vendorHeader, []string{"name"})
	if err != nil {
		return nil, err
	}

	vendors := make([]models.Vendor, 0, len(records))
	for i, rec := range records {
		line := i + 2 // 1-based, after the header
		v := models.Vendor{
			Name:            cols.get(rec, "name"),
			ContactName:     cols.get(rec, "contact_name"),
			ContactEmail:    cols.get(rec, "contact_email"),
			Phone:           cols.get(rec, "phone"),
			Location:        cols.get(rec, "location"),
			VendorType:      cols.get(rec, "vendor_type"),
			Status:          cols.get(rec, "status"),
			OnboardingStage: cols.get(rec, "onboarding_stage"),
			PrimaryServices: cols.get(rec, "primary_services"),
			Notes:           cols.get(rec, "notes"),
		}
		if v.DateAdded, err = cols.getDate(rec, "date_added", line); err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}
	return vendors, nil
}

var contractHeader = []string{
	"id", "vendor_id", "contract_name", "contract_type", "start_date",
	"end_date", "contract_value", "po_number", "status",
	"renewal_notice_days", "document_link", "notes",
}

func ExportContracts(w io.Writer, rows []models.Contract) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(contractHeader); err != nil {
		return err
	}
	for _, c := range rows {
		record := []string{
			c.Code(), strconv.FormatUint(uint64(c.VendorID), 10),
			c.ContractName, c.ContractType, formatDate(c.StartDate),
			formatDate(c.EndDate), strconv.FormatFloat(c.ContractValue, 'f', 2, 64),
			c.PONumber, c.Status, strconv.Itoa(c.RenewalNoticeDays),
			c.DocumentLink, c.Notes,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func ImportContracts(r io.Reader) ([]models.Contract, error) {
	records, cols, err := readAll(r, contractHeader, []string{"contract_name"})
	if err != nil {
		return nil, err
	}

	contracts := make([]models.Contract, 0, len(records))
	for i, rec := range records {
		line := i + 2
		c := models.Contract{
			ContractName: cols.get(rec, "contract_name"),
			ContractType: cols.get(rec, "contract_type"),
			PONumber:     cols.get(rec, "po_number"),
			Status:       cols.get(rec, "status"),
			DocumentLink: cols.get(rec, "document_link"),
			Notes:        cols.get(rec, "notes"),
		}
		if c.VendorID, err = cols.getUint(rec, "vendor_id", line); err != nil {
			return nil, err
		}
		if c.StartDate, err = cols.getDate(rec, "start_date", line); err != nil {
			return nil, err
		}
		if c.EndDate, err = cols.getDate(rec, "end_date", line); err != nil {
			return nil, err
		}
		if c.ContractValue, err = cols.getFloat(rec, "contract_value", line); err != nil {
			return nil, err
		}
		if c.RenewalNoticeDays, err = cols.getInt(rec, "renewal_notice_days", line); err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}
	return contracts, nil
}

var projectHeader = []string{
	"id", "name", "vendor_id", "status", "start_date", "target_end_date",
	"completion_date", "completion_pct", "budget", "project_lead",
	"deliverables", "notes",
}

func ExportProjects(w io.Writer, rows []models.Project) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(projectHeader); err != nil {
		return err
	}
	for _, p := range rows {
		completion := ""
		if p.CompletionDate != nil {
			completion = formatDate(*p.CompletionDate)
		}
		record := []string{
			p.Code(), p.Name, strconv.FormatUint(uint64(p.VendorID), 10),
			p.Status, formatDate(p.StartDate), formatDate(p.TargetEndDate),
			completion, strconv.Itoa(p.CompletionPct),
			strconv.FormatFloat(p.Budget, 'f', 2, 64),
			p.ProjectLead, p.Deliverables, p.Notes,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func ImportProjects(r io.Reader) ([]models.Project, error) {
	records, cols, err := readAll(r, projectHeader, []string{"name"})
	if err != nil {
		return nil, err
	}

	projects := make([]models.Project, 0, len(records))
	for i, rec := range records {
		line := i + 2
		p := models.Project{
			Name:         cols.get(rec, "name"),
			Status:       cols.get(rec, "status"),
			ProjectLead:  cols.get(rec, "project_lead"),
			Deliverables: cols.get(rec, "deliverables"),
			Notes:        cols.get(rec, "notes"),
		}
		if p.VendorID, err = cols.getUint(rec, "vendor_id", line); err != nil {
			return nil, err
		}
		if p.StartDate, err = cols.getDate(rec, "start_date", line); err != nil {
			return nil, err
		}
		if p.TargetEndDate, err = cols.getDate(rec, "target_end_date", line); err != nil {
			return nil, err
		}
		if raw := cols.get(rec, "completion_date"); raw != "" {
			d, err := time.Parse(dateLayout, raw)
			if err != nil {
				return nil, &ParseError{Line: line, Field: "completion_date", Err: err}
			}
			p.CompletionDate = &d
		}
		if p.CompletionPct, err = cols.getInt(rec, "completion_pct", line); err != nil {
			return nil, err
		}
		if p.Budget, err = cols.getFloat(rec, "budget", line); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}

var ticketHeader = []string{
	"id", "vendor_id", "ticket_type", "priority", "status", "created_date",
	"description",
}

func ExportTickets(w io.Writer, rows []models.Ticket) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ticketHeader); err != nil {
		return err
	}
	for _, t := range rows {
		record := []string{
			t.Code(), strconv.FormatUint(uint64(t.VendorID), 10),
			t.TicketType, t.Priority, t.Status, formatDate(t.CreatedDate),
			t.Description,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func ImportTickets(r io.Reader) ([]models.Ticket, error) {
	records, cols, err := readAll(r, ticketHeader, []string{"ticket_type"})
	if err != nil {
		return nil, err
	}

	tickets := make([]models.Ticket, 0, len(records))
	for i, rec := range records {
		line := i + 2
		t := models.Ticket{
			TicketType:  cols.get(rec, "ticket_type"),
			Priority:    cols.get(rec, "priority"),
			Status:      cols.get(rec, "status"),
			Description: cols.get(rec, "description"),
		}
		if t.VendorID, err = cols.getUint(rec, "vendor_id", line); err != nil {
			return nil, err
		}
		if t.CreatedDate, err = cols.getDate(rec, "created_date", line); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

// columns maps header names to positions for one parsed file.
type columns map[string]int

func (c columns) get(rec []string, name string) string {
	idx, ok := c[name]
	if !ok || idx >= len(rec) {
		return ""
	}
	return rec[idx]
}

func (c columns) getDate(rec []string, name string, line int) (time.Time, error) {
	raw := c.get(rec, name)
	if raw == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, &ParseError{Line: line, Field: name, Err: err}
	}
	return d, nil
}

func (c columns) getFloat(rec []string, name string, line int) (float64, error) {
	raw := c.get(rec, name)
	if raw == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ParseError{Line: line, Field: name, Err: err}
	}
	return f, nil
}

func (c columns) getInt(rec []string, name string, line int) (int, error) {
	raw := c.get(rec, name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ParseError{Line: line, Field: name, Err: err}
	}
	return n, nil
}

func (c columns) getUint(rec []string, name string, line int) (uint, error) {
	raw := c.get(rec, name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, &ParseError{Line: line, Field: name, Err: err}
	}
	return uint(n), nil
}

// readAll consumes the whole file up front: header first, then every data
// row, so parse failures surface before any store mutation. Only columns
// named in knownHeader bind; anything else in the header is ignored, and a
// known column appearing twice is rejected as ambiguous.
func readAll(r io.Reader, knownHeader, required []string) ([][]string, columns, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, nil, &ParseError{Line: 1, Err: fmt.Errorf("missing header row: %w", err)}
	}

	known := make(map[string]struct{}, len(knownHeader))
	for _, name := range knownHeader {
		known[name] = struct{}{}
	}

	cols := make(columns, len(header))
	for i, name := range header {
		if _, ok := known[name]; !ok {
			continue
		}
		if _, dup := cols[name]; dup {
			return nil, nil, &ParseError{Line: 1, Field: name, Err: fmt.Errorf("column appears twice")}
		}
		cols[name] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, nil, &ParseError{Line: 1, Field: name, Err: fmt.Errorf("required column missing")}
		}
	}

	var records [][]string
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, &ParseError{Line: line, Err: err}
		}
		records = append(records, rec)
	}
	return records, cols, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
