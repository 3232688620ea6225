package controllers

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/vendordesk/vendordesk/internal/pkg/csvio"
	"github.com/vendordesk/vendordesk/internal/pkg/statistics"
)

const importPreviewRows = 10

// HandleDataPage renders the export/import page.
func HandleDataPage(c *fiber.Ctx) error {
	return c.Render("data/index", fiber.Map{
		"Title": "Data",
		"Flash": flash.Get(c),
	})
}

// HandleDataExport streams one entity table as a CSV download.
func HandleDataExport(c *fiber.Ctx) error {
	store, _ := StoreFor(c)

	entity := c.Params("entity")
	var buf strings.Builder
	var err error
	switch entity {
	case "vendors":
		err = csvio.ExportVendors(&buf, store.Vendors())
	case "contracts":
		err = csvio.ExportContracts(&buf, store.Contracts())
	case "projects":
		err = csvio.ExportProjects(&buf, store.Projects())
	case "tickets":
		err = csvio.ExportTickets(&buf, store.Tickets())
	default:
		return flash.WithError(c, errorMap("unknown export entity")).Redirect("/data")
	}
	if err != nil {
		return flash.WithError(c, errorMap(err.Error())).Redirect("/data")
	}

	filename := fmt.Sprintf("%s-%s.csv", entity, time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.SendString(buf.String())
}

// HandleDataImport runs the two-step import. The first submission parses
// the uploaded file and renders a preview with the parsed rows; the
// confirming submission appends the whole batch to the store. A file that
// fails to parse changes nothing.
func HandleDataImport(c *fiber.Ctx) error {
	store, handle := StoreFor(c)

	entity := c.Params("entity")
	raw, err := importPayload(c)
	if err != nil {
		return flash.WithError(c, errorMap(err.Error())).Redirect("/data")
	}

	confirm := c.FormValue("confirm") == "true"

	var total, imported int
	var preview [][]string
	switch entity {
	case "vendors":
		rows, err := csvio.ImportVendors(strings.NewReader(raw))
		if err != nil {
			return flash.WithError(c, errorMap(err.Error())).Redirect("/data")
		}
		total = len(rows)
		if confirm {
			imported, err = store.ImportVendors(rows)
		} else {
			for _, r := range rows[:min(len(rows), importPreviewRows)] {
				preview = append(preview, []string{r.Name, r.VendorType, r.Status})
			}
		}
		if err != nil {
			return flash.WithError(c, errorMap(err.Error())).Redirect("/data")
		}
	case "contracts":
		rows, err := csvio.ImportContracts(strings.NewReader(raw))
		if err != nil {
			return flash.WithError(c, errorMap(err.Error())).Redirect("/data")
		}
		total = len(rows)
		if confirm {
			imported, err = store.ImportContracts(rows)
		} else {
			for _, r := range rows[:min(len(rows), importPreviewRows)] {
				preview = append(preview, []string{r.ContractName, r.Status, fmt.Sprintf("%.2f", r.ContractValue)})
			}
		}
		if err != nil {
			return flash.WithError(c, errorMap(err.Error())).Redirect("/data")
		}
	case "projects":
		rows, err := csvio.ImportProjects(strings.NewReader(raw))
		if err != nil {
			return flash.WithError(c, errorMap(err.Error())).Redirect("/data")
		}
		total = len(rows)
		if confirm {
			imported, err = store.ImportProjects(rows)
		} else {
			for _, r := range rows[:min(len(rows), importPreviewRows)] {
				preview = append(preview, []string{r.Name, r.Status, r.ProjectLead})
			}
		}
		if err != nil {
			return flash.WithError(c, errorMap(err.Error())).Redirect("/data")
		}
	case "tickets":
		rows, err := csvio.ImportTickets(strings.NewReader(raw))
		if err != nil {
			return flash.WithError(c, errorMap(err.Error())).Redirect("/data")
		}
		total = len(rows)
		if confirm {
			imported, err = store.ImportTickets(rows)
		} else {
			for _, r := range rows[:min(len(rows), importPreviewRows)] {
				preview = append(preview, []string{r.TicketType, r.Priority, r.Status})
			}
		}
		if err != nil {
			return flash.WithError(c, errorMap(err.Error())).Redirect("/data")
		}
	default:
		return flash.WithError(c, errorMap("unknown import entity")).Redirect("/data")
	}

	if confirm {
		statistics.InvalidateSummary(handle)
		return flash.WithSuccess(c, successMap(fmt.Sprintf("Imported %d %s", imported, entity))).Redirect("/data")
	}

	return c.Render("data/preview", fiber.Map{
		"Title":   "Import Preview",
		"Entity":  entity,
		"Total":   total,
		"Preview": preview,
		"RawCSV":  raw,
		"Action":  "/data/import/" + entity,
		"Flash":   flash.Get(c),
	})
}

// HandleDataReset discards the session dataset; the next request starts
// from the sample data again. Not available when a shared database backs
// the application.
func HandleDataReset(c *fiber.Ctx) error {
	if sharedStore != nil {
		return flash.WithError(c, errorMap("reset is not available with database storage")).Redirect("/data")
	}
	resetDataset(c)
	return flash.WithSuccess(c, successMap("Dataset reset to sample data")).Redirect("/")
}

// importPayload reads the CSV content either from the uploaded file or
// from the hidden field the preview step carries forward.
func importPayload(c *fiber.Ctx) (string, error) {
	if raw := c.FormValue("csv_content"); raw != "" {
		return raw, nil
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", fmt.Errorf("no CSV file uploaded")
	}
	f, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	return string(raw), nil
}
