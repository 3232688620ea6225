package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/vendordesk/vendordesk/app/models"
	"github.com/vendordesk/vendordesk/internal/pkg/dataset"
	"github.com/vendordesk/vendordesk/internal/pkg/enrich"
	"github.com/vendordesk/vendordesk/internal/pkg/query"
	"github.com/vendordesk/vendordesk/internal/pkg/report"
	"github.com/vendordesk/vendordesk/internal/pkg/statistics"
)

// HandleContracts renders the contract list with vendor names resolved.
// The expiring query parameter narrows the list to contracts due within
// that many days, overdue ones included.
func HandleContracts(c *fiber.Ctx) error {
	store, _ := StoreFor(c)

	crit := query.ContractCriteria{
		StatusIn: queryValues(c, "status"),
		TypeIn:   queryValues(c, "type"),
		FreeText: c.Query("q"),
		Ref:      time.Now(),
	}
	if raw := c.Query("expiring"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			return flash.WithError(c, errorMap("invalid expiring value")).Redirect("/contracts")
		}
		crit.MaxDaysToExpiry = &days
	}
	if raw := c.Query("vendor"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return flash.WithError(c, errorMap("invalid vendor value")).Redirect("/contracts")
		}
		vendorID := uint(id)
		crit.VendorID = &vendorID
	}

	contracts := query.Contracts(store.Contracts(), crit)
	views := enrich.Contracts(contracts, store.Vendors())

	var totalValue float64
	var active int
	for _, row := range contracts {
		totalValue += row.ContractValue
		if row.Status == models.ContractStatusActive {
			active++
		}
	}
	buckets := report.BucketByExpiry(contracts, crit.Ref)

	return c.Render("contracts/index", fiber.Map{
		"Title":      "Contracts",
		"Contracts":  views,
		"Statuses":   models.ContractStatuses,
		"Ref":        crit.Ref,
		"Query":      c.Query("q"),
		"TotalValue": totalValue,
		"Active":     active,
		"Due30":      len(buckets.Due30),
		"Due60":      len(buckets.Due60),
		"Flash":      flash.Get(c),
	})
}

// HandleContractNew shows the creation form and processes its submission.
func HandleContractNew(c *fiber.Ctx) error {
	store, handle := StoreFor(c)

	if c.Method() == fiber.MethodPost {
		contract, err := contractFromForm(c)
		if err != nil {
			return flash.WithError(c, errorMap(err.Error())).Redirect("/contracts/new")
		}
		if _, err := store.InsertContract(contract); err != nil {
			return flash.WithError(c, errorMap(err.Error())).Redirect("/contracts/new")
		}
		statistics.InvalidateSummary(handle)

		return flash.WithSuccess(c, successMap(fmt.Sprintf("Contract %s created", contract.ContractName))).Redirect("/contracts")
	}

	return c.Render("contracts/form", fiber.Map{
		"Title":    "New Contract",
		"Contract": models.Contract{Status: models.ContractStatusDraft},
		"Statuses": models.ContractStatuses,
		"Vendors":  store.Vendors(),
		"Action":   "/contracts/new",
		"Flash":    flash.Get(c),
	})
}

// HandleContractEdit shows the edit form and applies a partial update.
func HandleContractEdit(c *fiber.Ctx) error {
	store, handle := StoreFor(c)

	id, err := idParam(c)
	if err != nil {
		return flash.WithError(c, errorMap("invalid contract id")).Redirect("/contracts")
	}

	contract, err := store.ContractByID(id)
	if err != nil {
		if errors.Is(err, dataset.ErrNotFound) {
			return flash.WithError(c, errorMap("contract not found")).Redirect("/contracts")
		}
		return flash.WithError(c, errorMap(err.Error())).Redirect("/contracts")
	}

	if c.Method() == fiber.MethodPost {
		upd, err := contractUpdateFromForm(c)
		if err != nil {
			return flash.WithError(c, errorMap(err.Error())).Redirect(fmt.Sprintf("/contracts/%d/edit", id))
		}
		if err := store.UpdateContract(id, upd); err != nil {
			return flash.WithError(c, errorMap(err.Error())).Redirect(fmt.Sprintf("/contracts/%d/edit", id))
		}
		statistics.InvalidateSummary(handle)

		return flash.WithSuccess(c, successMap("Contract updated")).Redirect("/contracts")
	}

	return c.Render("contracts/form", fiber.Map{
		"Title":    "Edit " + contract.ContractName,
		"Contract": contract,
		"Statuses": models.ContractStatuses,
		"Vendors":  store.Vendors(),
		"Action":   fmt.Sprintf("/contracts/%d/edit", id),
		"Flash":    flash.Get(c),
	})
}

// HandleContractDelete removes a contract.
func HandleContractDelete(c *fiber.Ctx) error {
	store, handle := StoreFor(c)

	id, err := idParam(c)
	if err != nil {
		return flash.WithError(c, errorMap("invalid contract id")).Redirect("/contracts")
	}

	if err := store.DeleteContract(id); err != nil {
		if errors.Is(err, dataset.ErrNotFound) {
			return flash.WithError(c, errorMap("contract not found")).Redirect("/contracts")
		}
		return flash.WithError(c, errorMap(err.Error())).Redirect("/contracts")
	}
	statistics.InvalidateSummary(handle)

	return flash.WithSuccess(c, successMap("Contract deleted")).Redirect("/contracts")
}

// HandleContractTimeline renders the renewal timeline for active contracts.
func HandleContractTimeline(c *fiber.Ctx) error {
	store, _ := StoreFor(c)

	entries := report.Timeline(store.Contracts(), store.Vendors())

	return c.Render("contracts/timeline", fiber.Map{
		"Title":   "Contract Timeline",
		"Entries": entries,
		"Flash":   flash.Get(c),
	})
}

func contractFromForm(c *fiber.Ctx) (models.Contract, error) {
	contract := models.Contract{
		ContractName: c.FormValue("contract_name"),
		ContractType: c.FormValue("contract_type"),
		PONumber:     c.FormValue("po_number"),
		Status:       c.FormValue("status"),
		DocumentLink: c.FormValue("document_link"),
		Notes:        c.FormValue("notes"),
	}

	var err error
	if contract.VendorID, err = parseFormUint(c, "vendor_id"); err != nil {
		return contract, fmt.Errorf("invalid vendor_id")
	}
	if contract.StartDate, err = parseFormDate(c, "start_date"); err != nil {
		return contract, fmt.Errorf("invalid start_date, expected yyyy-mm-dd")
	}
	if contract.EndDate, err = parseFormDate(c, "end_date"); err != nil {
		return contract, fmt.Errorf("invalid end_date, expected yyyy-mm-dd")
	}
	if contract.ContractValue, err = parseFormFloat(c, "contract_value"); err != nil {
		return contract, fmt.Errorf("invalid contract_value")
	}
	if contract.RenewalNoticeDays, err = parseFormInt(c, "renewal_notice_days"); err != nil {
		return contract, fmt.Errorf("invalid renewal_notice_days")
	}
	return contract, nil
}

func contractUpdateFromForm(c *fiber.Ctx) (dataset.ContractUpdate, error) {
	var upd dataset.ContractUpdate
	setIfPresent(c, "contract_name", &upd.ContractName)
	setIfPresent(c, "contract_type", &upd.ContractType)
	setIfPresent(c, "po_number", &upd.PONumber)
	setIfPresent(c, "status", &upd.Status)
	setIfPresent(c, "document_link", &upd.DocumentLink)
	setIfPresent(c, "notes", &upd.Notes)

	if raw := c.FormValue("vendor_id"); raw != "" {
		v, err := parseFormUint(c, "vendor_id")
		if err != nil {
			return upd, fmt.Errorf("invalid vendor_id")
		}
		upd.VendorID = &v
	}
	if raw := c.FormValue("start_date"); raw != "" {
		d, err := parseFormDate(c, "start_date")
		if err != nil {
			return upd, fmt.Errorf("invalid start_date, expected yyyy-mm-dd")
		}
		upd.StartDate = &d
	}
	if raw := c.FormValue("end_date"); raw != "" {
		d, err := parseFormDate(c, "end_date")
		if err != nil {
			return upd, fmt.Errorf("invalid end_date, expected yyyy-mm-dd")
		}
		upd.EndDate = &d
	}
	if raw := c.FormValue("contract_value"); raw != "" {
		v, err := parseFormFloat(c, "contract_value")
		if err != nil {
			return upd, fmt.Errorf("invalid contract_value")
		}
		upd.ContractValue = &v
	}
	if raw := c.FormValue("renewal_notice_days"); raw != "" {
		v, err := parseFormInt(c, "renewal_notice_days")
		if err != nil {
			return upd, fmt.Errorf("invalid renewal_notice_days")
		}
		upd.RenewalNoticeDays = &v
	}
	return upd, nil
}
