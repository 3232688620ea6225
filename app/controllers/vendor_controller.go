package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/sujit-baniya/flash"

	"github.com/vendordesk/vendordesk/app/models"
	"github.com/vendordesk/vendordesk/internal/pkg/dataset"
	"github.com/vendordesk/vendordesk/internal/pkg/query"
	"github.com/vendordesk/vendordesk/internal/pkg/statistics"
)

// HandleVendors renders the vendor list with the active filters applied.
func HandleVendors(c *fiber.Ctx) error {
	store, _ := StoreFor(c)

	crit := query.VendorCriteria{
		StatusIn: queryValues(c, "status"),
		TypeIn:   queryValues(c, "type"),
		FreeText: c.Query("q"),
	}
	if from, err := parseQueryDate(c, "added_from"); err != nil {
		return flash.WithError(c, errorMap("invalid added_from date")).Redirect("/vendors")
	} else if !from.IsZero() {
		crit.AddedFrom = &from
	}
	if to, err := parseQueryDate(c, "added_to"); err != nil {
		return flash.WithError(c, errorMap("invalid added_to date")).Redirect("/vendors")
	} else if !to.IsZero() {
		crit.AddedTo = &to
	}

	vendors := query.Vendors(store.Vendors(), crit)

	return c.Render("vendors/index", fiber.Map{
		"Title":    "Vendors",
		"Vendors":  vendors,
		"Statuses": models.VendorStatuses,
		"Filter":   crit,
		"Query":    c.Query("q"),
		"Flash":    flash.Get(c),
	})
}

// HandleVendorNew shows the creation form and processes its submission.
// Document folder creation is best effort: a storage failure is reported as
// a warning and never blocks the vendor record.
func HandleVendorNew(c *fiber.Ctx) error {
	store, handle := StoreFor(c)

	if c.Method() == fiber.MethodPost {
		vendor, err := vendorFromForm(c)
		if err != nil {
			return flash.WithError(c, errorMap(err.Error())).Redirect("/vendors/new")
		}

		id, err := store.InsertVendor(vendor)
		if err != nil {
			return flash.WithError(c, errorMap(err.Error())).Redirect("/vendors/new")
		}
		statistics.InvalidateSummary(handle)

		fm := successMap(fmt.Sprintf("Vendor %s created", vendor.Name))
		if folderManager.IsConfigured() {
			structure, err := folderManager.CreateVendorFolders(c.Context(), vendor.Name)
			if err != nil {
				log.Warnf("[Vendor] folder creation failed for %q: %v", vendor.Name, err)
				fm = successMap(fmt.Sprintf("Vendor %s created, but document folders could not be created", vendor.Name))
			} else {
				upd := dataset.VendorUpdate{
					DriveFolderID:   &structure.FolderID,
					DriveFolderLink: &structure.FolderLink,
				}
				if err := store.UpdateVendor(id, upd); err != nil {
					log.Warnf("[Vendor] failed to record folder link for %d: %v", id, err)
				}
			}
		}

		return flash.WithSuccess(c, fm).Redirect("/vendors")
	}

	return c.Render("vendors/form", fiber.Map{
		"Title":    "New Vendor",
		"Vendor":   models.Vendor{Status: models.VendorStatusPending},
		"Statuses": models.VendorStatuses,
		"Action":   "/vendors/new",
		"Flash":    flash.Get(c),
	})
}

// HandleVendorEdit shows the edit form and applies a partial update.
func HandleVendorEdit(c *fiber.Ctx) error {
	store, handle := StoreFor(c)

	id, err := idParam(c)
	if err != nil {
		return flash.WithError(c, errorMap("invalid vendor id")).Redirect("/vendors")
	}

	vendor, err := store.VendorByID(id)
	if err != nil {
		if errors.Is(err, dataset.ErrNotFound) {
			return flash.WithError(c, errorMap("vendor not found")).Redirect("/vendors")
		}
		return flash.WithError(c, errorMap(err.Error())).Redirect("/vendors")
	}

	if c.Method() == fiber.MethodPost {
		upd, err := vendorUpdateFromForm(c)
		if err != nil {
			return flash.WithError(c, errorMap(err.Error())).Redirect(fmt.Sprintf("/vendors/%d/edit", id))
		}
		if err := store.UpdateVendor(id, upd); err != nil {
			return flash.WithError(c, errorMap(err.Error())).Redirect(fmt.Sprintf("/vendors/%d/edit", id))
		}
		statistics.InvalidateSummary(handle)

		return flash.WithSuccess(c, successMap("Vendor updated")).Redirect("/vendors")
	}

	return c.Render("vendors/form", fiber.Map{
		"Title":    "Edit " + vendor.Name,
		"Vendor":   vendor,
		"Statuses": models.VendorStatuses,
		"Action":   fmt.Sprintf("/vendors/%d/edit", id),
		"Flash":    flash.Get(c),
	})
}

// HandleVendorDelete removes a vendor. Vendors with contracts or projects
// are kept unless the submission carries force=true, so dependent rows are
// never orphaned by accident.
func HandleVendorDelete(c *fiber.Ctx) error {
	store, handle := StoreFor(c)

	id, err := idParam(c)
	if err != nil {
		return flash.WithError(c, errorMap("invalid vendor id")).Redirect("/vendors")
	}

	if c.FormValue("force") != "true" {
		contracts, projects := store.VendorDependents(id)
		if contracts > 0 || projects > 0 {
			err := fmt.Errorf("%w: %d contract(s), %d project(s); resubmit with force to delete anyway",
				dataset.ErrHasDependents, contracts, projects)
			return flash.WithError(c, errorMap(err.Error())).Redirect("/vendors")
		}
	}

	if err := store.DeleteVendor(id); err != nil {
		if errors.Is(err, dataset.ErrNotFound) {
			return flash.WithError(c, errorMap("vendor not found")).Redirect("/vendors")
		}
		return flash.WithError(c, errorMap(err.Error())).Redirect("/vendors")
	}
	statistics.InvalidateSummary(handle)

	return flash.WithSuccess(c, successMap("Vendor deleted")).Redirect("/vendors")
}

func vendorFromForm(c *fiber.Ctx) (models.Vendor, error) {
	v := models.Vendor{
		Name:            c.FormValue("name"),
		ContactName:     c.FormValue("contact_name"),
		ContactEmail:    c.FormValue("contact_email"),
		Phone:           c.FormValue("phone"),
		Location:        c.FormValue("location"),
		VendorType:      c.FormValue("vendor_type"),
		Status:          c.FormValue("status"),
		OnboardingStage: c.FormValue("onboarding_stage"),
		PrimaryServices: c.FormValue("primary_services"),
		Notes:           c.FormValue("notes"),
	}
	var err error
	if v.DateAdded, err = parseFormDate(c, "date_added"); err != nil {
		return v, fmt.Errorf("invalid date_added, expected yyyy-mm-dd")
	}
	return v, nil
}

func vendorUpdateFromForm(c *fiber.Ctx) (dataset.VendorUpdate, error) {
	var upd dataset.VendorUpdate
	setIfPresent(c, "name", &upd.Name)
	setIfPresent(c, "contact_name", &upd.ContactName)
	setIfPresent(c, "contact_email", &upd.ContactEmail)
	setIfPresent(c, "phone", &upd.Phone)
	setIfPresent(c, "location", &upd.Location)
	setIfPresent(c, "vendor_type", &upd.VendorType)
	setIfPresent(c, "status", &upd.Status)
	setIfPresent(c, "onboarding_stage", &upd.OnboardingStage)
	setIfPresent(c, "primary_services", &upd.PrimaryServices)
	setIfPresent(c, "notes", &upd.Notes)

	if raw := c.FormValue("date_added"); raw != "" {
		d, err := parseFormDate(c, "date_added")
		if err != nil {
			return upd, fmt.Errorf("invalid date_added, expected yyyy-mm-dd")
		}
		upd.DateAdded = &d
	}
	return upd, nil
}
