package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/sujit-baniya/flash"

	"github.com/vendordesk/vendordesk/app/models"
	"github.com/vendordesk/vendordesk/internal/pkg/dataset"
	"github.com/vendordesk/vendordesk/internal/pkg/enrich"
	"github.com/vendordesk/vendordesk/internal/pkg/query"
	"github.com/vendordesk/vendordesk/internal/pkg/report"
	"github.com/vendordesk/vendordesk/internal/pkg/statistics"
)

// HandleProjects renders the project list with vendor names resolved.
func HandleProjects(c *fiber.Ctx) error {
	store, _ := StoreFor(c)

	crit := query.ProjectCriteria{
		StatusIn: queryValues(c, "status"),
		LeadIn:   queryValues(c, "lead"),
		FreeText: c.Query("q"),
	}

	projects := query.Projects(store.Projects(), crit)
	views := enrich.Projects(projects, store.Vendors())

	totalBudget := report.Sum(projects, func(p models.Project) float64 { return p.Budget })
	avgPct, err := report.Average(projects, func(p models.Project) float64 { return float64(p.CompletionPct) })
	if err != nil {
		avgPct = 0
	}

	return c.Render("projects/index", fiber.Map{
		"Title":       "Projects",
		"Projects":    views,
		"Statuses":    store.ProjectStatuses(),
		"Query":       c.Query("q"),
		"TotalBudget": totalBudget,
		"AvgPct":      avgPct,
		"Flash":       flash.Get(c),
	})
}

// HandleProjectNew shows the creation form and processes its submission.
// When the selected vendor already has a document folder the project's
// folder tree is nested under it; folder creation stays best effort.
func HandleProjectNew(c *fiber.Ctx) error {
	store, handle := StoreFor(c)

	if c.Method() == fiber.MethodPost {
		project, err := projectFromForm(c)
		if err != nil {
			return flash.WithError(c, errorMap(err.Error())).Redirect("/projects/new")
		}

		id, err := store.InsertProject(project)
		if err != nil {
			return flash.WithError(c, errorMap(err.Error())).Redirect("/projects/new")
		}
		statistics.InvalidateSummary(handle)

		fm := successMap(fmt.Sprintf("Project %s created", project.Name))
		if folderManager.IsConfigured() {
			parentID := ""
			if project.VendorID != 0 {
				if vendor, err := store.VendorByID(project.VendorID); err == nil {
					parentID = vendor.DriveFolderID
				}
			}
			structure, err := folderManager.CreateProjectFolders(c.Context(), project.Name, parentID)
			if err != nil {
				log.Warnf("[Project] folder creation failed for %q: %v", project.Name, err)
				fm = successMap(fmt.Sprintf("Project %s created, but document folders could not be created", project.Name))
			} else {
				upd := dataset.ProjectUpdate{
					DriveFolderID:   &structure.FolderID,
					DriveFolderLink: &structure.FolderLink,
				}
				if err := store.UpdateProject(id, upd); err != nil {
					log.Warnf("[Project] failed to record folder link for %d: %v", id, err)
				}
			}
		}

		return flash.WithSuccess(c, fm).Redirect("/projects")
	}

	return c.Render("projects/form", fiber.Map{
		"Title":    "New Project",
		"Project":  models.Project{},
		"Statuses": store.ProjectStatuses(),
		"Vendors":  store.Vendors(),
		"Action":   "/projects/new",
		"Flash":    flash.Get(c),
	})
}

// HandleProjectEdit shows the edit form and applies a partial update.
func HandleProjectEdit(c *fiber.Ctx) error {
	store, handle := StoreFor(c)

	id, err := idParam(c)
	if err != nil {
		return flash.WithError(c, errorMap("invalid project id")).Redirect("/projects")
	}

	project, err := store.ProjectByID(id)
	if err != nil {
		if errors.Is(err, dataset.ErrNotFound) {
			return flash.WithError(c, errorMap("project not found")).Redirect("/projects")
		}
		return flash.WithError(c, errorMap(err.Error())).Redirect("/projects")
	}

	if c.Method() == fiber.MethodPost {
		upd, err := projectUpdateFromForm(c)
		if err != nil {
			return flash.WithError(c, errorMap(err.Error())).Redirect(fmt.Sprintf("/projects/%d/edit", id))
		}
		if err := store.UpdateProject(id, upd); err != nil {
			return flash.WithError(c, errorMap(err.Error())).Redirect(fmt.Sprintf("/projects/%d/edit", id))
		}
		statistics.InvalidateSummary(handle)

		return flash.WithSuccess(c, successMap("Project updated")).Redirect("/projects")
	}

	return c.Render("projects/form", fiber.Map{
		"Title":    "Edit " + project.Name,
		"Project":  project,
		"Statuses": store.ProjectStatuses(),
		"Vendors":  store.Vendors(),
		"Action":   fmt.Sprintf("/projects/%d/edit", id),
		"Flash":    flash.Get(c),
	})
}

// HandleProjectDelete removes a project.
func HandleProjectDelete(c *fiber.Ctx) error {
	store, handle := StoreFor(c)

	id, err := idParam(c)
	if err != nil {
		return flash.WithError(c, errorMap("invalid project id")).Redirect("/projects")
	}

	if err := store.DeleteProject(id); err != nil {
		if errors.Is(err, dataset.ErrNotFound) {
			return flash.WithError(c, errorMap("project not found")).Redirect("/projects")
		}
		return flash.WithError(c, errorMap(err.Error())).Redirect("/projects")
	}
	statistics.InvalidateSummary(handle)

	return flash.WithSuccess(c, successMap("Project deleted")).Redirect("/projects")
}

func projectFromForm(c *fiber.Ctx) (models.Project, error) {
	p := models.Project{
		Name:         c.FormValue("name"),
		Status:       c.FormValue("status"),
		ProjectLead:  c.FormValue("project_lead"),
		Deliverables: c.FormValue("deliverables"),
		Notes:        c.FormValue("notes"),
	}

	var err error
	if p.VendorID, err = parseFormUint(c, "vendor_id"); err != nil {
		return p, fmt.Errorf("invalid vendor_id")
	}
	if p.StartDate, err = parseFormDate(c, "start_date"); err != nil {
		return p, fmt.Errorf("invalid start_date, expected yyyy-mm-dd")
	}
	if p.TargetEndDate, err = parseFormDate(c, "target_end_date"); err != nil {
		return p, fmt.Errorf("invalid target_end_date, expected yyyy-mm-dd")
	}
	if raw := c.FormValue("completion_date"); raw != "" {
		d, err := parseFormDate(c, "completion_date")
		if err != nil {
			return p, fmt.Errorf("invalid completion_date, expected yyyy-mm-dd")
		}
		p.CompletionDate = &d
	}
	if p.CompletionPct, err = parseFormInt(c, "completion_pct"); err != nil {
		return p, fmt.Errorf("invalid completion_pct")
	}
	if p.Budget, err = parseFormFloat(c, "budget"); err != nil {
		return p, fmt.Errorf("invalid budget")
	}
	return p, nil
}

func projectUpdateFromForm(c *fiber.Ctx) (dataset.ProjectUpdate, error) {
	var upd dataset.ProjectUpdate
	setIfPresent(c, "name", &upd.Name)
	setIfPresent(c, "status", &upd.Status)
	setIfPresent(c, "project_lead", &upd.ProjectLead)
	setIfPresent(c, "deliverables", &upd.Deliverables)
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
	if raw := c.FormValue("target_end_date"); raw != "" {
		d, err := parseFormDate(c, "target_end_date")
		if err != nil {
			return upd, fmt.Errorf("invalid target_end_date, expected yyyy-mm-dd")
		}
		upd.TargetEndDate = &d
	}
	if raw := c.FormValue("completion_date"); raw != "" {
		d, err := parseFormDate(c, "completion_date")
		if err != nil {
			return upd, fmt.Errorf("invalid completion_date, expected yyyy-mm-dd")
		}
		upd.CompletionDate = &d
	}
	if raw := c.FormValue("completion_pct"); raw != "" {
		v, err := parseFormInt(c, "completion_pct")
		if err != nil {
			return upd, fmt.Errorf("invalid completion_pct")
		}
		upd.CompletionPct = &v
	}
	if raw := c.FormValue("budget"); raw != "" {
		v, err := parseFormFloat(c, "budget")
		if err != nil {
			return upd, fmt.Errorf("invalid budget")
		}
		upd.Budget = &v
	}
	return upd, nil
}
