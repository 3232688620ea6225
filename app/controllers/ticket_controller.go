package controllers

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/vendordesk/vendordesk/app/models"
	"github.com/vendordesk/vendordesk/internal/pkg/dataset"
	"github.com/vendordesk/vendordesk/internal/pkg/enrich"
	"github.com/vendordesk/vendordesk/internal/pkg/query"
	"github.com/vendordesk/vendordesk/internal/pkg/statistics"
)

// HandleTickets renders the ticket list sorted by priority, High first,
// newest first within a priority.
func HandleTickets(c *fiber.Ctx) error {
	store, _ := StoreFor(c)

	crit := query.TicketCriteria{
		StatusIn:   queryValues(c, "status"),
		PriorityIn: queryValues(c, "priority"),
		TypeIn:     queryValues(c, "type"),
		FreeText:   c.Query("q"),
	}
	if since, err := parseQueryDate(c, "created_since"); err != nil {
		return flash.WithError(c, errorMap("invalid created_since date")).Redirect("/tickets")
	} else if !since.IsZero() {
		crit.CreatedSince = &since
	}

	tickets := query.Tickets(store.Tickets(), crit)
	sort.SliceStable(tickets, func(i, j int) bool {
		if tickets[i].PriorityRank() != tickets[j].PriorityRank() {
			return tickets[i].PriorityRank() < tickets[j].PriorityRank()
		}
		return tickets[i].CreatedDate.After(tickets[j].CreatedDate)
	})
	views := enrich.Tickets(tickets, store.Vendors())

	return c.Render("tickets/index", fiber.Map{
		"Title":      "Tickets",
		"Tickets":    views,
		"Statuses":   models.TicketStatuses,
		"Priorities": models.TicketPriorities,
		"Query":      c.Query("q"),
		"Flash":      flash.Get(c),
	})
}

// HandleTicketNew shows the creation form and processes its submission.
func HandleTicketNew(c *fiber.Ctx) error {
	store, handle := StoreFor(c)

	if c.Method() == fiber.MethodPost {
		ticket, err := ticketFromForm(c)
		if err != nil {
			return flash.WithError(c, errorMap(err.Error())).Redirect("/tickets/new")
		}
		if _, err := store.InsertTicket(ticket); err != nil {
			return flash.WithError(c, errorMap(err.Error())).Redirect("/tickets/new")
		}
		statistics.InvalidateSummary(handle)

		return flash.WithSuccess(c, successMap("Ticket created")).Redirect("/tickets")
	}

	return c.Render("tickets/form", fiber.Map{
		"Title":      "New Ticket",
		"Ticket":     models.Ticket{Priority: models.TicketPriorityMedium, Status: models.TicketStatusOpen},
		"Statuses":   models.TicketStatuses,
		"Priorities": models.TicketPriorities,
		"Vendors":    store.Vendors(),
		"Action":     "/tickets/new",
		"Flash":      flash.Get(c),
	})
}

// HandleTicketEdit shows the edit form and applies a partial update.
func HandleTicketEdit(c *fiber.Ctx) error {
	store, handle := StoreFor(c)

	id, err := idParam(c)
	if err != nil {
		return flash.WithError(c, errorMap("invalid ticket id")).Redirect("/tickets")
	}

	ticket, err := store.TicketByID(id)
	if err != nil {
		if errors.Is(err, dataset.ErrNotFound) {
			return flash.WithError(c, errorMap("ticket not found")).Redirect("/tickets")
		}
		return flash.WithError(c, errorMap(err.Error())).Redirect("/tickets")
	}

	if c.Method() == fiber.MethodPost {
		upd, err := ticketUpdateFromForm(c)
		if err != nil {
			return flash.WithError(c, errorMap(err.Error())).Redirect(fmt.Sprintf("/tickets/%d/edit", id))
		}
		if err := store.UpdateTicket(id, upd); err != nil {
			return flash.WithError(c, errorMap(err.Error())).Redirect(fmt.Sprintf("/tickets/%d/edit", id))
		}
		statistics.InvalidateSummary(handle)

		return flash.WithSuccess(c, successMap("Ticket updated")).Redirect("/tickets")
	}

	return c.Render("tickets/form", fiber.Map{
		"Title":      "Edit " + ticket.Code(),
		"Ticket":     ticket,
		"Statuses":   models.TicketStatuses,
		"Priorities": models.TicketPriorities,
		"Vendors":    store.Vendors(),
		"Action":     fmt.Sprintf("/tickets/%d/edit", id),
		"Flash":      flash.Get(c),
	})
}

// HandleTicketResolve marks a ticket resolved without touching any other
// field.
func HandleTicketResolve(c *fiber.Ctx) error {
	store, handle := StoreFor(c)

	id, err := idParam(c)
	if err != nil {
		return flash.WithError(c, errorMap("invalid ticket id")).Redirect("/tickets")
	}

	resolved := models.TicketStatusResolved
	if err := store.UpdateTicket(id, dataset.TicketUpdate{Status: &resolved}); err != nil {
		if errors.Is(err, dataset.ErrNotFound) {
			return flash.WithError(c, errorMap("ticket not found")).Redirect("/tickets")
		}
		return flash.WithError(c, errorMap(err.Error())).Redirect("/tickets")
	}
	statistics.InvalidateSummary(handle)

	return flash.WithSuccess(c, successMap("Ticket resolved")).Redirect("/tickets")
}

// HandleTicketDelete removes a ticket.
func HandleTicketDelete(c *fiber.Ctx) error {
	store, handle := StoreFor(c)

	id, err := idParam(c)
	if err != nil {
		return flash.WithError(c, errorMap("invalid ticket id")).Redirect("/tickets")
	}

	if err := store.DeleteTicket(id); err != nil {
		if errors.Is(err, dataset.ErrNotFound) {
			return flash.WithError(c, errorMap("ticket not found")).Redirect("/tickets")
		}
		return flash.WithError(c, errorMap(err.Error())).Redirect("/tickets")
	}
	statistics.InvalidateSummary(handle)

	return flash.WithSuccess(c, successMap("Ticket deleted")).Redirect("/tickets")
}

func ticketFromForm(c *fiber.Ctx) (models.Ticket, error) {
	t := models.Ticket{
		TicketType:  c.FormValue("ticket_type"),
		Priority:    c.FormValue("priority"),
		Status:      c.FormValue("status"),
		Description: c.FormValue("description"),
	}

	var err error
	if t.VendorID, err = parseFormUint(c, "vendor_id"); err != nil {
		return t, fmt.Errorf("invalid vendor_id")
	}
	if t.CreatedDate, err = parseFormDate(c, "created_date"); err != nil {
		return t, fmt.Errorf("invalid created_date, expected yyyy-mm-dd")
	}
	return t, nil
}

func ticketUpdateFromForm(c *fiber.Ctx) (dataset.TicketUpdate, error) {
	var upd dataset.TicketUpdate
	setIfPresent(c, "ticket_type", &upd.TicketType)
	setIfPresent(c, "priority", &upd.Priority)
	setIfPresent(c, "status", &upd.Status)
	setIfPresent(c, "description", &upd.Description)

	if raw := c.FormValue("vendor_id"); raw != "" {
		v, err := parseFormUint(c, "vendor_id")
		if err != nil {
			return upd, fmt.Errorf("invalid vendor_id")
		}
		upd.VendorID = &v
	}
	return upd, nil
}
