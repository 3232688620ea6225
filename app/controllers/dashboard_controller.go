package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/vendordesk/vendordesk/internal/pkg/report"
	"github.com/vendordesk/vendordesk/internal/pkg/statistics"
)

// HandleDashboard renders the landing page with the headline numbers,
// chart datasets, and the renewal timeline.
func HandleDashboard(c *fiber.Ctx) error {
	store, handle := StoreFor(c)

	summary := statistics.CachedSummary(handle, store)
	charts := statistics.Charts(store, time.Now())
	timeline := report.Timeline(store.Contracts(), store.Vendors())

	return c.Render("dashboard/index", fiber.Map{
		"Title":    "Dashboard",
		"Summary":  summary,
		"Charts":   charts,
		"Timeline": timeline,
		"Flash":    flash.Get(c),
	})
}
