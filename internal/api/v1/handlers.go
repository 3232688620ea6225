package apiv1

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vendordesk/vendordesk/app/controllers"
	"github.com/vendordesk/vendordesk/internal/pkg/dataset"
	"github.com/vendordesk/vendordesk/internal/pkg/enrich"
	"github.com/vendordesk/vendordesk/internal/pkg/report"
	"github.com/vendordesk/vendordesk/internal/pkg/statistics"
)

// APIServer serves the JSON API consumed by the dashboard charts and by
// external integrations.
type APIServer struct{}

func NewAPIServer() *APIServer {
	return &APIServer{}
}

// RegisterHandlers attaches every v1 route to the given group.
func RegisterHandlers(v1 fiber.Router, s *APIServer) {
	v1.Get("/ping", s.GetPing)
	v1.Get("/summary", s.GetSummary)
	v1.Get("/charts", s.GetCharts)
	v1.Get("/timeline", s.GetTimeline)
	v1.Get("/vendors", s.GetVendors)
	v1.Get("/vendors/:id", s.GetVendor)
	v1.Get("/contracts", s.GetContracts)
	v1.Get("/projects", s.GetProjects)
	v1.Get("/tickets", s.GetTickets)
}

// Pong is the ping response body.
type Pong struct {
	Ping string `json:"ping"`
}

func (s *APIServer) GetPing(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(Pong{Ping: "pong"})
}

// GetSummary returns the dashboard headline numbers.
func (s *APIServer) GetSummary(c *fiber.Ctx) error {
	store, handle := controllers.StoreFor(c)
	return c.JSON(statistics.CachedSummary(handle, store))
}

// GetCharts returns the grouped datasets behind the dashboard charts.
func (s *APIServer) GetCharts(c *fiber.Ctx) error {
	store, _ := controllers.StoreFor(c)
	return c.JSON(statistics.Charts(store, time.Now()))
}

// GetTimeline returns the renewal timeline for active contracts.
func (s *APIServer) GetTimeline(c *fiber.Ctx) error {
	store, _ := controllers.StoreFor(c)
	return c.JSON(report.Timeline(store.Contracts(), store.Vendors()))
}

func (s *APIServer) GetVendors(c *fiber.Ctx) error {
	store, _ := controllers.StoreFor(c)
	return c.JSON(store.Vendors())
}

func (s *APIServer) GetVendor(c *fiber.Ctx) error {
	store, _ := controllers.StoreFor(c)

	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "bad_request", "message": "invalid vendor id",
		})
	}

	vendor, err := store.VendorByID(uint(id))
	if err != nil {
		if errors.Is(err, dataset.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "not_found", "message": "vendor not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal", "message": err.Error(),
		})
	}
	return c.JSON(vendor)
}

func (s *APIServer) GetContracts(c *fiber.Ctx) error {
	store, _ := controllers.StoreFor(c)
	return c.JSON(enrich.Contracts(store.Contracts(), store.Vendors()))
}

func (s *APIServer) GetProjects(c *fiber.Ctx) error {
	store, _ := controllers.StoreFor(c)
	return c.JSON(enrich.Projects(store.Projects(), store.Vendors()))
}

func (s *APIServer) GetTickets(c *fiber.Ctx) error {
	store, _ := controllers.StoreFor(c)
	return c.JSON(enrich.Tickets(store.Tickets(), store.Vendors()))
}
