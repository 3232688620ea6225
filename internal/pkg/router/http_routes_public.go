package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vendordesk/vendordesk/app/controllers"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	app.Get("/", controllers.HandleDashboard)

	// Vendors
	app.Get("/vendors", controllers.HandleVendors)
	app.Get("/vendors/new", controllers.HandleVendorNew)
	app.Post("/vendors/new", controllers.HandleVendorNew)
	app.Get("/vendors/:id/edit", controllers.HandleVendorEdit)
	app.Post("/vendors/:id/edit", controllers.HandleVendorEdit)
	app.Post("/vendors/:id/delete", controllers.HandleVendorDelete)

	// Contracts
	app.Get("/contracts", controllers.HandleContracts)
	app.Get("/contracts/timeline", controllers.HandleContractTimeline)
	app.Get("/contracts/new", controllers.HandleContractNew)
	app.Post("/contracts/new", controllers.HandleContractNew)
	app.Get("/contracts/:id/edit", controllers.HandleContractEdit)
	app.Post("/contracts/:id/edit", controllers.HandleContractEdit)
	app.Post("/contracts/:id/delete", controllers.HandleContractDelete)

	// Projects
	app.Get("/projects", controllers.HandleProjects)
	app.Get("/projects/new", controllers.HandleProjectNew)
	app.Post("/projects/new", controllers.HandleProjectNew)
	app.Get("/projects/:id/edit", controllers.HandleProjectEdit)
	app.Post("/projects/:id/edit", controllers.HandleProjectEdit)
	app.Post("/projects/:id/delete", controllers.HandleProjectDelete)

	// Tickets
	app.Get("/tickets", controllers.HandleTickets)
	app.Get("/tickets/new", controllers.HandleTicketNew)
	app.Post("/tickets/new", controllers.HandleTicketNew)
	app.Get("/tickets/:id/edit", controllers.HandleTicketEdit)
	app.Post("/tickets/:id/edit", controllers.HandleTicketEdit)
	app.Post("/tickets/:id/resolve", controllers.HandleTicketResolve)
	app.Post("/tickets/:id/delete", controllers.HandleTicketDelete)

	// Data export and import
	app.Get("/data", controllers.HandleDataPage)
	app.Get("/data/export/:entity", controllers.HandleDataExport)
	app.Post("/data/import/:entity", controllers.HandleDataImport)
	app.Post("/data/reset", controllers.HandleDataReset)
}
