package routes

import (
	"github.com/gin-gonic/gin"

	dashboardhandlers "jellyfix/internal/interfaces/http/handlers/dashboard"
	tickethandlers "jellyfix/internal/interfaces/http/handlers/ticket"
)

type TicketRouteConfig struct {
	TicketHandler    *tickethandlers.TicketHandler
	DashboardHandler *dashboardhandlers.DashboardHandler
}

// SetupTicketRoutes registers the ticket API and the admin dashboard
// under the given group. The paths are the contract the Jellyfin-side
// injector script and the dashboard poll against, so they are flat
// rather than nested under a resource prefix.
func SetupTicketRoutes(group *gin.RouterGroup, config *TicketRouteConfig) {
	group.GET("/status/:item_id", config.TicketHandler.GetItemStatus)

	group.POST("/tickets", config.TicketHandler.CreateTicket)
	group.GET("/tickets/:id", config.TicketHandler.GetTicket)
	group.PUT("/tickets/:id/status", config.TicketHandler.UpdateStatus)

	group.POST("/comments", config.TicketHandler.AddComment)

	group.GET("/all_tickets", config.TicketHandler.ListTickets)

	group.GET("/admin", config.DashboardHandler.Render)
}
