package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jellyfix/internal/application/ticket/usecases"
	"jellyfix/internal/infrastructure/config"
	"jellyfix/internal/infrastructure/email"
	"jellyfix/internal/infrastructure/repository"
	dashboardhandlers "jellyfix/internal/interfaces/http/handlers/dashboard"
	tickethandlers "jellyfix/internal/interfaces/http/handlers/ticket"
	"jellyfix/internal/interfaces/http/middleware"
	"jellyfix/internal/interfaces/http/routes"
	"jellyfix/internal/shared/i18n"
	"jellyfix/internal/shared/logger"
)

// Router wires repositories, use cases, and handlers into a gin engine.
// All routes live under the configured root path prefix so the service
// can sit behind the same reverse proxy as the Jellyfin web UI.
type Router struct {
	engine *gin.Engine
}

func NewRouter(cfg *config.Config, db *gorm.DB, log logger.Interface) (*Router, error) {
	engine := gin.New()

	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS())

	texts := i18n.ForLanguage(cfg.App.Language)

	ticketRepo := repository.NewTicketRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	notifier := email.NewTicketNotifier(cfg.Email, texts, log)

	ticketHandler := tickethandlers.NewTicketHandler(
		usecases.NewReportIssueUseCase(ticketRepo, commentRepo, notifier, log),
		usecases.NewAddCommentUseCase(commentRepo, log),
		usecases.NewChangeStatusUseCase(ticketRepo, log),
		usecases.NewGetItemStatusUseCase(ticketRepo, log),
		usecases.NewGetTicketUseCase(ticketRepo, commentRepo, log),
		usecases.NewListTicketsUseCase(ticketRepo, log),
		log,
	)

	dashboardHandler, err := dashboardhandlers.NewDashboardHandler(&cfg.App, texts, log)
	if err != nil {
		return nil, err
	}

	root := engine.Group(cfg.App.RootPath)

	root.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupTicketRoutes(root, &routes.TicketRouteConfig{
		TicketHandler:    ticketHandler,
		DashboardHandler: dashboardHandler,
	})

	return &Router{engine: engine}, nil
}

// Engine returns the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
