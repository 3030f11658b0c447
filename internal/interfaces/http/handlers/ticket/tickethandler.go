package ticket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jellyfix/internal/application/ticket/usecases"
	"jellyfix/internal/shared/errors"
	"jellyfix/internal/shared/logger"
	"jellyfix/internal/shared/utils"
)

// TicketHandler exposes the ticket operations as JSON endpoints. The
// response bodies follow the contract the Jellyfin injector script and
// the dashboard already speak, so success payloads are emitted verbatim
// rather than wrapped in an envelope.
type TicketHandler struct {
	reportIssueUC   usecases.ReportIssueExecutor
	addCommentUC    usecases.AddCommentExecutor
	changeStatusUC  usecases.ChangeStatusExecutor
	getItemStatusUC usecases.GetItemStatusExecutor
	getTicketUC     usecases.GetTicketExecutor
	listTicketsUC   usecases.ListTicketsExecutor
	logger          logger.Interface
}

func NewTicketHandler(
	reportIssueUC usecases.ReportIssueExecutor,
	addCommentUC usecases.AddCommentExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	getItemStatusUC usecases.GetItemStatusExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	log logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		reportIssueUC:   reportIssueUC,
		addCommentUC:    addCommentUC,
		changeStatusUC:  changeStatusUC,
		getItemStatusUC: getItemStatusUC,
		getTicketUC:     getTicketUC,
		listTicketsUC:   listTicketsUC,
		logger:          log,
	}
}

// GetItemStatus handles GET /status/:item_id
func (h *TicketHandler) GetItemStatus(c *gin.Context) {
	query := usecases.GetItemStatusQuery{
		JellyfinItemID: c.Param("item_id"),
	}

	result, err := h.getItemStatusUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if result == nil {
		c.JSON(http.StatusOK, gin.H{"status": "none"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.reportIssueUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": result.TicketID, "status": "success"})
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ticket": result.Ticket, "comments": result.Comments})
}

// AddComment handles POST /comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add comment", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	if _, err := h.addCommentUC.Execute(c.Request.Context(), req.ToCommand()); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "added"})
}

// UpdateStatus handles PUT /tickets/:id/status
func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update status", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	cmd := usecases.ChangeStatusCommand{
		TicketID: ticketID,
		Status:   req.Status,
	}
	if _, err := h.changeStatusUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// ListTickets handles GET /all_tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	result, err := h.listTicketsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseTicketID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid ticket ID")
	}
	return uint(id), nil
}
