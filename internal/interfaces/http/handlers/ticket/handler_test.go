package ticket

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketdto "jellyfix/internal/application/ticket/dto"
	"jellyfix/internal/application/ticket/usecases"
	"jellyfix/internal/interfaces/http/handlers/testutil"
	"jellyfix/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockReportIssueUC struct {
	result *usecases.ReportIssueResult
	err    error
}

func (m *mockReportIssueUC) Execute(_ context.Context, _ usecases.ReportIssueCommand) (*usecases.ReportIssueResult, error) {
	return m.result, m.err
}

type mockAddCommentUC struct {
	result *usecases.AddCommentResult
	err    error
}

func (m *mockAddCommentUC) Execute(_ context.Context, _ usecases.AddCommentCommand) (*usecases.AddCommentResult, error) {
	return m.result, m.err
}

type mockChangeStatusUC struct {
	result *usecases.ChangeStatusResult
	err    error
}

func (m *mockChangeStatusUC) Execute(_ context.Context, _ usecases.ChangeStatusCommand) (*usecases.ChangeStatusResult, error) {
	return m.result, m.err
}

type mockGetItemStatusUC struct {
	result *ticketdto.TicketDTO
	err    error
}

func (m *mockGetItemStatusUC) Execute(_ context.Context, _ usecases.GetItemStatusQuery) (*ticketdto.TicketDTO, error) {
	return m.result, m.err
}

type mockGetTicketUC struct {
	result *usecases.GetTicketResult
	err    error
}

func (m *mockGetTicketUC) Execute(_ context.Context, _ usecases.GetTicketQuery) (*usecases.GetTicketResult, error) {
	return m.result, m.err
}

type mockListTicketsUC struct {
	result []ticketdto.TicketDTO
	err    error
}

func (m *mockListTicketsUC) Execute(_ context.Context) ([]ticketdto.TicketDTO, error) {
	return m.result, m.err
}

// =====================================================================
// Test helper
// =====================================================================

type testDeps struct {
	reportIssueUC   usecases.ReportIssueExecutor
	addCommentUC    usecases.AddCommentExecutor
	changeStatusUC  usecases.ChangeStatusExecutor
	getItemStatusUC usecases.GetItemStatusExecutor
	getTicketUC     usecases.GetTicketExecutor
	listTicketsUC   usecases.ListTicketsExecutor
}

func newTestTicketHandler(deps testDeps) *TicketHandler {
	return NewTicketHandler(
		deps.reportIssueUC,
		deps.addCommentUC,
		deps.changeStatusUC,
		deps.getItemStatusUC,
		deps.getTicketUC,
		deps.listTicketsUC,
		testutil.NewMockLogger(),
	)
}

// =====================================================================
// TestTicketHandler_CreateTicket
// =====================================================================

func TestTicketHandler_CreateTicket_Success(t *testing.T) {
	mockUC := &mockReportIssueUC{
		result: &usecases.ReportIssueResult{TicketID: 1, Status: "new"},
	}
	handler := newTestTicketHandler(testDeps{reportIssueUC: mockUC})

	reqBody := CreateTicketRequest{
		JellyfinItemID: "abc",
		ItemName:       "Movie X",
		IssueType:      "audio",
		InitialComment: "no sound",
		User:           "alice",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/tickets", reqBody)

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, "success", resp.Status)
}

func TestTicketHandler_CreateTicket_BindError(t *testing.T) {
	handler := newTestTicketHandler(testDeps{})

	// Missing required fields
	reqBody := map[string]string{"item_name": "Movie X"}
	c, w := testutil.NewTestContext(http.MethodPost, "/tickets", reqBody)

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.ErrorResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "validation_error", resp.Error.Type)
}

func TestTicketHandler_CreateTicket_UseCaseError(t *testing.T) {
	mockUC := &mockReportIssueUC{
		err: errors.NewInternalError("database is locked"),
	}
	handler := newTestTicketHandler(testDeps{reportIssueUC: mockUC})

	reqBody := CreateTicketRequest{
		JellyfinItemID: "abc",
		ItemName:       "Movie X",
		IssueType:      "audio",
		InitialComment: "no sound",
		User:           "alice",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/tickets", reqBody)

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// =====================================================================
// TestTicketHandler_GetItemStatus
// =====================================================================

func TestTicketHandler_GetItemStatus_OpenTicket(t *testing.T) {
	mockUC := &mockGetItemStatusUC{
		result: &ticketdto.TicketDTO{
			ID:             4,
			JellyfinItemID: "abc",
			ItemName:       "Movie X",
			IssueType:      "audio",
			Status:         "in_progress",
			CreatedAt:      "2024-05-01T12:00:00Z",
		},
	}
	handler := newTestTicketHandler(testDeps{getItemStatusUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/status/abc", nil)
	testutil.SetURLParam(c, "item_id", "abc")

	handler.GetItemStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ticketdto.TicketDTO
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, uint(4), resp.ID)
	assert.Equal(t, "in_progress", resp.Status)
}

func TestTicketHandler_GetItemStatus_NoOpenTicket(t *testing.T) {
	handler := newTestTicketHandler(testDeps{getItemStatusUC: &mockGetItemStatusUC{}})

	c, w := testutil.NewTestContext(http.MethodGet, "/status/abc", nil)
	testutil.SetURLParam(c, "item_id", "abc")

	handler.GetItemStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"none"}`, w.Body.String())
}

// =====================================================================
// TestTicketHandler_GetTicket
// =====================================================================

func TestTicketHandler_GetTicket_Success(t *testing.T) {
	mockUC := &mockGetTicketUC{
		result: &usecases.GetTicketResult{
			Ticket: ticketdto.TicketDTO{
				ID:             1,
				JellyfinItemID: "abc",
				ItemName:       "Movie X",
				IssueType:      "audio",
				Status:         "new",
				CreatedAt:      "2024-05-01T12:00:00Z",
			},
			Comments: []ticketdto.CommentDTO{
				{ID: 1, TicketID: 1, User: "alice", Message: "no sound", CreatedAt: "2024-05-01T12:00:00Z"},
			},
		},
	}
	handler := newTestTicketHandler(testDeps{getTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets/1", nil)
	testutil.SetURLParam(c, "id", "1")

	handler.GetTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Ticket   ticketdto.TicketDTO   `json:"ticket"`
		Comments []ticketdto.CommentDTO `json:"comments"`
	}
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, uint(1), resp.Ticket.ID)
	require.Len(t, resp.Comments, 1)
	assert.Equal(t, "alice", resp.Comments[0].User)
}

func TestTicketHandler_GetTicket_NotFound(t *testing.T) {
	mockUC := &mockGetTicketUC{
		err: errors.NewNotFoundError("ticket not found"),
	}
	handler := newTestTicketHandler(testDeps{getTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets/999", nil)
	testutil.SetURLParam(c, "id", "999")

	handler.GetTicket(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTicketHandler_GetTicket_InvalidID(t *testing.T) {
	handler := newTestTicketHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets/abc", nil)
	testutil.SetURLParam(c, "id", "abc")

	handler.GetTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// TestTicketHandler_AddComment
// =====================================================================

func TestTicketHandler_AddComment_Success(t *testing.T) {
	mockUC := &mockAddCommentUC{
		result: &usecases.AddCommentResult{CommentID: 2},
	}
	handler := newTestTicketHandler(testDeps{addCommentUC: mockUC})

	reqBody := AddCommentRequest{TicketID: 1, User: "alice", Message: "still broken"}
	c, w := testutil.NewTestContext(http.MethodPost, "/comments", reqBody)

	handler.AddComment(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"added"}`, w.Body.String())
}

func TestTicketHandler_AddComment_BindError(t *testing.T) {
	handler := newTestTicketHandler(testDeps{})

	reqBody := map[string]string{"user": "alice"}
	c, w := testutil.NewTestContext(http.MethodPost, "/comments", reqBody)

	handler.AddComment(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// TestTicketHandler_UpdateStatus
// =====================================================================

func TestTicketHandler_UpdateStatus_Success(t *testing.T) {
	mockUC := &mockChangeStatusUC{
		result: &usecases.ChangeStatusResult{TicketID: 1, Status: "resolved"},
	}
	handler := newTestTicketHandler(testDeps{changeStatusUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPut, "/tickets/1/status", UpdateStatusRequest{Status: "resolved"})
	testutil.SetURLParam(c, "id", "1")

	handler.UpdateStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"updated"}`, w.Body.String())
}

func TestTicketHandler_UpdateStatus_UnknownStatus(t *testing.T) {
	mockUC := &mockChangeStatusUC{
		err: errors.NewValidationError("invalid status: reopened"),
	}
	handler := newTestTicketHandler(testDeps{changeStatusUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPut, "/tickets/1/status", UpdateStatusRequest{Status: "reopened"})
	testutil.SetURLParam(c, "id", "1")

	handler.UpdateStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_UpdateStatus_MissingBody(t *testing.T) {
	handler := newTestTicketHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodPut, "/tickets/1/status", map[string]string{})
	testutil.SetURLParam(c, "id", "1")

	handler.UpdateStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// TestTicketHandler_ListTickets
// =====================================================================

func TestTicketHandler_ListTickets_Success(t *testing.T) {
	mockUC := &mockListTicketsUC{
		result: []ticketdto.TicketDTO{
			{ID: 3, Status: "new"},
			{ID: 1, Status: "in_progress"},
			{ID: 2, Status: "resolved"},
		},
	}
	handler := newTestTicketHandler(testDeps{listTicketsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/all_tickets", nil)

	handler.ListTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []ticketdto.TicketDTO
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.Len(t, resp, 3)
	assert.Equal(t, uint(3), resp[0].ID)
}

func TestTicketHandler_ListTickets_Empty(t *testing.T) {
	mockUC := &mockListTicketsUC{result: []ticketdto.TicketDTO{}}
	handler := newTestTicketHandler(testDeps{listTicketsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/all_tickets", nil)

	handler.ListTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
