// Package dashboard serves the admin triage page. The page is a single
// HTML document with inline client-side logic: a localStorage-based
// admin gate, a 30-second polling loop over the ticket API, and a
// status selector per ticket. The gate is cosmetic, not a security
// boundary; the real Jellyfin session is never verified server-side.
package dashboard

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"jellyfix/internal/shared/config"
	"jellyfix/internal/shared/i18n"
	"jellyfix/internal/shared/logger"
)

type pageData struct {
	Lang    string
	AdminID string
	T       i18n.Bundle
}

type DashboardHandler struct {
	tmpl   *template.Template
	data   pageData
	logger logger.Interface
}

func NewDashboardHandler(appCfg *config.AppConfig, texts i18n.Bundle, log logger.Interface) (*DashboardHandler, error) {
	tmpl, err := template.New("dashboard").Parse(dashboardTemplate)
	if err != nil {
		return nil, err
	}

	return &DashboardHandler{
		tmpl: tmpl,
		data: pageData{
			Lang:    texts.Lang,
			AdminID: appCfg.AdminID,
			T:       texts,
		},
		logger: log,
	}, nil
}

// Render handles GET /admin
func (h *DashboardHandler) Render(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := h.tmpl.Execute(c.Writer, h.data); err != nil {
		h.logger.Errorw("failed to render dashboard", "error", err)
	}
}

const dashboardTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
    <title>{{.T.DashTitle}}</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <link href="https://fonts.googleapis.com/icon?family=Material+Icons" rel="stylesheet">
    <style>
        body { background: #101010; color: #eee; font-family: sans-serif; padding: 20px; max-width: 1000px; margin: auto; display:none; }
        h1 { color: #00a4dc; border-bottom: 2px solid #333; padding-bottom: 15px; display: flex; align-items: center; gap: 10px; }
        .ticket-card { background: #202020; border: 1px solid #333; padding: 20px; margin-bottom: 15px; border-radius: 8px; display: flex; justify-content: space-between; align-items: flex-start; flex-wrap: wrap; gap: 20px; box-shadow: 0 4px 6px rgba(0,0,0,0.3); }
        .ticket-info { flex: 1; min-width: 300px; }
        .ticket-info h3 { margin: 0 0 10px 0; font-size: 1.2em; color: #fff; }
        .ticket-meta { color: #aaa; font-size: 0.95em; line-height: 1.6; }
        .ticket-id { font-size: 0.8em; opacity: 0.5; margin-left: 10px; }
        .status-control { display: flex; flex-direction: column; gap: 10px; min-width: 150px; }
        select { padding: 10px; border-radius: 5px; background: #000; color: #fff; border: 1px solid #444; cursor: pointer; font-size: 1em; }
        .badge-new { border-left: 5px solid #ff4444; }
        .badge-in_progress { border-left: 5px solid #ffbb33; }
        .badge-resolved { border-left: 5px solid #00C851; opacity: 0.7; }
        .btn-link { color: #00a4dc; text-decoration: none; font-weight: bold; display: inline-flex; align-items: center; gap: 5px; margin-top: 10px; }
        .btn-link:hover { text-decoration: underline; }
        .empty-state { text-align: center; padding: 50px; color: #666; font-style: italic; }
    </style>
    <script>
        // Admin gate: compare the Jellyfin localStorage credential blob
        // against the configured admin id. Client-side only.
        const EXPECTED_ADMIN_ID = "{{.AdminID}}";

        function checkAuth() {
            try {
                const storedCreds = localStorage.getItem('jellyfin_credentials');
                if (!storedCreds) throw "Not logged in";
                const parsed = JSON.parse(storedCreds);
                if (!parsed.Servers || parsed.Servers.length === 0) throw "No server found";

                const userId = parsed.Servers[0].UserId;
                if (EXPECTED_ADMIN_ID && userId !== EXPECTED_ADMIN_ID) {
                    document.write("<h1 style='color:white;text-align:center;margin-top:20%'>{{.T.ErrAccess}}</h1>");
                    throw "Wrong User";
                }
                document.body.style.display = "block";
            } catch(e) {
                window.location.href = "/web/index.html";
            }
        }
    </script>
</head>
<body onload="checkAuth()">
    <h1><span class="material-icons" style="font-size:36px">build</span> {{.T.DashTitle}}</h1>
    <div id="ticket-list">Loading...</div>

    <script>
        // Detect API root path automatically
        const API_ROOT = window.location.pathname.replace('/admin', '');

        const L = {
            user: "{{.T.EmailUser}}",
            issue: "{{.T.EmailIssue}}",
            view: "{{.T.LblView}}",
            status: "{{.T.LblStatus}}",
            statusNew: "{{.T.LblNew}}",
            statusWip: "{{.T.LblWip}}",
            statusDone: "{{.T.LblDone}}",
            empty: "{{.T.DashEmpty}}"
        };

        async function loadTickets() {
            try {
                const res = await fetch(API_ROOT + "/all_tickets");
                const tickets = await res.json();
                const container = document.getElementById('ticket-list');

                if (tickets.length === 0) {
                    container.innerHTML = '<div class="empty-state">' + L.empty + '</div>';
                    return;
                }

                container.innerHTML = "";

                tickets.forEach(t => {
                    const date = new Date(t.created_at).toLocaleString();

                    const div = document.createElement('div');
                    div.className = 'ticket-card badge-' + t.status;
                    div.innerHTML =
                        '<div class="ticket-info">' +
                            '<h3>' + t.item_name + ' <span class="ticket-id">#' + t.id + '</span></h3>' +
                            '<div class="ticket-meta">' +
                                '<div><strong>👤 ' + L.user + ' :</strong> ' + (t.user || 'Unknown') + '</div>' +
                                '<div><strong>⚠️ ' + L.issue + ' :</strong> ' + t.issue_type + '</div>' +
                                '<div><strong>📅 Date :</strong> ' + date + '</div>' +
                                '<a href="/web/index.html#!/details?id=' + t.jellyfin_item_id + '" target="_blank" class="btn-link">' +
                                    '<span class="material-icons" style="font-size:16px">open_in_new</span> ' + L.view +
                                '</a>' +
                            '</div>' +
                        '</div>' +
                        '<div class="status-control">' +
                            '<label style="font-size:0.8em; color:#888;">' + L.status + '</label>' +
                            '<select onchange="updateStatus(' + t.id + ', this.value)">' +
                                '<option value="new"' + (t.status === 'new' ? ' selected' : '') + '>🔴 ' + L.statusNew + '</option>' +
                                '<option value="in_progress"' + (t.status === 'in_progress' ? ' selected' : '') + '>🟠 ' + L.statusWip + '</option>' +
                                '<option value="resolved"' + (t.status === 'resolved' ? ' selected' : '') + '>🟢 ' + L.statusDone + '</option>' +
                            '</select>' +
                        '</div>';
                    container.appendChild(div);
                });
            } catch(e) {
                document.getElementById('ticket-list').innerHTML = "Error loading tickets: " + e;
            }
        }

        async function updateStatus(id, newStatus) {
            await fetch(API_ROOT + '/tickets/' + id + '/status', {
                method: 'PUT',
                headers: {'Content-Type': 'application/json'},
                body: JSON.stringify({status: newStatus})
            });
            loadTickets();
        }

        loadTickets();
        setInterval(loadTickets, 30000); // Auto-refresh
    </script>
</body>
</html>
`
