// Package i18n holds the EN and FR text bundles used by the email
// notifier and the admin dashboard.
package i18n

import "strings"

// Bundle groups every user-visible string for one language.
type Bundle struct {
	Lang string

	EmailSubject string // fmt: ticket id, item name
	EmailTitle   string
	EmailUser    string
	EmailMedia   string
	EmailIssue   string
	EmailMsg     string
	EmailFooter  string

	DashTitle string
	DashEmpty string
	LblStatus string
	LblNew    string
	LblWip    string
	LblDone   string
	LblView   string
	ErrAccess string
}

var bundles = map[string]Bundle{
	"EN": {
		Lang:         "en",
		EmailSubject: "🚨 Jellyfin Ticket #%d: %s",
		EmailTitle:   "New Issue Reported",
		EmailUser:    "User",
		EmailMedia:   "Media",
		EmailIssue:   "Issue",
		EmailMsg:     "Message",
		EmailFooter:  "Log in to Jellyfin to manage this ticket.",
		DashTitle:    "JellyFix Admin",
		DashEmpty:    "No tickets yet. All good! 🎉",
		LblStatus:    "Status:",
		LblNew:       "New",
		LblWip:       "In Progress",
		LblDone:      "Resolved",
		LblView:      "View Media",
		ErrAccess:    "⛔ Access Denied",
	},
	"FR": {
		Lang:         "fr",
		EmailSubject: "🚨 Ticket Jellyfin #%d : %s",
		EmailTitle:   "Nouveau Signalement",
		EmailUser:    "Utilisateur",
		EmailMedia:   "Média",
		EmailIssue:   "Problème",
		EmailMsg:     "Message",
		EmailFooter:  "Connectez-vous à Jellyfin pour gérer ce ticket.",
		DashTitle:    "Administration JellyFix",
		DashEmpty:    "Aucun ticket pour le moment. Tout va bien ! 🎉",
		LblStatus:    "Statut :",
		LblNew:       "Nouveau",
		LblWip:       "En cours",
		LblDone:      "Résolu",
		LblView:      "Voir le média",
		ErrAccess:    "⛔ Accès Interdit",
	},
}

// ForLanguage returns the bundle for the given language code.
// Matching is case-insensitive; unknown languages fall back to EN.
func ForLanguage(lang string) Bundle {
	if b, ok := bundles[strings.ToUpper(lang)]; ok {
		return b
	}
	return bundles["EN"]
}
