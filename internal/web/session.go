package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/omarshaarawi/matchview/internal/service"
)

const sessionName = "matchview"

const (
	keyYear    = "year"
	keyWeek    = "week"
	keyMatchup = "matchup"
)

// NewSessionStore keeps each browser's selection cursor in a signed cookie.
// Without a configured key a random one is generated, so selections do not
// survive a restart.
func NewSessionStore(key string) *sessions.CookieStore {
	secret := []byte(key)
	if len(secret) == 0 {
		slog.Warn("SESSION_KEY not set, generating a random session key")
		secret = securecookie.GenerateRandomKey(32)
	}

	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   30 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

func (h *Handler) loadCursor(r *http.Request) (*sessions.Session, *service.Cursor) {
	session, err := h.sessions.Get(r, sessionName)
	if err != nil {
		// A cookie signed with an old key decodes to a fresh session.
		slog.Warn("Discarding unreadable session", "error", err)
	}

	cursor := &service.Cursor{
		Year:    intValue(session.Values[keyYear]),
		Week:    intValue(session.Values[keyWeek]),
		Matchup: intValue(session.Values[keyMatchup]),
	}
	if cursor.Year == 0 {
		cursor.Year = h.defaultYear
	}
	return session, cursor
}

func (h *Handler) saveCursor(w http.ResponseWriter, r *http.Request, session *sessions.Session, cursor *service.Cursor) {
	session.Values[keyYear] = cursor.Year
	session.Values[keyWeek] = cursor.Week
	session.Values[keyMatchup] = cursor.Matchup
	if err := session.Save(r, w); err != nil {
		slog.Error("Error saving session", "error", err)
	}
}

func intValue(v interface{}) int {
	n, _ := v.(int)
	return n
}
