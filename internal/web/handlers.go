package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"regexp"
	"strconv"

	"github.com/a-h/templ"
	"github.com/gorilla/sessions"
	"github.com/omarshaarawi/matchview/internal/render"
	"github.com/omarshaarawi/matchview/internal/service"
	"github.com/omarshaarawi/matchview/internal/ui"
)

type Handler struct {
	loader      *service.Loader
	sessions    sessions.Store
	years       []int
	defaultYear int
	leagueName  string
	sharedPages templ.Component
}

type Options struct {
	Years       []int
	DefaultYear int
	LeagueName  string
	SharedPages templ.Component
}

func NewHandler(loader *service.Loader, store sessions.Store, opts Options) *Handler {
	return &Handler{
		loader:      loader,
		sessions:    store,
		years:       opts.Years,
		defaultYear: opts.DefaultYear,
		leagueName:  opts.LeagueName,
		sharedPages: opts.SharedPages,
	}
}

// LoadSharedPages reads the operator-supplied fragment with the RB/WR,
// stats and team pages. An empty path means there are none.
func LoadSharedPages(path string) (templ.Component, error) {
	if path == "" {
		return nil, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading shared pages: %w", err)
	}
	return templ.Raw(string(b)), nil
}

func (h *Handler) ServeShell(w http.ResponseWriter, r *http.Request) {
	_, cursor := h.loadCursor(r)
	page := render.ShellPage{
		LeagueName:  h.leagueName,
		Years:       h.years,
		ActiveYear:  cursor.Year,
		SharedPages: h.sharedPages,
	}
	templ.Handler(render.Shell(page)).ServeHTTP(w, r)
}

// actionRequest mirrors the data attributes of the clicked control, so
// every field arrives as a string.
type actionRequest struct {
	Action  string `json:"action"`
	Year    string `json:"year"`
	Week    string `json:"week"`
	Matchup string `json:"matchup"`
	Team    string `json:"team"`
	Panel   string `json:"panel"`
	Page    string `json:"page"`
	Defense string `json:"defense"`
}

var errBadAction = errors.New("bad action")

// maxActionBody bounds an /actions request; real payloads are a handful of
// short fields.
const maxActionBody = 4 << 10

func (h *Handler) HandleAction(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxActionBody)

	var req actionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "Request Entity Too Large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	session, cursor := h.loadCursor(r)
	patch := ui.NewPatch(r.Context(), ui.DefaultMounts()...)
	viewer := service.NewViewer(h.loader, cursor, patch, h.years)

	if err := h.dispatch(r.Context(), viewer, cursor, req); err != nil {
		slog.Warn("Rejected action", "action", req.Action, "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.saveCursor(w, r, session, cursor)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(patch); err != nil {
		slog.Error("Error writing patch", "error", err)
	}
}

func (h *Handler) dispatch(ctx context.Context, v *service.Viewer, cursor *service.Cursor, req actionRequest) error {
	switch req.Action {
	case render.ActionInit:
		v.Init(ctx)
	case render.ActionSwitchYear:
		year, err := intArg("year", req.Year, 0)
		if err != nil {
			return err
		}
		v.SwitchYear(ctx, year)
	case render.ActionShowWeek:
		week, year, err := weekAndYear(req, cursor)
		if err != nil {
			return err
		}
		v.ShowWeek(week, year)
	case render.ActionShowMatchup:
		week, year, err := weekAndYear(req, cursor)
		if err != nil {
			return err
		}
		index, err := intArg("matchup", req.Matchup, 0)
		if err != nil {
			return err
		}
		v.ShowMatchup(week, index, year)
	case render.ActionFindMatchup:
		week, year, err := weekAndYear(req, cursor)
		if err != nil {
			return err
		}
		if req.Team == "" {
			return fmt.Errorf("%w: team is required", errBadAction)
		}
		v.FindMatchup(week, req.Team, year)
	case render.ActionShowPanel:
		panel, err := ui.ParsePanel(req.Panel)
		if err != nil {
			return fmt.Errorf("%w: %v", errBadAction, err)
		}
		v.ShowPanel(panel)
	case render.ActionShowStatsPage:
		if err := identArg("page", req.Page); err != nil {
			return err
		}
		v.ShowStatsPage(req.Page)
	case render.ActionShowVulture:
		if err := identArg("team", req.Team); err != nil {
			return err
		}
		v.ShowVulture(req.Team)
	case render.ActionCloseVulture:
		v.CloseVulture()
	case render.ActionShowTargets:
		if err := identArg("team", req.Team); err != nil {
			return err
		}
		v.ShowTargets(req.Team)
	case render.ActionCloseTargets:
		v.CloseTargets()
	case render.ActionShowTeam:
		if err := identArg("team", req.Team); err != nil {
			return err
		}
		v.ShowTeam(req.Team)
	case render.ActionShowTeamYear:
		if err := identArg("team", req.Team); err != nil {
			return err
		}
		year, err := intArg("year", req.Year, 0)
		if err != nil {
			return err
		}
		v.ShowTeamYear(req.Team, year)
	case render.ActionShowDefenseBreakdown:
		if err := identArg("defense", req.Defense); err != nil {
			return err
		}
		v.ShowDefenseBreakdown(req.Defense)
	case render.ActionCloseDefenseBreakdown:
		if err := identArg("defense", req.Defense); err != nil {
			return err
		}
		v.CloseDefenseBreakdown(req.Defense)
	default:
		return fmt.Errorf("%w: unknown action %q", errBadAction, req.Action)
	}
	return nil
}

// weekAndYear reads the week and year arguments. A missing year means the
// session's current year.
func weekAndYear(req actionRequest, cursor *service.Cursor) (int, int, error) {
	week, err := intArg("week", req.Week, 0)
	if err != nil {
		return 0, 0, err
	}
	year, err := intArg("year", req.Year, cursor.Year)
	if err != nil {
		return 0, 0, err
	}
	return week, year, nil
}

// intArg parses value; an empty value yields fallback, or an error when
// fallback is zero.
func intArg(name, value string, fallback int) (int, error) {
	if value == "" {
		if fallback != 0 {
			return fallback, nil
		}
		return 0, fmt.Errorf("%w: %s is required", errBadAction, name)
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q", errBadAction, name, value)
	}
	return n, nil
}

// Element ids are built from these arguments, so they are kept to
// characters that are safe in a CSS selector.
var identPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func identArg(name, value string) error {
	if !identPattern.MatchString(value) {
		return fmt.Errorf("%w: invalid %s %q", errBadAction, name, value)
	}
	return nil
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
