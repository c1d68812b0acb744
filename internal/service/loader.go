package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/omarshaarawi/matchview/internal/api/data"
	"github.com/omarshaarawi/matchview/internal/models"
	"github.com/omarshaarawi/matchview/internal/repository/memory"
)

var (
	ErrInvalidFormat = errors.New("invalid data format")
	ErrNoWeeks       = errors.New("no weeks found")
)

// YearSource fetches a season document from wherever the data files are
// published.
type YearSource interface {
	GetYear(ctx context.Context, year int) (*models.YearDocument, error)
}

type Loader struct {
	source YearSource
	repo   *memory.Repository
}

func NewLoader(source YearSource, repo *memory.Repository) *Loader {
	return &Loader{source: source, repo: repo}
}

// Load returns the document for year, fetching it on first use. Only
// documents that pass validation are cached.
func (l *Loader) Load(ctx context.Context, year int) (*models.YearDocument, error) {
	if doc, ok := l.repo.GetYear(year); ok {
		return doc, nil
	}

	doc, err := l.source.GetYear(ctx, year)
	if err != nil {
		if formatErr := shapeError(err, year); formatErr != nil {
			return nil, formatErr
		}
		return nil, fmt.Errorf("loading %s: %w", data.FileName(year), err)
	}

	if err := validate(doc, year); err != nil {
		return nil, err
	}

	l.repo.SaveYear(year, doc)
	slog.Info("Loaded year", "year", year, "weeks", len(doc.WeekNumbers()), "current_week", doc.InitialWeek())
	return doc, nil
}

// Cached returns the document only if it was loaded before.
func (l *Loader) Cached(year int) (*models.YearDocument, bool) {
	return l.repo.GetYear(year)
}

// CachedYears lists the years loaded so far in ascending order.
func (l *Loader) CachedYears() []int {
	return l.repo.Years()
}

func validate(doc *models.YearDocument, year int) error {
	if doc == nil || doc.Weeks == nil {
		return fmt.Errorf("%w in %s", ErrInvalidFormat, data.FileName(year))
	}
	if len(doc.WeekNumbers()) == 0 {
		return fmt.Errorf("%w in %s", ErrNoWeeks, data.FileName(year))
	}
	return nil
}

// shapeError reports well-formed JSON of the wrong shape the same way
// validate does: a document that is not an object is invalid, and a weeks
// value that is not an object holds no weeks.
func shapeError(err error, year int) error {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return nil
	}
	switch typeErr.Field {
	case "":
		return fmt.Errorf("%w in %s", ErrInvalidFormat, data.FileName(year))
	case "weeks":
		return fmt.Errorf("%w in %s", ErrNoWeeks, data.FileName(year))
	}
	return nil
}

// UserMessage turns a load failure into the text shown on the error panel.
func UserMessage(err error) string {
	var statusErr *data.StatusError
	var transportErr *data.TransportError
	switch {
	case errors.As(err, &statusErr):
		return statusErr.Error()
	case errors.As(err, &transportErr):
		return transportErr.Error()
	case errors.Is(err, ErrInvalidFormat), errors.Is(err, ErrNoWeeks):
		return capitalize(err.Error())
	default:
		return fmt.Sprintf("Failed to load data: %v", err)
	}
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
