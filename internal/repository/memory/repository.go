package memory

import (
	"slices"
	"sync"

	"github.com/omarshaarawi/matchview/internal/models"
)

// Repository holds every year document loaded during the process lifetime.
// Entries are never evicted or refreshed.
type Repository struct {
	years map[int]*models.YearDocument
	mu    sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{years: make(map[int]*models.YearDocument)}
}

func (r *Repository) SaveYear(year int, doc *models.YearDocument) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.years[year] = doc
}

func (r *Repository) GetYear(year int) (*models.YearDocument, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.years[year]
	return doc, ok
}

// Years lists the cached years in ascending order.
func (r *Repository) Years() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	years := make([]int, 0, len(r.years))
	for y := range r.years {
		years = append(years, y)
	}
	slices.Sort(years)
	return years
}
