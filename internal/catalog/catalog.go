package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/careermitra/careermitra-backend/internal/domain"
	"github.com/careermitra/careermitra-backend/internal/platform/logger"
)

//go:embed careers.json
var embeddedCareers []byte

const catalogPathEnv = "CAREER_CATALOG_PATH"

// Catalog is the immutable in-memory career table, loaded once at startup
// and shared read-only by every request.
type Catalog struct {
	records []domain.CareerRecord
	byName  map[string]int
}

// Load reads the embedded career catalog, or the file named by
// CAREER_CATALOG_PATH when set. Career names must be unique.
func Load(log *logger.Logger) (*Catalog, error) {
	raw := embeddedCareers
	if path := strings.TrimSpace(os.Getenv(catalogPathEnv)); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			if log != nil {
				log.Warn("career catalog override unreadable, using embedded copy", "path", path, "error", err)
			}
		} else {
			raw = b
		}
	}

	var records []domain.CareerRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse career catalog: %w", err)
	}
	cat, err := New(records)
	if err != nil {
		return nil, err
	}
	if log != nil {
		log.Info("career catalog loaded", "careers", cat.Len())
	}
	return cat, nil
}

// New builds a catalog from records, rejecting empty or duplicate names.
func New(records []domain.CareerRecord) (*Catalog, error) {
	byName := make(map[string]int, len(records))
	for i, r := range records {
		name := strings.TrimSpace(r.Career)
		if name == "" {
			return nil, fmt.Errorf("career catalog entry %d has an empty name", i)
		}
		if _, dup := byName[r.Career]; dup {
			return nil, fmt.Errorf("duplicate career %q in catalog", r.Career)
		}
		byName[r.Career] = i
	}
	return &Catalog{records: records, byName: byName}, nil
}

// Records returns the backing slice for read-only iteration, in catalog order.
func (c *Catalog) Records() []domain.CareerRecord { return c.records }

// Find looks a record up by exact career name.
func (c *Catalog) Find(name string) (domain.CareerRecord, bool) {
	i, ok := c.byName[name]
	if !ok {
		return domain.CareerRecord{}, false
	}
	return c.records[i], true
}

func (c *Catalog) Len() int { return len(c.records) }
