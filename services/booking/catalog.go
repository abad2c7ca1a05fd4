package booking

import (
	"context"
	"fmt"
	"sort"

	catalogRepo "strikersyard/database/repository/catalog"
	"strikersyard/models"
)

// Catalog is the canonical ordered slot list, loaded once per deployment.
// The position of a slot in the ordered list is the sole coordinate system
// for contiguity and duration arithmetic; the position map is precomputed so
// no request ever re-derives an index by scanning.
type Catalog struct {
	slots []models.TimeSlot
	index map[string]int
}

// NewCatalog builds a catalog from the given slots, ordering by start time.
func NewCatalog(slots []models.TimeSlot) *Catalog {
	ordered := make([]models.TimeSlot, len(slots))
	copy(ordered, slots)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Start < ordered[j].Start })

	index := make(map[string]int, len(ordered))
	for i, s := range ordered {
		index[s.ID] = i
	}
	return &Catalog{slots: ordered, index: index}
}

// LoadCatalog fetches the operator-configured slot set and freezes it.
func LoadCatalog(ctx context.Context, repo catalogRepo.CatalogRepository) (*Catalog, error) {
	slots, err := repo.ListTimeSlots(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load slot catalog: %w", err)
	}
	if len(slots) == 0 {
		return nil, fmt.Errorf("slot catalog is empty")
	}
	return NewCatalog(slots), nil
}

// Len returns the number of slots in the catalog.
func (c *Catalog) Len() int {
	return len(c.slots)
}

// Slots returns the ordered slot list. Callers must not mutate it.
func (c *Catalog) Slots() []models.TimeSlot {
	return c.slots
}

// Slot returns the slot at the given catalog position.
func (c *Catalog) Slot(i int) models.TimeSlot {
	return c.slots[i]
}

// Index reports the catalog position of a slot.
func (c *Catalog) Index(slotID string) (int, bool) {
	i, ok := c.index[slotID]
	return i, ok
}

// Slice returns the n-slot contiguous run starting at the given position.
// Reports false when the run would extend past the last defined slot.
func (c *Catalog) Slice(start, n int) ([]models.TimeSlot, bool) {
	if start < 0 || n < 1 || start+n > len(c.slots) {
		return nil, false
	}
	return c.slots[start : start+n], true
}
