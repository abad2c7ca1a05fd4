package catalogRepo

import (
	"context"

	"strikersyard/models"
)

// CatalogRepository provides read access to the operator-configured slot
// catalog and service list. Neither is mutated by request traffic.
type CatalogRepository interface {
	// ListTimeSlots returns every slot ordered by start time.
	ListTimeSlots(ctx context.Context) ([]models.TimeSlot, error)
	ListServices(ctx context.Context) ([]models.Service, error)
	GetServiceByID(ctx context.Context, id string) (*models.Service, error)
	EnsureIndexes() error
}
