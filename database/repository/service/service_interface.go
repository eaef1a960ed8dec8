package serviceRepo

import (
	"context"

	"mesafy/models"
)

// ServiceRepository defines access to service window definitions.
type ServiceRepository interface {
	// ListActive returns the restaurant's active services ordered by
	// createdAt ascending, the order the matcher's tie-break depends on.
	ListActive(ctx context.Context, restaurantID string) ([]models.Service, error)

	List(ctx context.Context, restaurantID string) ([]models.Service, error)
	GetByID(ctx context.Context, serviceID string) (*models.Service, error)
	Create(ctx context.Context, svc *models.Service) error
	SetActive(ctx context.Context, serviceID string, active bool) error
}
