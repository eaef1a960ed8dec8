package restaurantRepo

import (
	"context"

	"mesafy/models"
)

// RestaurantRepository defines read access to restaurants and their tables,
// plus the admin table surface. The availability engine only uses the reads.
type RestaurantRepository interface {
	GetByID(ctx context.Context, restaurantID string) (*models.Restaurant, error)
	ListTables(ctx context.Context, restaurantID string) ([]models.Table, error)

	CreateTable(ctx context.Context, table *models.Table) error
	UpdateTable(ctx context.Context, table *models.Table) error
	DeleteTable(ctx context.Context, restaurantID, tableID string) error
}
