package models

// Restaurant is the owning aggregate for tables and service windows. The
// availability engine only ever reads it.
type Restaurant struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Timezone string `bson:"timezone" json:"timezone"` // e.g., "Europe/Madrid"
}

// Table is a bookable unit of seating capacity within a restaurant.
type Table struct {
	ID           string `bson:"id" json:"id"`
	RestaurantID string `bson:"restaurantId" json:"restaurantId"`
	Label        string `bson:"label" json:"label"`                           // e.g., "T4" or "Window 2"
	Capacity     int    `bson:"capacity" json:"capacity"`                     // seats, >= 1
	Location     string `bson:"location,omitempty" json:"location,omitempty"` // e.g., "terrace", "main room"
	Accessible   bool   `bson:"accessible" json:"accessible"`
}
