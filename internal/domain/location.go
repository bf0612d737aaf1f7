package domain

import "context"

// Location is a physical venue that reservations book.
type Location struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Building    string `json:"building"`
	Room        string `json:"room"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
}

// Category is a static label grouping for events.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LocationView is a venue together with its approved reservations.
type LocationView struct {
	Location     *Location       `json:"location"`
	Reservations []*EventDetails `json:"reservations"`
}

// LocationRepository defines the interface for venue storage.
type LocationRepository interface {
	List(ctx context.Context) ([]*Location, error)
	GetByID(ctx context.Context, id string) (*Location, error)
}

// CategoryRepository defines the interface for category reference data.
type CategoryRepository interface {
	List(ctx context.Context) ([]*Category, error)
	GetByID(ctx context.Context, id string) (*Category, error)
}

// DirectoryService exposes the venue and category reference data used by
// event forms and the venue detail view.
type DirectoryService interface {
	ListLocations(ctx context.Context) ([]*Location, error)
	GetLocation(ctx context.Context, locationID string) (*LocationView, error)
	ListCategories(ctx context.Context) ([]*Category, error)
}
