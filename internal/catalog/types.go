package catalog

// Catalog is the unified fixture structure (tours, vehicles, reviews). The
// compiled-in defaults use it, and a CATALOG_FILE override must match it.
type Catalog struct {
	Tours    []TourPackage `json:"tours"`
	Vehicles []Vehicle     `json:"vehicles"`
	Reviews  []Review      `json:"reviews"`
}

// TourPackage is a bookable multi-day tour. Price is per adult in USD.
type TourPackage struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Duration    int            `json:"duration"` // in days
	Image       string         `json:"image"`
	Featured    bool           `json:"featured"`
	Attractions []string       `json:"attractions"`
	Inclusions  []string       `json:"inclusions"`
	Exclusions  []string       `json:"exclusions"`
	CreatedAt   string         `json:"created_at"`
	Itinerary   []ItineraryDay `json:"itinerary,omitempty"` // Optional detailed itinerary
}

type ItineraryDay struct {
	Day            int        `json:"day"`
	Date           string     `json:"date,omitempty"`
	Location       string     `json:"location"`
	Transportation string     `json:"transportation"`
	Accommodation  string     `json:"accommodation"`
	Meals          Meals      `json:"meals"`
	Activities     []Activity `json:"activities"`
}

type Meals struct {
	Breakfast string `json:"breakfast,omitempty"`
	Lunch     string `json:"lunch,omitempty"`
	Dinner    string `json:"dinner,omitempty"`
}

type Activity struct {
	Time        string `json:"time,omitempty"`
	Description string `json:"description"`
	IsOptional  bool   `json:"isOptional,omitempty"`
}

// Vehicle is a rental unit. PricePerDay is in USD.
type Vehicle struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Capacity    int      `json:"capacity"`
	PricePerDay float64  `json:"price_per_day"`
	Image       string   `json:"image"`
	Features    []string `json:"features"`
	Available   bool     `json:"available"`
	CreatedAt   string   `json:"created_at"`
}

// Review is a flat display record; nothing in the backend mutates reviews.
type Review struct {
	ID            string  `json:"id"`
	TourPackageID *string `json:"tour_package_id"`
	VehicleID     *string `json:"vehicle_id"`
	Rating        int     `json:"rating"`
	Comment       string  `json:"comment"`
	UserName      string  `json:"user_name"`
	CreatedAt     string  `json:"created_at"`
}
