package catalog

// Compiled-in sample catalog. This is the master data the site runs on when
// no CATALOG_FILE override is configured; edits made through the admin
// endpoints mutate the loaded copies, never these literals.

func strptr(s string) *string { return &s }

func defaultCatalog() Catalog {
	return Catalog{
		Tours: []TourPackage{
			{
				ID:          "1",
				Title:       "Sossusvlei Desert Explorer",
				Description: "Five days through the heart of the Namib: the red dunes of Sossusvlei, Deadvlei's white clay pan, Sesriem Canyon and the coastal town of Swakopmund.",
				Price:       1200,
				Duration:    5,
				Image:       "/images/tours/sossusvlei.jpg",
				Featured:    true,
				Attractions: []string{"Sossusvlei", "Deadvlei", "Dune 45", "Sesriem Canyon", "Swakopmund"},
				Inclusions:  []string{"Accommodation", "Private tour vehicle", "English-speaking guide", "Park entrance fees", "Meals as per itinerary"},
				Exclusions:  []string{"International flights", "Travel insurance", "Optional activities", "Drinks"},
				CreatedAt:   "2024-01-10T08:00:00Z",
				Itinerary: []ItineraryDay{
					{
						Day:            1,
						Location:       "Windhoek",
						Transportation: "Private Tour Vehicle",
						Accommodation:  "Windhoek Hilton Hotel or equivalent",
						Meals:          Meals{Lunch: "In-flight meal", Dinner: "Hotel dinner"},
						Activities: []Activity{
							{Time: "19:50", Description: "Arrival in Windhoek"},
							{Description: "Hotel check-in"},
						},
					},
					{
						Day:            2,
						Location:       "Windhoek → Sossusvlei",
						Transportation: "Private Tour Vehicle",
						Accommodation:  "Dead Valley Lodge or equivalent",
						Meals:          Meals{Breakfast: "Hotel breakfast", Lunch: "Solitaire lunch box", Dinner: "Lodge dinner"},
						Activities: []Activity{
							{Time: "08:00", Description: "Departure to the desert"},
							{Time: "12:00", Description: "Lunch at Solitaire"},
							{Time: "14:30", Description: "Arrival at desert lodge"},
							{Time: "17:30", Description: "Sundowner drive", IsOptional: true},
							{Time: "19:00", Description: "Dinner"},
						},
					},
					{
						Day:            3,
						Location:       "Sesriem & Sossusvlei",
						Transportation: "Private Tour Vehicle",
						Accommodation:  "Dead Valley Lodge or equivalent",
						Meals:          Meals{Breakfast: "Packed breakfast", Lunch: "Lodge lunch", Dinner: "Lodge dinner"},
						Activities: []Activity{
							{Time: "05:30", Description: "Desert sunrise experience"},
							{Time: "09:00", Description: "Visit to Sossusvlei and Deadvlei"},
							{Time: "13:00", Description: "Lunch"},
							{Time: "18:00", Description: "Sesriem Canyon sunset"},
							{Time: "19:30", Description: "Dinner"},
						},
					},
					{
						Day:            4,
						Location:       "Sossusvlei → Swakopmund & Walvis Bay",
						Transportation: "Private Tour Vehicle",
						Accommodation:  "Strand Hotel Swakopmund or equivalent",
						Meals:          Meals{Breakfast: "Hotel breakfast", Lunch: "Independent lunch", Dinner: "Local restaurant"},
						Activities: []Activity{
							{Time: "08:00", Description: "Departure to Swakopmund"},
							{Time: "11:00", Description: "Visit Welwitschia plants"},
							{Time: "11:30", Description: "Visit Moon landscape"},
							{Time: "14:00", Description: "Hotel check-in and free time in Swakopmund"},
							{Time: "18:00", Description: "Dinner at local restaurant"},
						},
					},
					{
						Day:            5,
						Location:       "Swakopmund & Walvis Bay",
						Transportation: "Private Tour Vehicle",
						Meals:          Meals{Breakfast: "Hotel breakfast", Lunch: "Local lunch"},
						Activities: []Activity{
							{Time: "08:30", Description: "Morning Sandwich Harbour tour", IsOptional: true},
							{Time: "12:30", Description: "Lunch"},
							{Time: "14:00", Description: "Transfer to airport"},
						},
					},
				},
			},
			{
				ID:          "2",
				Title:       "Etosha Wildlife Safari",
				Description: "Seven days of game drives across Etosha National Park's waterholes and salt pans, with lion, elephant and black rhino sightings, ending in the highlands around Windhoek.",
				Price:       1850,
				Duration:    7,
				Image:       "/images/tours/etosha.jpg",
				Featured:    true,
				Attractions: []string{"Etosha National Park", "Okaukuejo Waterhole", "Halali", "Windhoek"},
				Inclusions:  []string{"Accommodation", "Private tour vehicle", "Game drives", "Park entrance fees", "Meals as per itinerary"},
				Exclusions:  []string{"International flights", "Travel insurance", "Drinks", "Gratuities"},
				CreatedAt:   "2024-01-10T08:00:00Z",
			},
			{
				ID:          "3",
				Title:       "Swakopmund Coastal Adventure",
				Description: "A four-day coastal break: Sandwich Harbour 4x4 excursions, Walvis Bay lagoon, the Moon landscape and free time in Swakopmund's colonial old town.",
				Price:       950,
				Duration:    4,
				Image:       "/images/tours/swakopmund.jpg",
				Featured:    false,
				Attractions: []string{"Swakopmund", "Walvis Bay", "Sandwich Harbour", "Moon Landscape"},
				Inclusions:  []string{"Accommodation", "Airport transfers", "Sandwich Harbour tour", "Breakfast daily"},
				Exclusions:  []string{"Flights", "Lunches and dinners", "Optional activities"},
				CreatedAt:   "2024-01-12T08:00:00Z",
			},
			{
				ID:          "4",
				Title:       "Grand Namibia Circuit",
				Description: "The full loop in ten days: Kalahari, Fish River Canyon, Lüderitz and Kolmanskop ghost town, Sossusvlei, the Skeleton Coast, Damaraland rock art and Etosha.",
				Price:       3200,
				Duration:    10,
				Image:       "/images/tours/grand-circuit.jpg",
				Featured:    false,
				Attractions: []string{"Fish River Canyon", "Kolmanskop", "Sossusvlei", "Skeleton Coast", "Twyfelfontein", "Etosha National Park"},
				Inclusions:  []string{"Accommodation", "Private tour vehicle", "English-speaking guide", "Park entrance fees", "Full board"},
				Exclusions:  []string{"International flights", "Travel insurance", "Optional activities"},
				CreatedAt:   "2024-01-15T08:00:00Z",
			},
		},
		Vehicles: []Vehicle{
			{
				ID:          "1",
				Name:        "Toyota Hilux 4x4 Double Cab",
				Type:        "4x4",
				Capacity:    4,
				PricePerDay: 120,
				Image:       "/images/vehicles/hilux.jpg",
				Features:    []string{"4x4 drivetrain", "Air conditioning", "Long-range fuel tank", "Spare tyres x2"},
				Available:   true,
				CreatedAt:   "2024-01-10T08:00:00Z",
			},
			{
				ID:          "2",
				Name:        "Toyota Land Cruiser Safari",
				Type:        "4x4",
				Capacity:    7,
				PricePerDay: 180,
				Image:       "/images/vehicles/landcruiser.jpg",
				Features:    []string{"4x4 drivetrain", "Pop-up roof", "Fridge", "Air conditioning"},
				Available:   true,
				CreatedAt:   "2024-01-10T08:00:00Z",
			},
			{
				ID:          "3",
				Name:        "Volkswagen Polo",
				Type:        "Sedan",
				Capacity:    4,
				PricePerDay: 45,
				Image:       "/images/vehicles/polo.jpg",
				Features:    []string{"Air conditioning", "Bluetooth radio"},
				Available:   true,
				CreatedAt:   "2024-01-11T08:00:00Z",
			},
			{
				ID:          "4",
				Name:        "Mercedes Sprinter Minibus",
				Type:        "Minibus",
				Capacity:    12,
				PricePerDay: 220,
				Image:       "/images/vehicles/sprinter.jpg",
				Features:    []string{"Air conditioning", "Luggage trailer", "PA system"},
				Available:   true,
				CreatedAt:   "2024-01-11T08:00:00Z",
			},
			{
				ID:          "5",
				Name:        "Ford Ranger with Camping Kit",
				Type:        "4x4",
				Capacity:    5,
				PricePerDay: 150,
				Image:       "/images/vehicles/ranger.jpg",
				Features:    []string{"4x4 drivetrain", "Rooftop tent", "Camping equipment", "Dual battery system"},
				Available:   false,
				CreatedAt:   "2024-01-14T08:00:00Z",
			},
		},
		Reviews: []Review{
			{
				ID:            "1",
				TourPackageID: strptr("1"),
				Rating:        5,
				Comment:       "Watching the sunrise from Dune 45 was worth the whole trip. Our guide knew every corner of the desert.",
				UserName:      "Hannah M.",
				CreatedAt:     "2024-02-02T10:00:00Z",
			},
			{
				ID:            "2",
				TourPackageID: strptr("2"),
				Rating:        5,
				Comment:       "Elephants at the Okaukuejo waterhole at midnight. Unforgettable.",
				UserName:      "Pieter V.",
				CreatedAt:     "2024-02-18T10:00:00Z",
			},
			{
				ID:        "3",
				VehicleID: strptr("2"),
				Rating:    4,
				Comment:   "The Land Cruiser handled the C-roads without a hiccup. Fridge was a lifesaver in the heat.",
				UserName:  "Claire D.",
				CreatedAt: "2024-03-05T10:00:00Z",
			},
		},
	}
}
