package catalog

import "github.com/m04kA/AC-BookingService/internal/domain"

// DefaultServices каталог демо-стенда
func DefaultServices() []domain.Service {
	return []domain.Service{
		{
			ID:          "svc1",
			Slug:        "ac-service",
			Title:       "AC Service",
			Description: "Routine cleaning & maintenance (filters, coil clean, blower check).",
			BasePrice:   800,
			Variants:    []domain.Variant{{Name: "Split", PriceModifier: 0}, {Name: "Window", PriceModifier: -100}},
		},
		{
			ID:          "svc2",
			Slug:        "ac-repair",
			Title:       "AC Repair",
			Description: "Fault diagnosis & repair (electrical/mechanical).",
			BasePrice:   1200,
			Variants:    []domain.Variant{{Name: "Split", PriceModifier: 0}, {Name: "Window", PriceModifier: -150}},
		},
		{
			ID:          "svc3",
			Slug:        "gas-refill",
			Title:       "Gas Refill",
			Description: "AC refrigerant top-up (est. quantity based).",
			BasePrice:   2500,
			Variants:    []domain.Variant{{Name: "Split", PriceModifier: 0}},
		},
		{
			ID:          "svc4",
			Slug:        "ac-installation",
			Title:       "AC Installation",
			Description: "AC installation and setup.",
			BasePrice:   2200,
			Variants:    []domain.Variant{{Name: "Split", PriceModifier: 0}, {Name: "Window", PriceModifier: -300}},
		},
	}
}

// DefaultTechnicians мастера демо-стенда
func DefaultTechnicians() []domain.Technician {
	return []domain.Technician{
		{ID: "t1", Name: "Ravi Kumar", Phone: "9876500011", Rating: 4.6},
		{ID: "t2", Name: "Suman Singh", Phone: "9876500022", Rating: 4.8},
		{ID: "t3", Name: "Amit Verma", Phone: "9876500033", Rating: 4.4},
		{ID: "t4", Name: "Aman Sharma", Phone: "9876500044", Rating: 4.3},
	}
}
