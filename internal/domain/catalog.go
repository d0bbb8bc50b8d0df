package domain

// Service an AC service offered in the catalog
type Service struct {
	ID          string
	Slug        string
	Title       string
	Description string
	BasePrice   float64
	Variants    []Variant
}

// Variant service variant (unit type) with a price modifier
type Variant struct {
	Name          string
	PriceModifier float64
}

// Technician field technician who can be dispatched to bookings
type Technician struct {
	ID     string
	Name   string
	Phone  string
	Rating float64
}

// PriceFor returns the unit price for a variant.
// Empty variant means the base price.
func (s *Service) PriceFor(variant string) (float64, bool) {
	if variant == "" {
		return s.BasePrice, true
	}
	for _, v := range s.Variants {
		if v.Name == variant {
			return s.BasePrice + v.PriceModifier, true
		}
	}
	return 0, false
}
