package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/m04kA/AC-BookingService/internal/domain"
)

type fileCatalog struct {
	Services    []fileService    `yaml:"services"`
	Technicians []fileTechnician `yaml:"technicians"`
}

type fileService struct {
	ID          string        `yaml:"id"`
	Slug        string        `yaml:"slug"`
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	BasePrice   float64       `yaml:"base_price"`
	Variants    []fileVariant `yaml:"variants"`
}

type fileVariant struct {
	Name          string  `yaml:"name"`
	PriceModifier float64 `yaml:"price_modifier"`
}

type fileTechnician struct {
	ID     string  `yaml:"id"`
	Name   string  `yaml:"name"`
	Phone  string  `yaml:"phone"`
	Rating float64 `yaml:"rating"`
}

// Load создает каталог из YAML файла. Пустой путь - встроенный каталог демо-стенда.
func Load(path string) (*Service, error) {
	if path == "" {
		return NewService(DefaultServices(), DefaultTechnicians())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	return Parse(data)
}

// Parse разбирает YAML каталог
func Parse(data []byte) (*Service, error) {
	var fc fileCatalog
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	services := make([]domain.Service, 0, len(fc.Services))
	for _, s := range fc.Services {
		variants := make([]domain.Variant, 0, len(s.Variants))
		for _, v := range s.Variants {
			variants = append(variants, domain.Variant{Name: v.Name, PriceModifier: v.PriceModifier})
		}
		services = append(services, domain.Service{
			ID:          s.ID,
			Slug:        s.Slug,
			Title:       s.Title,
			Description: s.Description,
			BasePrice:   s.BasePrice,
			Variants:    variants,
		})
	}

	technicians := make([]domain.Technician, 0, len(fc.Technicians))
	for _, t := range fc.Technicians {
		technicians = append(technicians, domain.Technician{ID: t.ID, Name: t.Name, Phone: t.Phone, Rating: t.Rating})
	}

	return NewService(services, technicians)
}
