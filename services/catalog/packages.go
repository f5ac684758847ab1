package catalog

import (
	"washly/models"
	"washly/utils"
)

var packages = []models.ServicePackage{
	{
		ID:          "basic",
		Name:        "Basic Wash",
		Description: "Exterior wash and quick interior clean",
		Price:       29.99,
		Duration:    "30-45 min",
	},
	{
		ID:          "premium",
		Name:        "Premium Wash",
		Description: "Detailed interior and exterior cleaning",
		Price:       49.99,
		Duration:    "60-75 min",
	},
	{
		ID:          "deluxe",
		Name:        "Deluxe Detail",
		Description: "Comprehensive detailing service",
		Price:       89.99,
		Duration:    "2-3 hours",
	},
}

// ListPackages returns all bookable wash packages.
func (s *DefaultCatalogService) ListPackages() []models.ServicePackage {
	out := make([]models.ServicePackage, len(packages))
	copy(out, packages)
	return out
}

// PackageByID resolves a package by its identifier.
func (s *DefaultCatalogService) PackageByID(id string) (*models.ServicePackage, error) {
	for _, p := range packages {
		if p.ID == id {
			pkg := p
			return &pkg, nil
		}
	}
	return nil, utils.NewValidationError("unknown service package %q", id)
}
