package repository

import (
	"context"
	"fmt"

	"github.com/rk2835/aquahub/internal/database"
	"github.com/rk2835/aquahub/internal/model"
)

type VendorRepository struct {
	db database.DBTX
}

func NewVendorRepository(db database.DBTX) *VendorRepository {
	return &VendorRepository{db: db}
}

// CreateProfile inserts the profile and sets its generated ID.
func (r *VendorRepository) CreateProfile(ctx context.Context, p *model.VendorProfile) error {
	query := `
		INSERT INTO vendor_profiles (
			user_id, business_name, contact_person_name, phone, alternate_phone,
			business_address_line1, business_address_line2, city, state, postal_code,
			country, business_type, years_in_business, license_number, tax_id,
			service_areas, tanker_capacity, delivery_radius_km
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		p.UserID, p.BusinessName, p.ContactPersonName, p.Phone, p.AlternatePhone,
		p.BusinessAddressLine1, p.BusinessAddressLine2, p.City, p.State, p.PostalCode,
		p.Country, p.BusinessType, p.YearsInBusiness, p.LicenseNumber, p.TaxID,
		textArray(p.ServiceAreas), textArray(p.TankerCapacity), p.DeliveryRadiusKM,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert vendor profile: %w", err)
	}

	return nil
}

func (r *VendorRepository) CreateService(ctx context.Context, s *model.VendorService) error {
	query := `
		INSERT INTO vendor_services (
			vendor_id, service_name, water_type, tanker_capacity, price_per_liter,
			minimum_order_quantity, available_days, available_time_slots, coverage_areas
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		s.VendorID, s.ServiceName, s.WaterType, s.TankerCapacity, s.PricePerLiter,
		s.MinimumOrderQuantity, textArray(s.AvailableDays), textArray(s.AvailableTimeSlots),
		textArray(s.CoverageAreas),
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("insert vendor service: %w", err)
	}

	return nil
}
