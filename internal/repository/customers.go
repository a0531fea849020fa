package repository

import (
	"context"
	"fmt"

	"github.com/rk2835/aquahub/internal/database"
	"github.com/rk2835/aquahub/internal/model"
)

type CustomerRepository struct {
	db database.DBTX
}

func NewCustomerRepository(db database.DBTX) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// CreateProfile inserts the profile and sets its generated ID.
func (r *CustomerRepository) CreateProfile(ctx context.Context, p *model.CustomerProfile) error {
	query := `
		INSERT INTO customer_profiles (
			user_id, first_name, last_name, phone, date_of_birth, gender,
			address_line1, address_line2, city, state, postal_code, country,
			emergency_contact_name, emergency_contact_phone
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		p.UserID, p.FirstName, p.LastName, p.Phone, p.DateOfBirth, p.Gender,
		p.AddressLine1, p.AddressLine2, p.City, p.State, p.PostalCode, p.Country,
		p.EmergencyContactName, p.EmergencyContactPhone,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert customer profile: %w", err)
	}

	return nil
}

func (r *CustomerRepository) CreateWaterRequirement(ctx context.Context, w *model.WaterRequirement) error {
	query := `
		INSERT INTO customer_water_requirements (
			customer_id, required_quantity, frequency, preferred_delivery_days,
			preferred_time_slots, water_type, storage_capacity, special_instructions
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		w.CustomerID, w.RequiredQuantity, w.Frequency, textArray(w.PreferredDeliveryDays),
		textArray(w.PreferredTimeSlots), w.WaterType, w.StorageCapacity, w.SpecialInstructions,
	).Scan(&w.ID)
	if err != nil {
		return fmt.Errorf("insert water requirement: %w", err)
	}

	return nil
}
