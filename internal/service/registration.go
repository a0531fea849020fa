package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rk2835/aquahub/internal/model"
	"github.com/rs/zerolog"
)

// WelcomeEnqueuer schedules the welcome email. *job.JobService implements it.
type WelcomeEnqueuer interface {
	EnqueueWelcomeEmail(ctx context.Context, to, name, userType string) error
}

type RegistrationService struct {
	store   Store
	hasher  PasswordHasher
	welcome WelcomeEnqueuer
	logger  *zerolog.Logger
	newID   func() uuid.UUID
}

// NewRegistrationService wires the service. welcome may be nil, in which
// case no welcome email is scheduled.
func NewRegistrationService(store Store, hasher PasswordHasher, welcome WelcomeEnqueuer, logger *zerolog.Logger) *RegistrationService {
	return &RegistrationService{
		store:   store,
		hasher:  hasher,
		welcome: welcome,
		logger:  logger,
		newID:   uuid.New,
	}
}

// RegisterCustomer creates the user, the customer profile and, when given,
// the water requirement in one transaction. A taken email surfaces as the
// users_email_key unique violation.
func (s *RegistrationService) RegisterCustomer(ctx context.Context, req *model.CustomerRegistration) (*model.RegistrationResponse, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           s.newID(),
		Email:        req.Email,
		PasswordHash: hash,
		UserType:     model.UserTypeCustomer,
	}
	profile := newCustomerProfile(user.ID, req, dob)

	err = s.store.InTx(ctx, func(ctx context.Context, repos Repos) error {
		if err := repos.Users.Create(ctx, user); err != nil {
			return err
		}
		if err := repos.Customers.CreateProfile(ctx, profile); err != nil {
			return err
		}
		if req.WaterRequirements != nil {
			if err := repos.Customers.CreateWaterRequirement(ctx, newWaterRequirement(profile.ID, req.WaterRequirements)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("register customer: %w", err)
	}

	s.enqueueWelcome(ctx, user, profile.FullName())

	return &model.RegistrationResponse{
		Message: "Customer registered successfully",
		UserID:  user.ID,
	}, nil
}

// RegisterVendor creates the user, the vendor profile and one row per
// offered service in one transaction.
func (s *RegistrationService) RegisterVendor(ctx context.Context, req *model.VendorRegistration) (*model.RegistrationResponse, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           s.newID(),
		Email:        req.Email,
		PasswordHash: hash,
		UserType:     model.UserTypeVendor,
	}
	profile := newVendorProfile(user.ID, req)

	err = s.store.InTx(ctx, func(ctx context.Context, repos Repos) error {
		if err := repos.Users.Create(ctx, user); err != nil {
			return err
		}
		if err := repos.Vendors.CreateProfile(ctx, profile); err != nil {
			return err
		}
		for i := range req.Services {
			if err := repos.Vendors.CreateService(ctx, newVendorService(profile.ID, &req.Services[i])); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("register vendor: %w", err)
	}

	s.enqueueWelcome(ctx, user, profile.BusinessName)

	return &model.RegistrationResponse{
		Message: "Vendor registered successfully",
		UserID:  user.ID,
	}, nil
}

// enqueueWelcome never fails the registration; the account already exists.
func (s *RegistrationService) enqueueWelcome(ctx context.Context, user *model.User, name string) {
	if s.welcome == nil {
		return
	}

	if err := s.welcome.EnqueueWelcomeEmail(ctx, user.Email, name, string(user.UserType)); err != nil {
		s.logger.Warn().
			Err(err).
			Str("user_id", user.ID.String()).
			Msg("failed to enqueue welcome email")
	}
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	t, err := time.Parse(model.DateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("parse dateOfBirth: %w", err)
	}
	return &t, nil
}

func newCustomerProfile(userID uuid.UUID, req *model.CustomerRegistration, dob *time.Time) *model.CustomerProfile {
	return &model.CustomerProfile{
		UserID:                userID,
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		Phone:                 req.Phone,
		DateOfBirth:           dob,
		Gender:                req.Gender,
		AddressLine1:          req.Address,
		AddressLine2:          req.Address2,
		City:                  req.City,
		State:                 req.State,
		PostalCode:            req.PostalCode,
		Country:               orDefault(req.Country, model.DefaultCountry),
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
	}
}

func newWaterRequirement(customerID int64, req *model.WaterRequirements) *model.WaterRequirement {
	return &model.WaterRequirement{
		CustomerID:            customerID,
		RequiredQuantity:      intOrDefault(req.Quantity, model.DefaultRequiredQuantity),
		Frequency:             orDefault(req.Frequency, model.DefaultFrequency),
		PreferredDeliveryDays: req.PreferredDays,
		PreferredTimeSlots:    req.PreferredTimeSlots,
		WaterType:             orDefault(req.WaterType, model.DefaultWaterType),
		StorageCapacity:       req.StorageCapacity,
		SpecialInstructions:   req.SpecialInstructions,
	}
}

func newVendorProfile(userID uuid.UUID, req *model.VendorRegistration) *model.VendorProfile {
	return &model.VendorProfile{
		UserID:               userID,
		BusinessName:         req.BusinessName,
		ContactPersonName:    req.ContactPersonName,
		Phone:                req.Phone,
		AlternatePhone:       req.AlternatePhone,
		BusinessAddressLine1: req.BusinessAddress,
		BusinessAddressLine2: req.BusinessAddress2,
		City:                 req.City,
		State:                req.State,
		PostalCode:           req.PostalCode,
		Country:              orDefault(req.Country, model.DefaultCountry),
		BusinessType:         req.BusinessType,
		YearsInBusiness:      req.YearsInBusiness,
		LicenseNumber:        req.LicenseNumber,
		TaxID:                req.TaxID,
		ServiceAreas:         req.ServiceAreas,
		TankerCapacity:       req.TankerCapacity,
		DeliveryRadiusKM:     intOrDefault(req.DeliveryRadius, model.DefaultDeliveryRadiusKM),
	}
}

func newVendorService(vendorID int64, offer *model.ServiceOffer) *model.VendorService {
	price := model.DefaultPricePerLiter
	if offer.PricePerLiter != nil {
		price = *offer.PricePerLiter
	}

	return &model.VendorService{
		VendorID:             vendorID,
		ServiceName:          offer.ServiceName,
		WaterType:            orDefault(offer.WaterType, model.DefaultWaterType),
		TankerCapacity:       intOrDefault(offer.TankerCapacity, model.DefaultTankerCapacity),
		PricePerLiter:        price,
		MinimumOrderQuantity: intOrDefault(offer.MinimumOrder, model.DefaultMinimumOrderQuantity),
		AvailableDays:        offer.AvailableDays,
		AvailableTimeSlots:   offer.AvailableTimeSlots,
		CoverageAreas:        offer.CoverageAreas,
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func intOrDefault(value *int, fallback int) int {
	if value == nil {
		return fallback
	}
	return *value
}
