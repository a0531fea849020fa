package model

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rk2835/aquahub/internal/validation"
)

// DateLayout is the accepted dateOfBirth format.
const DateLayout = "2006-01-02"

// CustomerRegistration is the body of POST /api/register/customer. Required
// fields are declared first, in the order they are checked.
type CustomerRegistration struct {
	Email      string `json:"email" validate:"required,email,max=254"`
	Password   string `json:"password" validate:"required,max=72" trim:"-"`
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`

	DateOfBirth           string             `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Gender                string             `json:"gender"`
	Address2              string             `json:"address2"`
	Country               string             `json:"country"`
	EmergencyContactName  string             `json:"emergencyContactName"`
	EmergencyContactPhone string             `json:"emergencyContactPhone"`
	WaterRequirements     *WaterRequirements `json:"waterRequirements"`
}

type WaterRequirements struct {
	Quantity            *int     `json:"quantity" validate:"omitempty,min=0"`
	Frequency           string   `json:"frequency"`
	PreferredDays       []string `json:"preferredDays"`
	PreferredTimeSlots  []string `json:"preferredTimeSlots"`
	WaterType           string   `json:"waterType"`
	StorageCapacity     *int     `json:"storageCapacity" validate:"omitempty,min=0"`
	SpecialInstructions string   `json:"specialInstructions"`
}

func (r *CustomerRegistration) Validate() error {
	validation.TrimStrings(r)
	r.Email = NormalizeEmail(r.Email)
	return validation.Struct(r)
}

// VendorRegistration is the body of POST /api/register/vendor.
type VendorRegistration struct {
	Email             string `json:"email" validate:"required,email,max=254"`
	Password          string `json:"password" validate:"required,max=72" trim:"-"`
	BusinessName      string `json:"businessName" validate:"required"`
	ContactPersonName string `json:"contactPersonName" validate:"required"`
	Phone             string `json:"phone" validate:"required"`
	BusinessAddress   string `json:"businessAddress" validate:"required"`
	City              string `json:"city" validate:"required"`
	State             string `json:"state" validate:"required"`
	PostalCode        string `json:"postalCode" validate:"required"`

	AlternatePhone   string         `json:"alternatePhone"`
	BusinessAddress2 string         `json:"businessAddress2"`
	Country          string         `json:"country"`
	BusinessType     string         `json:"businessType"`
	YearsInBusiness  *int           `json:"yearsInBusiness" validate:"omitempty,min=0"`
	LicenseNumber    string         `json:"licenseNumber"`
	TaxID            string         `json:"taxId"`
	ServiceAreas     []string       `json:"serviceAreas"`
	TankerCapacity   []string       `json:"tankerCapacity"`
	DeliveryRadius   *int           `json:"deliveryRadius" validate:"omitempty,min=0"`
	Services         []ServiceOffer `json:"services" validate:"dive"`
}

// ServiceOffer is one element of VendorRegistration.Services.
type ServiceOffer struct {
	ServiceName        string   `json:"serviceName"`
	WaterType          string   `json:"waterType"`
	TankerCapacity     *int     `json:"tankerCapacity" validate:"omitempty,min=0"`
	PricePerLiter      *float64 `json:"pricePerLiter" validate:"omitempty,min=0"`
	MinimumOrder       *int     `json:"minimumOrder" validate:"omitempty,min=0"`
	AvailableDays      []string `json:"availableDays"`
	AvailableTimeSlots []string `json:"availableTimeSlots"`
	CoverageAreas      []string `json:"coverageAreas"`
}

func (r *VendorRegistration) Validate() error {
	validation.TrimStrings(r)
	r.Email = NormalizeEmail(r.Email)
	return validation.Struct(r)
}

// RegistrationResponse is returned with 201 on successful sign-up.
type RegistrationResponse struct {
	Message string    `json:"message"`
	UserID  uuid.UUID `json:"userId"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required" trim:"-"`
}

func (r *LoginRequest) Validate() error {
	validation.TrimStrings(r)
	r.Email = NormalizeEmail(r.Email)
	return validation.Struct(r)
}

type LoginUser struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	UserType UserType  `json:"userType"`
	Name     *string   `json:"name"`
}

type LoginResponse struct {
	Success  bool      `json:"success"`
	User     LoginUser `json:"user"`
	Redirect string    `json:"redirect"`
}

// ListUsersRequest carries no parameters; the listing is unfiltered.
type ListUsersRequest struct{}

func (r *ListUsersRequest) Validate() error {
	return nil
}

type UserListResponse struct {
	Users []UserSummary `json:"users"`
}

// NormalizeEmail trims and lower-cases an address so that case variants
// map to the same account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
