// Package model holds the records persisted by the registration service.
package model

import (
	"time"

	"github.com/google/uuid"
)

type UserType string

const (
	UserTypeCustomer UserType = "customer"
	UserTypeVendor   UserType = "vendor"
)

// Valid reports whether t is one of the known roles.
func (t UserType) Valid() bool {
	return t == UserTypeCustomer || t == UserTypeVendor
}

// DashboardPath is where the web client sends a user of this role after login.
func (t UserType) DashboardPath() string {
	if t == UserTypeVendor {
		return "/vendor-dashboard"
	}
	return "/buyer-dashboard"
}

// User is an account. Email is unique across all users.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	UserType     UserType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CustomerProfile struct {
	ID                    int64
	UserID                uuid.UUID
	FirstName             string
	LastName              string
	Phone                 string
	DateOfBirth           *time.Time
	Gender                string
	AddressLine1          string
	AddressLine2          string
	City                  string
	State                 string
	PostalCode            string
	Country               string
	EmergencyContactName  string
	EmergencyContactPhone string
}

// FullName is how a customer is displayed in listings.
func (p CustomerProfile) FullName() string {
	return p.FirstName + " " + p.LastName
}

type VendorProfile struct {
	ID                   int64
	UserID               uuid.UUID
	BusinessName         string
	ContactPersonName    string
	Phone                string
	AlternatePhone       string
	BusinessAddressLine1 string
	BusinessAddressLine2 string
	City                 string
	State                string
	PostalCode           string
	Country              string
	BusinessType         string
	YearsInBusiness      *int
	LicenseNumber        string
	TaxID                string
	ServiceAreas         []string
	TankerCapacity       []string
	DeliveryRadiusKM     int
}

// WaterRequirement describes a customer's delivery needs. At most one
// exists per customer profile.
type WaterRequirement struct {
	ID                    int64
	CustomerID            int64
	RequiredQuantity      int
	Frequency             string
	PreferredDeliveryDays []string
	PreferredTimeSlots    []string
	WaterType             string
	StorageCapacity       *int
	SpecialInstructions   string
}

// VendorService is one tanker offering of a vendor.
type VendorService struct {
	ID                   int64
	VendorID             int64
	ServiceName          string
	WaterType            string
	TankerCapacity       int
	PricePerLiter        float64
	MinimumOrderQuantity int
	AvailableDays        []string
	AvailableTimeSlots   []string
	CoverageAreas        []string
}

// UserSummary is one row of the user listing. Name is nil when the user
// has no profile.
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	UserType  UserType  `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
	Name      *string   `json:"name"`
}

// Registration defaults applied when the client omits a value.
const (
	DefaultCountry              = "India"
	DefaultDeliveryRadiusKM     = 50
	DefaultRequiredQuantity     = 5000
	DefaultFrequency            = "weekly"
	DefaultWaterType            = "potable"
	DefaultTankerCapacity       = 5000
	DefaultPricePerLiter        = 1.50
	DefaultMinimumOrderQuantity = 1000
)
