package domain

import "time"

// VehicleStatus represents the operational status of a fleet vehicle
type VehicleStatus string

const (
	VehicleAvailable    VehicleStatus = "available"
	VehicleInUse        VehicleStatus = "in_use"
	VehicleMaintenance  VehicleStatus = "maintenance"
	VehicleOutOfService VehicleStatus = "out_of_service"
)

// Vehicle represents a tour vehicle in the fleet.
// Vehicles referenced by availability blocks are never deleted,
// only archived (ArchivedAt set).
type Vehicle struct {
	ID       int64
	Name     string
	Capacity int
	Status   VehicleStatus

	// Brands is the set of brand identifiers the vehicle serves.
	// nil means the vehicle is available to all brands.
	Brands []string

	ArchivedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if the vehicle can be assigned to new tours
func (v *Vehicle) IsBookable() bool {
	return v.ArchivedAt == nil &&
		v.Status != VehicleMaintenance &&
		v.Status != VehicleOutOfService
}

// ServesAllBrands returns true if the vehicle has no brand restriction
func (v *Vehicle) ServesAllBrands() bool {
	return v.Brands == nil
}

// ServesBrand returns true if the vehicle may serve tours of the given brand
func (v *Vehicle) ServesBrand(brandID string) bool {
	if v.ServesAllBrands() {
		return true
	}
	for _, b := range v.Brands {
		if b == brandID {
			return true
		}
	}
	return false
}

// FitsParty returns true if the vehicle has capacity for the given party size
func (v *Vehicle) FitsParty(partySize int) bool {
	return v.Capacity >= partySize
}
