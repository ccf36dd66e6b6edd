package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAvailabilityBlock_Overlaps(t *testing.T) {
	base := &AvailabilityBlock{StartTime: "10:00", EndTime: "14:00"}

	tests := []struct {
		name  string
		other *AvailabilityBlock
		want  bool
	}{
		{name: "contained", other: &AvailabilityBlock{StartTime: "11:00", EndTime: "12:00"}, want: true},
		{name: "partial left", other: &AvailabilityBlock{StartTime: "09:00", EndTime: "11:00"}, want: true},
		{name: "partial right", other: &AvailabilityBlock{StartTime: "13:00", EndTime: "15:00"}, want: true},
		{name: "touching end does not overlap", other: &AvailabilityBlock{StartTime: "14:00", EndTime: "16:00"}, want: false},
		{name: "touching start does not overlap", other: &AvailabilityBlock{StartTime: "08:00", EndTime: "10:00"}, want: false},
		{name: "disjoint", other: &AvailabilityBlock{StartTime: "16:00", EndTime: "18:00"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestAvailabilityBlock_HoldLifecycle(t *testing.T) {
	now := time.Now()
	future := now.Add(10 * time.Minute)
	past := now.Add(-time.Minute)

	live := &AvailabilityBlock{Type: BlockHold, ExpiresAt: &future}
	assert.False(t, live.IsExpired(now))
	assert.True(t, live.CanConvert(now))

	expired := &AvailabilityBlock{Type: BlockHold, ExpiresAt: &past}
	assert.True(t, expired.IsExpired(now))
	assert.False(t, expired.CanConvert(now))

	booking := &AvailabilityBlock{Type: BlockBooking}
	assert.False(t, booking.IsExpired(now))
	assert.False(t, booking.CanConvert(now))
}

func TestAvailabilityBlock_CanDeleteDirectly(t *testing.T) {
	assert.True(t, (&AvailabilityBlock{Type: BlockMaintenance}).CanDeleteDirectly())
	assert.True(t, (&AvailabilityBlock{Type: BlockHold}).CanDeleteDirectly())
	assert.False(t, (&AvailabilityBlock{Type: BlockBooking}).CanDeleteDirectly())
	assert.False(t, (&AvailabilityBlock{Type: BlockBuffer}).CanDeleteDirectly())
}

func TestVehicle_IsBookable(t *testing.T) {
	now := time.Now()

	assert.True(t, (&Vehicle{Status: VehicleAvailable}).IsBookable())
	assert.True(t, (&Vehicle{Status: VehicleInUse}).IsBookable())
	assert.False(t, (&Vehicle{Status: VehicleMaintenance}).IsBookable())
	assert.False(t, (&Vehicle{Status: VehicleOutOfService}).IsBookable())
	assert.False(t, (&Vehicle{Status: VehicleAvailable, ArchivedAt: &now}).IsBookable())
}

func TestVehicle_ServesBrand(t *testing.T) {
	unrestricted := &Vehicle{}
	assert.True(t, unrestricted.ServesAllBrands())
	assert.True(t, unrestricted.ServesBrand("vinetours"))

	restricted := &Vehicle{Brands: []string{"vinetours", "luxe"}}
	assert.False(t, restricted.ServesAllBrands())
	assert.True(t, restricted.ServesBrand("luxe"))
	assert.False(t, restricted.ServesBrand("other"))
}

func TestBlackoutDate_AppliesTo(t *testing.T) {
	brand := "vinetours"
	other := "luxe"

	global := &BlackoutDate{Reason: "Annual fleet inspection"}
	assert.True(t, global.AppliesTo(nil))
	assert.True(t, global.AppliesTo(&brand))

	scoped := &BlackoutDate{BrandID: &brand, Reason: "Brand event"}
	assert.False(t, scoped.AppliesTo(nil))
	assert.True(t, scoped.AppliesTo(&brand))
	assert.False(t, scoped.AppliesTo(&other))
}
