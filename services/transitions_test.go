package services

import (
	"testing"

	"transport-app/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTrip(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{models.TripPlanned, models.TripRunning, true},
		{models.TripRunning, models.TripCompleted, true},
		{models.TripPlanned, models.TripCancelled, true},
		{models.TripRunning, models.TripCancelled, true},
		{models.TripPlanned, models.TripCompleted, false},
		{models.TripCompleted, models.TripRunning, false},
		{models.TripCancelled, models.TripRunning, false},
		{models.TripCompleted, models.TripCancelled, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransitionTrip(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestCanTransitionMaintenance(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{models.MaintenanceScheduled, models.MaintenanceInProgress, true},
		{models.MaintenanceOverdue, models.MaintenanceInProgress, true},
		{models.MaintenanceInProgress, models.MaintenanceCompleted, true},
		{models.MaintenanceScheduled, models.MaintenanceCancelled, true},
		{models.MaintenanceOverdue, models.MaintenanceCancelled, true},
		{models.MaintenanceScheduled, models.MaintenanceCompleted, false},
		{models.MaintenanceCompleted, models.MaintenanceInProgress, false},
		{models.MaintenanceCancelled, models.MaintenanceInProgress, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransitionMaintenance(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestCanTransitionDelivery(t *testing.T) {
	assert.True(t, CanTransitionDelivery(models.DeliveryPending, models.DeliveryInTransit))
	assert.True(t, CanTransitionDelivery(models.DeliveryInTransit, models.DeliveryDelivered))
	assert.False(t, CanTransitionDelivery(models.DeliveryPending, models.DeliveryDelivered))
	assert.False(t, CanTransitionDelivery(models.DeliveryDelivered, models.DeliveryInTransit))
}
