package services

import "transport-app/models"

// Allowed predecessor states per target state, one table per lifecycle.
// OVERDUE states are sweep-derived and never requested by a caller directly.

var tripTransitions = map[string][]string{
	models.TripRunning:   {models.TripPlanned},
	models.TripCompleted: {models.TripRunning},
	models.TripCancelled: {models.TripPlanned, models.TripRunning},
}

var maintenanceTransitions = map[string][]string{
	models.MaintenanceInProgress: {models.MaintenanceScheduled, models.MaintenanceOverdue},
	models.MaintenanceCompleted:  {models.MaintenanceInProgress},
	models.MaintenanceCancelled:  {models.MaintenanceScheduled, models.MaintenanceInProgress, models.MaintenanceOverdue},
}

var deliveryTransitions = map[string][]string{
	models.DeliveryInTransit: {models.DeliveryPending},
	models.DeliveryDelivered: {models.DeliveryInTransit},
}

func canTransition(table map[string][]string, from, to string) bool {
	for _, allowed := range table[to] {
		if allowed == from {
			return true
		}
	}
	return false
}

func CanTransitionTrip(from, to string) bool {
	return canTransition(tripTransitions, from, to)
}

func CanTransitionMaintenance(from, to string) bool {
	return canTransition(maintenanceTransitions, from, to)
}

func CanTransitionDelivery(from, to string) bool {
	return canTransition(deliveryTransitions, from, to)
}
