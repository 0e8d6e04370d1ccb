package booking

import "errors"

var (
	ErrInvalidRequest      = errors.New("all fields are required")
	ErrPhotographerMissing = errors.New("photographer not found")
	ErrAppointmentMissing  = errors.New("appointment not found")
	ErrSlotNotOffered      = errors.New("selected time slot is not available")
	ErrSlotAlreadyBooked   = errors.New("time slot already booked, choose another slot")
	ErrPaymentDeclined     = errors.New("payment declined, please try another card")
	ErrInvalidTransition   = errors.New("appointment is already in a final state")
	ErrInvalidStatus       = errors.New("invalid status, allowed values: 'completed', 'cancelled'")
)
