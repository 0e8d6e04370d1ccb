package booking

// BookAppointmentRequest is the client booking payload.
type BookAppointmentRequest struct {
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot        string `json:"time_slot" validate:"required"`
	PaymentMethodID string `json:"payment_method_id" validate:"required"`
}

// UpdateStatusRequest is the photographer's status transition payload.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=completed cancelled"`
}
