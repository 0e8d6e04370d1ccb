package photographer

// UpdateAvailabilityRequest replaces the weekly availability wholesale.
type UpdateAvailabilityRequest struct {
	Availability []AvailabilityEntry `json:"availability" validate:"required,min=1,dive"`
}

// UpdateDetailsRequest updates photographer-editable profile attributes.
// Zero values leave the current attribute untouched.
type UpdateDetailsRequest struct {
	Specialization  string  `json:"specialization" validate:"omitempty,max=200"`
	ExperienceYears int     `json:"experience_years" validate:"omitempty,gte=0,lte=80"`
	FeePerSession   float64 `json:"fee_per_session" validate:"omitempty,gte=0"`
}
