package booking

// AppointmentsReport aggregates a photographer's appointment window for the
// dashboard graphs.
type AppointmentsReport struct {
	Total      int            `json:"total"`
	Pending    int            `json:"pending"`
	Completed  int            `json:"completed"`
	Cancelled  int            `json:"cancelled"`
	Revenue    float64        `json:"revenue"`
	ByTimeSlot map[string]int `json:"byTimeSlot"`
	ByStatus   map[string]int `json:"byStatus"`
	ByDate     map[string]int `json:"byDate"`
}

// BuildAppointmentsReport tallies appointments by slot, status and date.
// Revenue counts paid appointments only.
func BuildAppointmentsReport(appointments []WithParticipants) *AppointmentsReport {
	report := &AppointmentsReport{
		ByTimeSlot: make(map[string]int),
		ByStatus:   make(map[string]int),
		ByDate:     make(map[string]int),
	}

	for _, a := range appointments {
		report.Total++
		switch a.Status {
		case StatusPending:
			report.Pending++
		case StatusCompleted:
			report.Completed++
		case StatusCancelled:
			report.Cancelled++
		}
		if a.PaymentStatus == PaymentPaid && a.Amount.Valid {
			report.Revenue += a.Amount.Float64
		}
		report.ByTimeSlot[a.TimeSlot]++
		report.ByStatus[string(a.Status)]++
		report.ByDate[a.Date.Format("2006-01-02")]++
	}

	return report
}

