package appointment

import "fmt"

// BookingError carries a stable code the booking screens branch on.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const (
	CodeSlotTaken      = "slotTaken"
	CodeSlotInPast     = "slotInPast"
	CodeDateBlocked    = "dateBlocked"
	CodeSlotNotOffered = "slotNotOffered"
	CodeAlreadyBooked  = "alreadyBooked"
	CodeDoctorInactive = "doctorInactive"
)

func NewBookingError(code, msg string) error {
	return &BookingError{
		Code:    code,
		Message: msg,
	}
}
