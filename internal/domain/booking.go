package domain

import "time"

type VehicleType string

const (
	VehicleTypeThreeWheeler VehicleType = "three-wheeler"
	VehicleTypeVan          VehicleType = "van"
	VehicleTypeBus          VehicleType = "bus"
	VehicleTypeCar          VehicleType = "car"
)

// VehicleTypes lists the bookable vehicle types in display order.
var VehicleTypes = []VehicleType{
	VehicleTypeThreeWheeler,
	VehicleTypeVan,
	VehicleTypeBus,
	VehicleTypeCar,
}

func (v VehicleType) Valid() bool {
	switch v {
	case VehicleTypeThreeWheeler, VehicleTypeVan, VehicleTypeBus, VehicleTypeCar:
		return true
	}
	return false
}

// BookingRequest is what a prospective customer submits from the booking form.
// Times are zero-padded 24-hour "HH:MM" strings.
type BookingRequest struct {
	VehicleType     VehicleType `json:"vehicleType"`
	PickupLocation  string      `json:"pickupLocation"`
	DropoffLocation string      `json:"dropoffLocation,omitempty"`
	PickupDate      Date        `json:"pickupDate"`
	PickupTime      string      `json:"pickupTime"`
	ReturnDate      Date        `json:"returnDate"`
	ReturnTime      string      `json:"returnTime"`
	FullName        string      `json:"fullName"`
	Email           string      `json:"email"`
	PhoneNumber     string      `json:"phoneNumber"`
	SpecialRequests string      `json:"specialRequests,omitempty"`
	GoKeyless       bool        `json:"goKeyless"`
}

// Submission is the acknowledgement handed back once a booking request is accepted.
type Submission struct {
	Reference   string
	Title       string
	Description string
	SubmittedAt time.Time
	Request     BookingRequest
}

const (
	SubmissionTitle       = "Booking Request Submitted!"
	SubmissionDescription = "We have received your request and will contact you shortly."
)
