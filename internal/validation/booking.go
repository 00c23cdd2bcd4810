// Package validation holds the form rulesets shared by the HTTP handlers and the
// services. Every ruleset is a pure function of its input.
package validation

import "github.com/Domenick1991/vehiclerental/internal/domain"

const (
	FieldVehicleType    = "vehicleType"
	FieldPickupLocation = "pickupLocation"
	FieldPickupDate     = "pickupDate"
	FieldPickupTime     = "pickupTime"
	FieldReturnDate     = "returnDate"
	FieldReturnTime     = "returnTime"
	FieldFullName       = "fullName"
	FieldEmail          = "email"
	FieldPhoneNumber    = "phoneNumber"
)

const (
	MsgVehicleType        = "Please select a vehicle type."
	MsgPickupLocation     = "Pickup location must be at least 2 characters."
	MsgPickupDateRequired = "A pickup date is required."
	MsgReturnDateRequired = "A return date is required."
	MsgTimeFormat         = "Invalid time format (HH:MM)."
	MsgFullName           = "Full name must be at least 3 characters."
	MsgEmail              = "Please enter a valid email address."
	MsgPhoneNumber        = "Please enter a valid phone number."
	MsgReturnBeforePickup = "Return date cannot be before pickup date."
	MsgReturnTimeSameDay  = "Return time must be after pickup time on the same day."
)

// ValidateBookingRequest checks every field of req and then the date/time
// relationships between pickup and return. All failures are reported together.
func ValidateBookingRequest(req domain.BookingRequest) Result {
	var c collector

	c.run(
		check(FieldVehicleType, MsgVehicleType, req.VehicleType.Valid()),
		check(FieldPickupLocation, MsgPickupLocation, minLen(req.PickupLocation, 2)),
		check(FieldPickupDate, MsgPickupDateRequired, !req.PickupDate.IsZero()),
		check(FieldPickupTime, MsgTimeFormat, isTimeOfDay(req.PickupTime)),
		check(FieldReturnDate, MsgReturnDateRequired, !req.ReturnDate.IsZero()),
		check(FieldReturnTime, MsgTimeFormat, isTimeOfDay(req.ReturnTime)),
		check(FieldFullName, MsgFullName, minLen(req.FullName, 3)),
		check(FieldEmail, MsgEmail, isEmail(req.Email)),
		check(FieldPhoneNumber, MsgPhoneNumber, isPhoneNumber(req.PhoneNumber)),
	)

	if req.PickupDate.IsZero() || req.ReturnDate.IsZero() {
		return c.result()
	}

	c.run(
		checkFn(FieldReturnDate, MsgReturnBeforePickup, func() bool {
			return !req.ReturnDate.Before(req.PickupDate)
		}),
		// Zero-padded HH:MM compares chronologically as a string. A malformed
		// time already carries its format error, so there is nothing to compare.
		checkFn(FieldReturnTime, MsgReturnTimeSameDay, func() bool {
			if !req.ReturnDate.Equal(req.PickupDate) {
				return true
			}
			if !isTimeOfDay(req.PickupTime) || !isTimeOfDay(req.ReturnTime) {
				return true
			}
			return req.ReturnTime > req.PickupTime
		}),
	)

	return c.result()
}
