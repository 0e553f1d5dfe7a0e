package dto

import (
	"encoding/json"
	"fmt"
	"net/http"
	"paradise/internal/domains/booking/model"
	roomModel "paradise/internal/domains/room/model"
	"paradise/shared/constant"
	"paradise/shared/failure"
	"paradise/shared/timezone"
	"paradise/shared/validator"
	"strconv"
	"strings"
	"time"
)

const (
	MessageName          = "Please enter your full name."
	MessageEmail         = "Enter a valid email."
	MessageRoom          = "Please select a room type."
	MessageGuests        = "Guests must be between 1 and 8."
	MessageCheckin       = "Choose a check-in date."
	MessageCheckout      = "Choose a check-out date."
	MessageCheckoutOrder = "Check-out must be after check-in."
	MessageTerms         = "You must accept the terms."
)

// Numeric holds a number as typed by the guest. JSON clients may send it
// either as a string or as a number.
type Numeric string

func (n *Numeric) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*n = Numeric(text)

		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("guests must be a number or a string: %w", err)
	}

	*n = Numeric(number.String())

	return nil
}

// BookingForm is the raw booking form as submitted.
type BookingForm struct {
	Name     string             `json:"name"     validate:"required"                              msg:"Please enter your full name."`
	Email    string             `json:"email"    validate:"basicemail"                            msg:"Enter a valid email."`
	Room     roomModel.RoomName `json:"room"     validate:"required,paradise"                     msg:"Please select a room type."`
	Guests   Numeric            `json:"guests"   validate:"intrange=1 8"                          msg:"Guests must be between 1 and 8."`
	Checkin  string             `json:"checkin"  validate:"required,isodate"                      msg:"Choose a check-in date."`
	Checkout string             `json:"checkout" validate:"required,isodate,afterfield=Checkin"   msg:"Choose a check-out date." msg_afterfield:"Check-out must be after check-in."`
	Terms    bool               `json:"terms"    validate:"required"                              msg:"You must accept the terms."`
}

// FromRequest binds a parsed url-encoded form. An unchecked checkbox is absent.
func (f *BookingForm) FromRequest(request *http.Request) {
	f.Name = request.PostFormValue(model.FieldName)
	f.Email = request.PostFormValue(model.FieldEmail)
	f.Room = roomModel.RoomName(request.PostFormValue(model.FieldRoom))
	f.Guests = Numeric(request.PostFormValue(model.FieldGuests))
	f.Checkin = request.PostFormValue(model.FieldCheckin)
	f.Checkout = request.PostFormValue(model.FieldCheckout)
	f.Terms = request.PostFormValue(model.FieldTerms) != constant.Empty
}

// Normalize trims the free-text fields the way the guest is expected to mean them.
func (f *BookingForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Guests = Numeric(strings.TrimSpace(string(f.Guests)))
}

// ToDraft normalizes and validates the form. Rejected forms return a
// *failure.FieldFailure with one message per failing field.
func (f *BookingForm) ToDraft() (BookingDraft, error) {
	f.Normalize()

	if err := validator.ValidateStruct(f); err != nil {
		return BookingDraft{}, err //nolint:wrapcheck
	}

	return f.Draft()
}

// Draft converts an already validated form.
func (f *BookingForm) Draft() (BookingDraft, error) {
	guests, err := strconv.ParseFloat(string(f.Guests), 64)
	if err != nil {
		return BookingDraft{}, failure.InvalidFields(map[string]string{model.FieldGuests: MessageGuests}) //nolint:wrapcheck
	}

	checkin, err := timezone.ParseDate(f.Checkin)
	if err != nil {
		return BookingDraft{}, failure.InvalidFields(map[string]string{model.FieldCheckin: MessageCheckin}) //nolint:wrapcheck
	}

	checkout, err := timezone.ParseDate(f.Checkout)
	if err != nil {
		return BookingDraft{}, failure.InvalidFields(map[string]string{model.FieldCheckout: MessageCheckout}) //nolint:wrapcheck
	}

	return BookingDraft{
		Name:     f.Name,
		Email:    f.Email,
		Room:     string(f.Room),
		Guests:   int(guests),
		Checkin:  checkin,
		Checkout: checkout,
	}, nil
}

// BookingDraft is a validated form, ready to become a Booking.
type BookingDraft struct {
	Name     string
	Email    string
	Room     string
	Guests   int
	Checkin  time.Time
	Checkout time.Time
}

func (d BookingDraft) ToModel(ref string, createdAt time.Time) model.Booking {
	return model.Booking{
		Ref:       ref,
		Name:      d.Name,
		Email:     d.Email,
		Room:      d.Room,
		Guests:    d.Guests,
		Checkin:   timezone.FormatDate(d.Checkin),
		Checkout:  timezone.FormatDate(d.Checkout),
		CreatedAt: createdAt.Format(time.RFC3339),
	}
}
