package model

const (
	EntityName = "booking"

	FieldRef      = "ref"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldRoom     = "room"
	FieldGuests   = "guests"
	FieldCheckin  = "checkin"
	FieldCheckout = "checkout"
	FieldTerms    = "terms"
)

// Booking is one confirmed reservation as persisted in the booking list.
// Dates are YYYY-MM-DD and CreatedAt is RFC 3339.
type Booking struct {
	Ref       string `json:"ref"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Room      string `json:"room"`
	Guests    int    `json:"guests"`
	Checkin   string `json:"checkin"`
	Checkout  string `json:"checkout"`
	CreatedAt string `json:"createdAt"`
}
