package dto

import (
	"paradise/internal/domains/booking/model"
	"paradise/shared/constant"
	"paradise/shared/timezone"
)

type BookingResponse struct {
	Ref       string `json:"ref"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Room      string `json:"room"`
	Guests    int    `json:"guests"`
	Checkin   string `json:"checkin"`
	Checkout  string `json:"checkout"`
	Nights    int    `json:"nights"`
	CreatedAt string `json:"createdAt"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.Ref = model.Ref
	r.Name = model.Name
	r.Email = model.Email
	r.Room = model.Room
	r.Guests = model.Guests
	r.Checkin = model.Checkin
	r.Checkout = model.Checkout
	r.Nights = timezone.NightsBetween(model.Checkin, model.Checkout)
	r.CreatedAt = model.CreatedAt
}

type GetBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.Total = len(models)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type DatesResponse struct {
	CheckoutMin string `json:"checkoutMin"`
	Checkout    string `json:"checkout"`
}

// CoupleDates keeps the check-out picker consistent with check-in: its minimum
// follows check-in (today once check-in is cleared) and a check-out that is no
// longer after check-in is cleared.
func CoupleDates(checkin, checkout, today string) DatesResponse {
	resp := DatesResponse{
		CheckoutMin: checkin,
		Checkout:    checkout,
	}

	if checkin == constant.Empty {
		resp.CheckoutMin = today

		return resp
	}

	if checkout != constant.Empty && checkout <= checkin {
		resp.Checkout = constant.Empty
	}

	return resp
}
