package booking

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"paradise/config"
	"paradise/infras/otel"
	"paradise/internal/domains/booking/model"
	"paradise/internal/domains/booking/model/dto"
	"paradise/internal/domains/booking/service"
	roomService "paradise/internal/domains/room/service"
	"paradise/shared/constant"
	"paradise/shared/failure"
	"paradise/shared/refcode"
	"paradise/shared/timezone"
	"paradise/shared/validator"
	"paradise/transport/http/response"
	"paradise/transport/http/view"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const MessageInvalidReference = "invalid booking reference"

type Handler struct {
	service service.Booking
	rooms   roomService.Room
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Booking, rooms roomService.Room, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		rooms:   rooms,
		cfg:     cfg,
		otel:    otel,
	}
}

// PageRouter mounts the server-rendered booking page.
func (handler *Handler) PageRouter(router chi.Router) {
	router.Get("/", handler.ShowPage)
	router.Post("/bookings", handler.SubmitBooking)
	router.Post("/bookings/{ref}/delete", handler.DeleteBookingForm)
}

// Router mounts the JSON API.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/dates", handler.GetDates)
		routerGroup.Delete("/{ref}", handler.DeleteBooking)
	})
}

func (handler *Handler) newPage(ctx context.Context) (view.Page, error) {
	bookings, err := handler.service.List(ctx)
	if err != nil {
		return view.Page{}, fmt.Errorf("failed to list bookings: %w", err)
	}

	rooms := handler.rooms.List(ctx)
	roomNames := make([]string, len(rooms))

	for i, room := range rooms {
		roomNames[i] = string(room.Name)
	}

	rows := make([]view.Row, len(bookings))
	for i, booking := range bookings {
		rows[i] = toRow(booking)
	}

	today := timezone.Today()

	return view.Page{
		Title:       handler.cfg.App.Name,
		Today:       today,
		CheckoutMin: today,
		Rooms:       roomNames,
		Bookings:    rows,
	}, nil
}

func toRow(booking model.Booking) view.Row {
	return view.Row{
		Ref:      booking.Ref,
		Name:     booking.Name,
		Room:     booking.Room,
		Guests:   booking.Guests,
		Checkin:  booking.Checkin,
		Checkout: booking.Checkout,
	}
}

func toViewForm(form dto.BookingForm) view.Form {
	return view.Form{
		Name:     form.Name,
		Email:    form.Email,
		Room:     string(form.Room),
		Guests:   string(form.Guests),
		Checkin:  form.Checkin,
		Checkout: form.Checkout,
		Terms:    form.Terms,
	}
}

func (handler *Handler) render(writer http.ResponseWriter, code int, page view.Page) {
	body, err := view.RenderBytes(page)
	if err != nil {
		log.Error().Err(err).Msg("failed to render booking page")
		response.WithError(writer, failure.InternalError(err))

		return
	}

	response.WithHTML(writer, code, body)
}

// ShowPage renders the booking form and the current bookings. After a
// confirmed submission the redirect carries the new reference in ?ref=.
func (handler *Handler) ShowPage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ShowPage")
	defer scope.End()

	page, err := handler.newPage(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if ref := request.URL.Query().Get(constant.RequestParamRef); refcode.Valid(ref) && page.Has(ref) {
		page.Confirmed(ref)
	}

	handler.render(writer, http.StatusOK, page)
}

// SubmitBooking validates the posted form. A rejected form is rendered again
// with its values and per-field errors. An accepted one is stored and the
// browser is redirected to a blank form showing the confirmation.
func (handler *Handler) SubmitBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitBooking")
	defer scope.End()

	request.Body = http.MaxBytesReader(writer, request.Body, constant.RequestMaxMemory)

	if err := request.ParseForm(); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse booking form")
		response.WithError(writer, failure.BadRequest(err))

		return
	}

	var form dto.BookingForm
	form.FromRequest(request)

	draft, err := form.ToDraft()
	if err != nil {
		handler.renderRejected(ctx, writer, form, err)

		return
	}

	booking, err := handler.service.Create(ctx, draft)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")
		handler.renderRejected(ctx, writer, form, err)

		return
	}

	query := url.Values{constant.RequestParamRef: {booking.Ref}}

	http.Redirect(writer, request, "/?"+query.Encode(), http.StatusSeeOther)
}

func (handler *Handler) renderRejected(ctx context.Context, writer http.ResponseWriter, form dto.BookingForm, cause error) {
	page, err := handler.newPage(ctx)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	dates := dto.CoupleDates(form.Checkin, form.Checkout, page.Today)
	form.Checkout = dates.Checkout

	page.Form = toViewForm(form)
	page.CheckoutMin = dates.CheckoutMin

	fields := failure.GetFields(cause)
	if fields == nil {
		code := failure.GetCode(cause)

		status := failure.GetMessage(cause)
		if code >= http.StatusInternalServerError || status == constant.Empty {
			status = view.StatusFailed
		}

		page.Failed(status)
		handler.render(writer, code, page)

		return
	}

	page.Rejected(fields)
	handler.render(writer, http.StatusUnprocessableEntity, page)
}

// DeleteBookingForm removes a booking and sends the browser back to the page.
// Unknown references are ignored.
func (handler *Handler) DeleteBookingForm(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBookingForm")
	defer scope.End()

	ref := chi.URLParam(request, constant.RequestParamRef)
	if !refcode.Valid(ref) {
		http.Redirect(writer, request, "/", http.StatusSeeOther)

		return
	}

	if err := handler.service.Delete(ctx, ref); err != nil && !failure.IsNotFound(err) {
		scope.TraceError(err)
		log.Error().Err(err).Str("ref", ref).Msg("failed to delete booking")
		response.WithError(writer, err)

		return
	}

	http.Redirect(writer, request, "/", http.StatusSeeOther)
}

// GetBookings lists every stored booking.
// @Summary List bookings
// @Description List every stored booking with its length of stay.
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a booking
// @Description Validate and store a booking. Rejected fields are listed one message per field.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.BookingForm true "Booking form"
// @Success 201 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	form := dto.BookingForm{}

	if err := validator.Validate(http.MaxBytesReader(writer, request.Body, constant.RequestMaxMemory), &form); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	draft, err := form.Draft()
	if err != nil {
		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, draft)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")
		response.WithError(writer, err)

		return
	}

	var res dto.BookingResponse
	res.FromModel(booking)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetDates applies the check-in/check-out coupling rule.
// @Summary Couple booking dates
// @Tags Booking
// @Produce json
// @Param checkin query string false "Check-in date (YYYY-MM-DD)"
// @Param checkout query string false "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.DatesResponse]
// @Router /v1/bookings/dates [get]
func (handler *Handler) GetDates(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()

	res := dto.CoupleDates(query.Get(constant.RequestParamCheckin), query.Get(constant.RequestParamCheckout), timezone.Today())

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteBooking handles the deletion of a booking.
// @Summary Delete a booking
// @Tags Booking
// @Produce json
// @Param ref path string true "Booking reference"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{ref} [delete]
func (handler *Handler) DeleteBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	ref := chi.URLParam(request, constant.RequestParamRef)
	if !refcode.Valid(ref) {
		response.WithError(writer, failure.BadRequestFromString(MessageInvalidReference))

		return
	}

	if err := handler.service.Delete(ctx, ref); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "booking deleted")
}
