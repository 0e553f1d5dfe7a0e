package service

import (
	"context"
	"fmt"
	"paradise/infras/otel"
	"paradise/internal/domains/booking/model"
	"paradise/internal/domains/booking/model/dto"
	"paradise/internal/domains/booking/repository"
	"paradise/shared/constant"
	"paradise/shared/failure"
	"paradise/shared/refcode"
	"paradise/shared/timezone"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// MaxReferenceAttempts bounds how many references are drawn before giving up on a unique one.
const MaxReferenceAttempts = 5

type Booking interface {
	Create(ctx context.Context, draft dto.BookingDraft) (model.Booking, error)
	Delete(ctx context.Context, ref string) error
	List(ctx context.Context) ([]model.Booking, error)
	GetAll(ctx context.Context) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	// mu keeps the reference check and the append of Create atomic.
	mu       sync.Mutex
	repo     repository.Booking
	otel     otel.Otel
	generate func() (string, error)
	now      func() time.Time
}

type Option func(*serviceImpl)

// WithReferenceGenerator replaces the random reference source.
func WithReferenceGenerator(generate func() (string, error)) Option {
	return func(s *serviceImpl) {
		s.generate = generate
	}
}

// WithClock replaces the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *serviceImpl) {
		s.now = now
	}
}

func New(repo repository.Booking, otel otel.Otel) Booking {
	return NewWithOptions(repo, otel)
}

func NewWithOptions(repo repository.Booking, otel otel.Otel, opts ...Option) Booking {
	svc := &serviceImpl{
		repo:     repo,
		otel:     otel,
		generate: refcode.Generate,
		now:      timezone.Now,
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc
}

func (s *serviceImpl) Create(ctx context.Context, draft dto.BookingDraft) (booking model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.Load(ctx)
	if err != nil {
		return model.Booking{}, fmt.Errorf("failed to load bookings: %w", err)
	}

	ref, err := s.uniqueReference(existing)
	if err != nil {
		return model.Booking{}, err
	}

	booking = draft.ToModel(ref, s.now())
	scope.SetAttribute(constant.OtelRefAttribute, booking.Ref)

	if err = s.repo.Append(ctx, booking); err != nil {
		return model.Booking{}, fmt.Errorf("failed to save booking: %w", err)
	}

	log.Info().Str("ref", booking.Ref).Str("room", booking.Room).Msg("booking confirmed")

	return booking, nil
}

func (s *serviceImpl) uniqueReference(existing []model.Booking) (string, error) {
	taken := make(map[string]struct{}, len(existing))
	for _, booking := range existing {
		taken[booking.Ref] = struct{}{}
	}

	for range MaxReferenceAttempts {
		ref, err := s.generate()
		if err != nil {
			return constant.Empty, fmt.Errorf("failed to generate reference: %w", err)
		}

		if _, ok := taken[ref]; !ok {
			return ref, nil
		}

		log.Warn().Str("ref", ref).Msg("generated reference already in use, retrying")
	}

	return constant.Empty, failure.Conflict("could not allocate a unique booking reference") //nolint:wrapcheck
}

func (s *serviceImpl) Delete(ctx context.Context, ref string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelRefAttribute, ref)

	removed, err := s.repo.Remove(ctx, ref)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	if !removed {
		return failure.NotFound(model.EntityName + " not found") //nolint:wrapcheck
	}

	log.Info().Str("ref", ref).Msg("booking deleted")

	return nil
}

func (s *serviceImpl) List(ctx context.Context) (bookings []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err = s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	return bookings, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (dto.GetBookingsResponse, error) {
	var resp dto.GetBookingsResponse

	bookings, err := s.List(ctx)
	if err != nil {
		return resp, err
	}

	resp.FromModels(bookings)

	return resp, nil
}
