package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/target/storefront-admin/internal/domain/model"
	apperrors "github.com/target/storefront-admin/internal/errors"
	"github.com/target/storefront-admin/internal/ports"
)

// PeopleServiceOptions groups dependencies for PeopleService.
type PeopleServiceOptions struct {
	API  ports.PeopleAPI // Required
	Deps ResourceDeps
}

// PeopleService serves users, suppliers, doctors and bookings.
type PeopleService struct {
	api    ports.PeopleAPI
	cache  *QueryCache
	audit  auditRecorder
	logger *slog.Logger
}

// NewPeopleService constructs a new PeopleService.
func NewPeopleService(opts PeopleServiceOptions) *PeopleService {
	if opts.API == nil {
		panic("PeopleAPI is required")
	}
	logger := opts.Deps.logger("people")
	return &PeopleService{
		api:    opts.API,
		cache:  opts.Deps.Cache,
		audit:  newAuditRecorder(opts.Deps.Audit, logger),
		logger: logger,
	}
}

func (s *PeopleService) Users(ctx context.Context) ([]model.User, error) {
	out, err := cachedQuery(ctx, s.cache, FamilyUsers, "all", s.api.ListUsers)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return out, nil
}

// RegisterUser creates a console or store user.
func (s *PeopleService) RegisterUser(ctx context.Context, in model.UserInput) error {
	in.Email = strings.TrimSpace(in.Email)
	in.UserName = strings.TrimSpace(in.UserName)
	in.RoleName = strings.TrimSpace(in.RoleName)
	if err := in.Validate(); err != nil {
		return err
	}
	if err := s.api.RegisterUser(ctx, in); err != nil {
		return fmt.Errorf("register user: %w", err)
	}
	s.cache.Invalidate(ctx, FamilyUsers, FamilySupplierHistory)
	s.audit.record(ctx, model.AuditUserRegistered, in.Email, map[string]any{"role": in.RoleName})
	return nil
}

func (s *PeopleService) AddSupplier(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.ValidationField("name", "Supplier name is required")
	}
	if err := s.api.AddSupplier(ctx, name); err != nil {
		return fmt.Errorf("add supplier: %w", err)
	}
	s.cache.Invalidate(ctx, FamilyUsers, FamilySupplierHistory)
	s.audit.record(ctx, model.AuditSupplierAdded, name, nil)
	return nil
}

func (s *PeopleService) SupplierHistory(ctx context.Context) ([]model.SupplierHistory, error) {
	out, err := cachedQuery(ctx, s.cache, FamilySupplierHistory, "all", s.api.SupplierHistory)
	if err != nil {
		return nil, fmt.Errorf("supplier history: %w", err)
	}
	return out, nil
}

func (s *PeopleService) Doctors(ctx context.Context) ([]model.Doctor, error) {
	out, err := cachedQuery(ctx, s.cache, FamilyDoctors, "all", s.api.ListDoctors)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return out, nil
}

func (s *PeopleService) AddDoctor(ctx context.Context, in model.Doctor) error {
	in.Name = strings.TrimSpace(in.Name)
	in.StoreName = strings.TrimSpace(in.StoreName)
	in.Email = strings.TrimSpace(in.Email)
	in.DoctorID = ""
	if err := in.Validate(); err != nil {
		return err
	}
	if err := s.api.AddDoctor(ctx, in); err != nil {
		return fmt.Errorf("add doctor: %w", err)
	}
	s.cache.Invalidate(ctx, FamilyDoctors)
	s.audit.record(ctx, model.AuditDoctorAdded, in.Name, nil)
	return nil
}

func (s *PeopleService) Bookings(ctx context.Context) ([]model.Booking, error) {
	out, err := cachedQuery(ctx, s.cache, FamilyBookings, "all", s.api.ListBookings)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return out, nil
}

func (s *PeopleService) AddBooking(ctx context.Context, in model.BookingInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	if err := s.api.AddBooking(ctx, in); err != nil {
		return fmt.Errorf("add booking: %w", err)
	}
	s.cache.Invalidate(ctx, FamilyBookings)
	s.audit.record(ctx, model.AuditBookingAdded, in.Title, map[string]any{"doctorId": in.DoctorID, "date": in.BookingDate})
	return nil
}
