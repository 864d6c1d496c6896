package service

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"lavajato/internal/errors"
	"lavajato/internal/model"
	"lavajato/internal/repository"
)

// VehicleUpdate carries the optional fields of a partial vehicle update.
// Nil fields are left untouched.
type VehicleUpdate struct {
	Brand *string
	Model *string
	Plate *string
	Color *string
	Year  *int
}

// VehicleService handles vehicle operations on behalf of a single user.
// Every read and mutation is authorized against the owning user.
type VehicleService interface {
	ListVehicles(ctx context.Context, userID uint) ([]model.Vehicle, error)
	GetVehicle(ctx context.Context, id, userID uint) (*model.Vehicle, error)
	CreateVehicle(ctx context.Context, userID uint, brand, vehicleModel, plate string, color *string, year *int) (*model.Vehicle, error)
	UpdateVehicle(ctx context.Context, id, userID uint, update VehicleUpdate) error
	DeleteVehicle(ctx context.Context, id, userID uint) error
}

type vehicleService struct {
	repo   repository.VehicleRepository
	logger *logrus.Logger
}

// NewVehicleService creates a new vehicle service.
func NewVehicleService(repo repository.VehicleRepository, logger *logrus.Logger) VehicleService {
	return &vehicleService{repo: repo, logger: logger}
}

// ListVehicles returns the user's vehicles, newest first. When storage is
// unavailable the read degrades to an empty list instead of failing.
func (s *vehicleService) ListVehicles(ctx context.Context, userID uint) ([]model.Vehicle, error) {
	vehicles, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Warn("list vehicles degraded to empty result")
		return []model.Vehicle{}, nil
	}
	return vehicles, nil
}

// GetVehicle fetches a vehicle and checks ownership. A missing vehicle and a
// vehicle owned by another user are distinct outcomes.
func (s *vehicleService) GetVehicle(ctx context.Context, id, userID uint) (*model.Vehicle, error) {
	vehicle, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrVehicleNotFound
		}
		return nil, err
	}
	if vehicle.UserID != userID {
		return nil, errors.ErrAccessDenied
	}
	return vehicle, nil
}

// CreateVehicle validates required fields and persists the vehicle for the user.
func (s *vehicleService) CreateVehicle(ctx context.Context, userID uint, brand, vehicleModel, plate string, color *string, year *int) (*model.Vehicle, error) {
	if strings.TrimSpace(brand) == "" || strings.TrimSpace(vehicleModel) == "" || strings.TrimSpace(plate) == "" {
		return nil, errors.ErrVehicleDataRequired
	}

	vehicle := &model.Vehicle{
		UserID: userID,
		Brand:  brand,
		Model:  vehicleModel,
		Plate:  plate,
		Color:  color,
		Year:   year,
	}
	if err := s.repo.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// UpdateVehicle applies the provided fields to an owned vehicle.
func (s *vehicleService) UpdateVehicle(ctx context.Context, id, userID uint, update VehicleUpdate) error {
	if _, err := s.GetVehicle(ctx, id, userID); err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if update.Brand != nil {
		if strings.TrimSpace(*update.Brand) == "" {
			return errors.ErrVehicleDataRequired
		}
		fields["brand"] = *update.Brand
	}
	if update.Model != nil {
		if strings.TrimSpace(*update.Model) == "" {
			return errors.ErrVehicleDataRequired
		}
		fields["model"] = *update.Model
	}
	if update.Plate != nil {
		if strings.TrimSpace(*update.Plate) == "" {
			return errors.ErrVehicleDataRequired
		}
		fields["plate"] = *update.Plate
	}
	if update.Color != nil {
		fields["color"] = *update.Color
	}
	if update.Year != nil {
		fields["year"] = *update.Year
	}

	return s.repo.Update(ctx, id, fields)
}

// DeleteVehicle removes an owned vehicle. Existing appointments referencing
// it are left untouched.
func (s *vehicleService) DeleteVehicle(ctx context.Context, id, userID uint) error {
	if _, err := s.GetVehicle(ctx, id, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
