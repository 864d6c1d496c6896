package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"lavajato/internal/cache"
	"lavajato/internal/errors"
	"lavajato/internal/model"
)

// MockAppointmentRepository is a mock implementation of AppointmentRepository.
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, id uint) (*model.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) ListByUser(ctx context.Context, userID uint) ([]model.Appointment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockAppointmentRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockNotificationRepository is a mock implementation of NotificationRepository.
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *model.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListByUser(ctx context.Context, userID uint) ([]model.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Notification), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkAsRead(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllAsRead(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newAppointmentService(appointmentRepo *MockAppointmentRepository, vehicleRepo *MockVehicleRepository, notificationRepo *MockNotificationRepository) AppointmentService {
	notifications := NewNotificationService(notificationRepo, nil, testLogger())
	return NewAppointmentService(appointmentRepo, vehicleRepo, notifications, testLogger())
}

func TestAppointmentService_CreateAppointment(t *testing.T) {
	appointmentDate := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		vehicleID     uint
		setupMocks    func(*MockAppointmentRepository, *MockVehicleRepository, *MockNotificationRepository)
		expectedError error
	}{
		{
			name:      "booking an owned vehicle succeeds and emits one notification",
			vehicleID: 5,
			setupMocks: func(ar *MockAppointmentRepository, vr *MockVehicleRepository, nr *MockNotificationRepository) {
				vr.On("FindByID", mock.Anything, uint(5)).Return(&model.Vehicle{ID: 5, UserID: 10}, nil)
				ar.On("Create", mock.Anything, mock.AnythingOfType("*model.Appointment")).Run(func(args mock.Arguments) {
					args.Get(1).(*model.Appointment).ID = 3
				}).Return(nil)
				nr.On("Create", mock.Anything, mock.MatchedBy(func(n *model.Notification) bool {
					return n.UserID == 10 && n.Type == model.NotificationTypeAppointment
				})).Return(nil).Once()
			},
			expectedError: nil,
		},
		{
			name:      "foreign vehicle collapses to invalid vehicle",
			vehicleID: 6,
			setupMocks: func(ar *MockAppointmentRepository, vr *MockVehicleRepository, nr *MockNotificationRepository) {
				vr.On("FindByID", mock.Anything, uint(6)).Return(&model.Vehicle{ID: 6, UserID: 99}, nil)
			},
			expectedError: errors.ErrInvalidVehicle,
		},
		{
			name:      "nonexistent vehicle collapses to the same invalid vehicle outcome",
			vehicleID: 7,
			setupMocks: func(ar *MockAppointmentRepository, vr *MockVehicleRepository, nr *MockNotificationRepository) {
				vr.On("FindByID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrInvalidVehicle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appointmentRepo := new(MockAppointmentRepository)
			vehicleRepo := new(MockVehicleRepository)
			notificationRepo := new(MockNotificationRepository)
			tt.setupMocks(appointmentRepo, vehicleRepo, notificationRepo)

			svc := newAppointmentService(appointmentRepo, vehicleRepo, notificationRepo)
			appointment, err := svc.CreateAppointment(context.Background(), 10, tt.vehicleID, model.ServiceTypeSimple, appointmentDate)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, appointment)
				appointmentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				notificationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.AppointmentStatusPending, appointment.Status)
				assert.Equal(t, uint(10), appointment.UserID)
				assert.Equal(t, tt.vehicleID, appointment.VehicleID)
			}

			appointmentRepo.AssertExpectations(t)
			vehicleRepo.AssertExpectations(t)
			notificationRepo.AssertExpectations(t)
		})
	}
}

func TestAppointmentService_CreateAppointment_NotificationBestEffort(t *testing.T) {
	appointmentRepo := new(MockAppointmentRepository)
	vehicleRepo := new(MockVehicleRepository)
	notificationRepo := new(MockNotificationRepository)

	vehicleRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Vehicle{ID: 5, UserID: 10}, nil)
	appointmentRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Appointment")).Return(nil)
	notificationRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Notification")).Return(fmt.Errorf("redis on fire"))

	svc := newAppointmentService(appointmentRepo, vehicleRepo, notificationRepo)
	appointment, err := svc.CreateAppointment(context.Background(), 10, 5, model.ServiceTypeComplete, time.Now())

	// The committed appointment survives a failed notification write.
	assert.NoError(t, err)
	assert.NotNil(t, appointment)
	notificationRepo.AssertExpectations(t)
}

func TestAppointmentService_CreateAppointment_NotificationMessage(t *testing.T) {
	appointmentRepo := new(MockAppointmentRepository)
	vehicleRepo := new(MockVehicleRepository)
	notificationRepo := new(MockNotificationRepository)

	appointmentDate := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	vehicleRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Vehicle{ID: 5, UserID: 10}, nil)
	appointmentRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Appointment")).Return(nil)

	var captured *model.Notification
	notificationRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Notification")).Run(func(args mock.Arguments) {
		captured = args.Get(1).(*model.Notification)
	}).Return(nil)

	svc := newAppointmentService(appointmentRepo, vehicleRepo, notificationRepo)
	_, err := svc.CreateAppointment(context.Background(), 10, 5, model.ServiceTypeComplete, appointmentDate)

	assert.NoError(t, err)
	assert.NotNil(t, captured)
	assert.Equal(t, "Agendamento Criado", captured.Title)
	assert.Equal(t, "Seu agendamento de Lavagem Completa para 14/03/2026 foi criado com sucesso.", captured.Message)
}

func TestAppointmentService_CreateAppointment_RefreshesUnreadCount(t *testing.T) {
	mr := miniredis.RunT(t)
	cacheClient := cache.New(mr.Addr(), "", 0)

	appointmentRepo := new(MockAppointmentRepository)
	vehicleRepo := new(MockVehicleRepository)
	notificationRepo := new(MockNotificationRepository)
	notifications := NewNotificationService(notificationRepo, cacheClient, testLogger())
	svc := NewAppointmentService(appointmentRepo, vehicleRepo, notifications, testLogger())

	ctx := context.Background()

	// Warm the cache before any notification exists.
	notificationRepo.On("CountUnread", mock.Anything, uint(10)).Return(int64(0), nil).Once()
	count, err := notifications.UnreadCount(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)

	vehicleRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Vehicle{ID: 5, UserID: 10}, nil)
	appointmentRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Appointment")).Return(nil)
	notificationRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Notification")).Return(nil)

	_, err = svc.CreateAppointment(ctx, 10, 5, model.ServiceTypeSimple, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
	assert.NoError(t, err)

	// Booking drops the cached count, so the next read hits storage.
	notificationRepo.On("CountUnread", mock.Anything, uint(10)).Return(int64(1), nil).Once()
	count, err = notifications.UnreadCount(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
	notificationRepo.AssertExpectations(t)
}

func TestAppointmentService_GetAppointment(t *testing.T) {
	t.Run("missing appointment is not found", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		appointmentRepo.On("FindByID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)

		svc := newAppointmentService(appointmentRepo, new(MockVehicleRepository), new(MockNotificationRepository))
		_, err := svc.GetAppointment(context.Background(), 1, 10)

		assert.Equal(t, errors.ErrAppointmentNotFound, err)
	})

	t.Run("foreign appointment is forbidden", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		appointmentRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Appointment{ID: 1, UserID: 99}, nil)

		svc := newAppointmentService(appointmentRepo, new(MockVehicleRepository), new(MockNotificationRepository))
		_, err := svc.GetAppointment(context.Background(), 1, 10)

		assert.Equal(t, errors.ErrAccessDenied, err)
	})
}

func TestAppointmentService_UpdateAppointment(t *testing.T) {
	t.Run("vehicle change re-validates ownership under the collapsed rule", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		vehicleRepo := new(MockVehicleRepository)
		appointmentRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Appointment{ID: 1, UserID: 10}, nil)
		vehicleRepo.On("FindByID", mock.Anything, uint(8)).Return(&model.Vehicle{ID: 8, UserID: 99}, nil)

		svc := newAppointmentService(appointmentRepo, vehicleRepo, new(MockNotificationRepository))
		newVehicle := uint(8)
		err := svc.UpdateAppointment(context.Background(), 1, 10, AppointmentUpdate{VehicleID: &newVehicle})

		assert.Equal(t, errors.ErrInvalidVehicle, err)
		appointmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("any enumerated status value is accepted", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		appointmentRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Appointment{ID: 1, UserID: 10, Status: model.AppointmentStatusCompleted}, nil)
		appointmentRepo.On("Update", mock.Anything, uint(1), map[string]interface{}{"status": model.AppointmentStatusPending}).Return(nil)

		svc := newAppointmentService(appointmentRepo, new(MockVehicleRepository), new(MockNotificationRepository))
		status := model.AppointmentStatusPending
		err := svc.UpdateAppointment(context.Background(), 1, 10, AppointmentUpdate{Status: &status})

		assert.NoError(t, err)
		appointmentRepo.AssertExpectations(t)
	})
}

func TestAppointmentService_DeleteAppointment(t *testing.T) {
	t.Run("non-owner cannot delete", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		appointmentRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Appointment{ID: 1, UserID: 10}, nil)

		svc := newAppointmentService(appointmentRepo, new(MockVehicleRepository), new(MockNotificationRepository))
		err := svc.DeleteAppointment(context.Background(), 1, 20)

		assert.Equal(t, errors.ErrAccessDenied, err)
		appointmentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("owner deletes without touching notifications", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		notificationRepo := new(MockNotificationRepository)
		appointmentRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Appointment{ID: 1, UserID: 10}, nil)
		appointmentRepo.On("Delete", mock.Anything, uint(1)).Return(nil)

		svc := newAppointmentService(appointmentRepo, new(MockVehicleRepository), notificationRepo)
		err := svc.DeleteAppointment(context.Background(), 1, 10)

		assert.NoError(t, err)
		notificationRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestAppointmentService_ListAppointments(t *testing.T) {
	t.Run("degrades to empty list when storage is unavailable", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		appointmentRepo.On("ListByUser", mock.Anything, uint(10)).Return(nil, gorm.ErrInvalidDB)

		svc := newAppointmentService(appointmentRepo, new(MockVehicleRepository), new(MockNotificationRepository))
		appointments, err := svc.ListAppointments(context.Background(), 10)

		assert.NoError(t, err)
		assert.Empty(t, appointments)
	})
}
