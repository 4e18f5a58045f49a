package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GMS-SchedulingService/internal/domain"
	"github.com/m04kA/GMS-SchedulingService/internal/integrations/gymservice"
	"github.com/m04kA/GMS-SchedulingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (f *fakeAppointmentRepo) GetByTrainerWithFilter(ctx context.Context, filter domain.TrainerAppointmentsFilter) ([]*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.appointments, nil
}

type fakeAvailabilityRepo struct {
	windows []*domain.TrainerAvailability
	lastDay time.Weekday
	err     error
}

func (f *fakeAvailabilityRepo) GetActiveByTrainerAndDay(ctx context.Context, trainerID int64, dayOfWeek time.Weekday) ([]*domain.TrainerAvailability, error) {
	f.lastDay = dayOfWeek
	if f.err != nil {
		return nil, f.err
	}
	return f.windows, nil
}

type fakeGymClient struct {
	trainer    *gymservice.Trainer
	trainerErr error
	service    *gymservice.Service
	serviceErr error
}

func (f *fakeGymClient) GetTrainer(ctx context.Context, trainerID int64) (*gymservice.Trainer, error) {
	if f.trainerErr != nil {
		return nil, f.trainerErr
	}
	return f.trainer, nil
}

func (f *fakeGymClient) GetService(ctx context.Context, serviceID int64) (*gymservice.Service, error) {
	if f.serviceErr != nil {
		return nil, f.serviceErr
	}
	return f.service, nil
}

func validGym() *fakeGymClient {
	return &fakeGymClient{
		trainer: &gymservice.Trainer{ID: 1, FirstName: "Anna", LastName: "Sokolova", IsActive: true},
		service: &gymservice.Service{ID: 2, Name: "Йога", DurationMinutes: 60, Price: 1500, IsActive: true},
	}
}

func mondayWindow(id int64, start, end types.TimeString) *domain.TrainerAvailability {
	return &domain.TrainerAvailability{
		ID:          id,
		TrainerID:   1,
		DayOfWeek:   time.Monday,
		StartTime:   start,
		EndTime:     end,
		IsAvailable: true,
		IsActive:    true,
	}
}

func validRequest() *Request {
	return &Request{
		TrainerID: 1,
		ServiceID: 2,
		Date:      time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), // понедельник
	}
}

func TestHandle_Success(t *testing.T) {
	availRepo := &fakeAvailabilityRepo{windows: []*domain.TrainerAvailability{mondayWindow(1, "09:00", "12:00")}}
	apptRepo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{{
			TrainerID: 1,
			StartTime: "10:00",
			EndTime:   "11:00",
			Status:    domain.StatusConfirmed,
		}},
	}

	uc := NewUseCase(apptRepo, availRepo, validGym(), nopLogger{})

	resp, err := uc.Handle(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.TrainerID)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, []types.TimeString{"09:00", "11:00"}, resp.Slots)
	// Окна запрашивались на день недели даты
	assert.Equal(t, time.Monday, availRepo.lastDay)
}

func TestHandle_NoWindowsReturnsEmptySlots(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeAvailabilityRepo{}, validGym(), nopLogger{})

	resp, err := uc.Handle(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestHandle_FullyBookedDay(t *testing.T) {
	availRepo := &fakeAvailabilityRepo{windows: []*domain.TrainerAvailability{mondayWindow(1, "09:00", "11:00")}}
	apptRepo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{TrainerID: 1, StartTime: "09:00", EndTime: "10:00", Status: domain.StatusConfirmed},
			{TrainerID: 1, StartTime: "10:00", EndTime: "11:00", Status: domain.StatusPending},
		},
	}

	uc := NewUseCase(apptRepo, availRepo, validGym(), nopLogger{})

	resp, err := uc.Handle(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestHandle_CancelledAppointmentFreesSlot(t *testing.T) {
	availRepo := &fakeAvailabilityRepo{windows: []*domain.TrainerAvailability{mondayWindow(1, "09:00", "10:00")}}
	apptRepo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{TrainerID: 1, StartTime: "09:00", EndTime: "10:00", Status: domain.StatusCancelled},
		},
	}

	uc := NewUseCase(apptRepo, availRepo, validGym(), nopLogger{})

	resp, err := uc.Handle(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00"}, resp.Slots)
}

func TestHandle_MultipleWindows(t *testing.T) {
	availRepo := &fakeAvailabilityRepo{windows: []*domain.TrainerAvailability{
		mondayWindow(1, "09:00", "11:00"),
		mondayWindow(2, "14:00", "16:00"),
	}}

	uc := NewUseCase(&fakeAppointmentRepo{}, availRepo, validGym(), nopLogger{})

	resp, err := uc.Handle(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "14:00", "14:30", "15:00"}, resp.Slots)
}

func TestHandle_TrainerNotFound(t *testing.T) {
	gym := validGym()
	gym.trainer = nil
	gym.trainerErr = gymservice.ErrTrainerNotFound

	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeAvailabilityRepo{}, gym, nopLogger{})

	_, err := uc.Handle(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTrainerNotFound)
}

func TestHandle_ServiceInactive(t *testing.T) {
	gym := validGym()
	gym.service.IsActive = false

	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeAvailabilityRepo{}, gym, nopLogger{})

	_, err := uc.Handle(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceInactive)
}

func TestHandle_Validation(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeAvailabilityRepo{}, validGym(), nopLogger{})

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "zero trainer id", mutate: func(req *Request) { req.TrainerID = 0 }},
		{name: "negative service id", mutate: func(req *Request) { req.ServiceID = -5 }},
		{name: "zero date", mutate: func(req *Request) { req.Date = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Handle(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
