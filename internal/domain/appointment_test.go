package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to AppointmentStatus
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusPending, StatusPending, false},

		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusPending, false},
		{StatusConfirmed, StatusConfirmed, false},

		// Терминальные статусы: никаких переходов, включая повторную отмену
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCancelled, false},
		{StatusCancelled, StatusCompleted, false},

		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestAppointment_IsTerminal(t *testing.T) {
	assert.False(t, (&Appointment{Status: StatusPending}).IsTerminal())
	assert.False(t, (&Appointment{Status: StatusConfirmed}).IsTerminal())
	assert.True(t, (&Appointment{Status: StatusCancelled}).IsTerminal())
	assert.True(t, (&Appointment{Status: StatusCompleted}).IsTerminal())
}

func TestAppointment_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Appointment{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Appointment{Status: StatusCancelled}).CanBeCancelled())
	assert.False(t, (&Appointment{Status: StatusCompleted}).CanBeCancelled())
}

func TestAppointment_BlocksSlot(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusPending}).BlocksSlot())
	assert.True(t, (&Appointment{Status: StatusConfirmed}).BlocksSlot())
	// Завершённая запись всё ещё занимает свой интервал
	assert.True(t, (&Appointment{Status: StatusCompleted}).BlocksSlot())
	assert.False(t, (&Appointment{Status: StatusCancelled}).BlocksSlot())
}
