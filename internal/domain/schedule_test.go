package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GMS-SchedulingService/pkg/types"
)

func window(id int64, start, end types.TimeString, active bool) *TrainerAvailability {
	return &TrainerAvailability{
		ID:          id,
		TrainerID:   1,
		DayOfWeek:   time.Monday,
		StartTime:   start,
		EndTime:     end,
		IsAvailable: true,
		IsActive:    active,
	}
}

func appointment(start, end types.TimeString, status AppointmentStatus) *Appointment {
	return &Appointment{
		TrainerID: 1,
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd types.TimeString
		want                       bool
	}{
		{name: "disjoint", aStart: "09:00", aEnd: "10:00", bStart: "11:00", bEnd: "12:00", want: false},
		{name: "back to back is not a conflict", aStart: "09:00", aEnd: "10:00", bStart: "10:00", bEnd: "11:00", want: false},
		{name: "back to back reversed", aStart: "10:00", aEnd: "11:00", bStart: "09:00", bEnd: "10:00", want: false},
		{name: "partial overlap", aStart: "09:00", aEnd: "10:30", bStart: "10:00", bEnd: "11:00", want: true},
		{name: "one minute overlap", aStart: "09:00", aEnd: "10:01", bStart: "10:00", bEnd: "11:00", want: true},
		{name: "containment", aStart: "09:00", aEnd: "12:00", bStart: "10:00", bEnd: "11:00", want: true},
		{name: "identical intervals", aStart: "10:00", aEnd: "11:00", bStart: "10:00", bEnd: "11:00", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Пересечение симметрично
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestCheckAdmissibility_NoWindows(t *testing.T) {
	result, err := CheckAdmissibility(nil, nil, "10:00", 60)
	require.NoError(t, err)

	assert.False(t, result.Admissible)
	assert.Equal(t, []ReasonCode{ReasonTrainerNotWorkingThisDay}, result.Reasons)
}

func TestCheckAdmissibility_OnlyInactiveWindows(t *testing.T) {
	windows := []*TrainerAvailability{window(1, "09:00", "17:00", false)}

	result, err := CheckAdmissibility(windows, nil, "10:00", 60)
	require.NoError(t, err)

	assert.False(t, result.Admissible)
	assert.Equal(t, []ReasonCode{ReasonTrainerNotWorkingThisDay}, result.Reasons)
}

func TestCheckAdmissibility_OutsideWorkingHours(t *testing.T) {
	windows := []*TrainerAvailability{window(1, "09:00", "12:00", true)}

	tests := []struct {
		name     string
		start    types.TimeString
		duration int
	}{
		{name: "before window", start: "08:00", duration: 60},
		{name: "after window", start: "12:00", duration: 60},
		{name: "sticks out of window end", start: "11:30", duration: 60},
		{name: "starts before window", start: "08:30", duration: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CheckAdmissibility(windows, nil, tt.start, tt.duration)
			require.NoError(t, err)

			assert.False(t, result.Admissible)
			assert.Equal(t, []ReasonCode{ReasonOutsideWorkingHours}, result.Reasons)
		})
	}
}

func TestCheckAdmissibility_ExactWindowFit(t *testing.T) {
	windows := []*TrainerAvailability{window(1, "09:00", "10:00", true)}

	result, err := CheckAdmissibility(windows, nil, "09:00", 60)
	require.NoError(t, err)

	assert.True(t, result.Admissible)
	assert.Empty(t, result.Reasons)
}

func TestCheckAdmissibility_TimeSlotConflict(t *testing.T) {
	windows := []*TrainerAvailability{window(1, "09:00", "17:00", true)}
	appointments := []*Appointment{appointment("10:00", "11:00", StatusConfirmed)}

	result, err := CheckAdmissibility(windows, appointments, "10:30", 60)
	require.NoError(t, err)

	assert.False(t, result.Admissible)
	assert.Equal(t, []ReasonCode{ReasonTimeSlotConflict}, result.Reasons)
}

func TestCheckAdmissibility_BackToBackAllowed(t *testing.T) {
	windows := []*TrainerAvailability{window(1, "09:00", "17:00", true)}
	appointments := []*Appointment{appointment("10:00", "11:00", StatusConfirmed)}

	// Запись, начинающаяся ровно в конец существующей, допустима
	result, err := CheckAdmissibility(windows, appointments, "11:00", 60)
	require.NoError(t, err)
	assert.True(t, result.Admissible)

	// И заканчивающаяся ровно в начало существующей
	result, err = CheckAdmissibility(windows, appointments, "09:00", 60)
	require.NoError(t, err)
	assert.True(t, result.Admissible)
}

func TestCheckAdmissibility_CancelledDoesNotBlock(t *testing.T) {
	windows := []*TrainerAvailability{window(1, "09:00", "17:00", true)}
	appointments := []*Appointment{appointment("10:00", "11:00", StatusCancelled)}

	result, err := CheckAdmissibility(windows, appointments, "10:00", 60)
	require.NoError(t, err)

	assert.True(t, result.Admissible)
}

func TestCheckAdmissibility_PendingBlocks(t *testing.T) {
	windows := []*TrainerAvailability{window(1, "09:00", "17:00", true)}
	appointments := []*Appointment{appointment("10:00", "11:00", StatusPending)}

	result, err := CheckAdmissibility(windows, appointments, "10:00", 60)
	require.NoError(t, err)

	assert.False(t, result.Admissible)
	assert.Contains(t, result.Reasons, ReasonTimeSlotConflict)
}

func TestCheckAdmissibility_ReasonsAccumulate(t *testing.T) {
	// Интервал вне окна и одновременно пересекается с записью:
	// обе проверки выполняются, обе причины возвращаются
	windows := []*TrainerAvailability{window(1, "09:00", "11:00", true)}
	appointments := []*Appointment{appointment("10:30", "12:00", StatusConfirmed)}

	result, err := CheckAdmissibility(windows, appointments, "10:30", 90)
	require.NoError(t, err)

	assert.False(t, result.Admissible)
	assert.ElementsMatch(t, []ReasonCode{ReasonOutsideWorkingHours, ReasonTimeSlotConflict}, result.Reasons)
}

func TestCheckAdmissibility_IntervalPastMidnight(t *testing.T) {
	windows := []*TrainerAvailability{window(1, "09:00", "17:00", true)}

	_, err := CheckAdmissibility(windows, nil, "23:30", 60)
	assert.Error(t, err)
}

func TestGenerateSlots_SingleWindow(t *testing.T) {
	windows := []*TrainerAvailability{window(1, "09:00", "12:00", true)}

	slots, err := GenerateSlots(windows, nil, 60)
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30", "11:00"}, slots)
}

func TestGenerateSlots_DurationEqualsWindow(t *testing.T) {
	windows := []*TrainerAvailability{window(1, "09:00", "10:00", true)}

	slots, err := GenerateSlots(windows, nil, 60)
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"09:00"}, slots)
}

func TestGenerateSlots_WindowShorterThanDuration(t *testing.T) {
	windows := []*TrainerAvailability{window(1, "09:00", "09:45", true)}

	slots, err := GenerateSlots(windows, nil, 60)
	require.NoError(t, err)

	assert.Empty(t, slots)
}

func TestGenerateSlots_SkipsConflicting(t *testing.T) {
	windows := []*TrainerAvailability{window(1, "09:00", "12:00", true)}
	appointments := []*Appointment{appointment("10:00", "11:00", StatusConfirmed)}

	slots, err := GenerateSlots(windows, appointments, 60)
	require.NoError(t, err)

	// 09:30, 10:00 и 10:30 пересекаются с записью 10:00-11:00
	assert.Equal(t, []types.TimeString{"09:00", "11:00"}, slots)
}

func TestGenerateSlots_CancelledDoesNotBlock(t *testing.T) {
	windows := []*TrainerAvailability{window(1, "09:00", "11:00", true)}
	appointments := []*Appointment{appointment("09:00", "10:00", StatusCancelled)}

	slots, err := GenerateSlots(windows, appointments, 60)
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00"}, slots)
}

func TestGenerateSlots_MultipleWindowsNotMerged(t *testing.T) {
	// Окна граничат друг с другом, но обрабатываются независимо:
	// интервал 11:30-12:30 не генерируется, хотя уместился бы в слитом окне
	windows := []*TrainerAvailability{
		window(1, "09:00", "12:00", true),
		window(2, "12:00", "14:00", true),
	}

	slots, err := GenerateSlots(windows, nil, 60)
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{
		"09:00", "09:30", "10:00", "10:30", "11:00",
		"12:00", "12:30", "13:00",
	}, slots)
}

func TestGenerateSlots_InactiveWindowIgnored(t *testing.T) {
	windows := []*TrainerAvailability{
		window(1, "09:00", "11:00", false),
		window(2, "14:00", "16:00", true),
	}

	slots, err := GenerateSlots(windows, nil, 60)
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"14:00", "14:30", "15:00"}, slots)
}

func TestGenerateSlots_NoWindows(t *testing.T) {
	slots, err := GenerateSlots(nil, nil, 60)
	require.NoError(t, err)

	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGenerateSlots_LateWindowDoesNotOverflowDay(t *testing.T) {
	windows := []*TrainerAvailability{window(1, "22:30", "23:59", true)}

	slots, err := GenerateSlots(windows, nil, 60)
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"22:30"}, slots)
}

func TestValidateWindow_InvalidRange(t *testing.T) {
	reasons := ValidateWindow(nil, int(time.Monday), "12:00", "10:00", nil)
	assert.Equal(t, []ReasonCode{ReasonInvalidRange}, reasons)

	reasons = ValidateWindow(nil, int(time.Monday), "10:00", "10:00", nil)
	assert.Equal(t, []ReasonCode{ReasonInvalidRange}, reasons)
}

func TestValidateWindow_OverlappingAvailability(t *testing.T) {
	siblings := []*TrainerAvailability{window(1, "09:00", "12:00", true)}

	reasons := ValidateWindow(siblings, int(time.Monday), "11:00", "14:00", nil)
	assert.Equal(t, []ReasonCode{ReasonOverlappingAvailability}, reasons)
}

func TestValidateWindow_BackToBackWindowsAllowed(t *testing.T) {
	siblings := []*TrainerAvailability{window(1, "09:00", "12:00", true)}

	reasons := ValidateWindow(siblings, int(time.Monday), "12:00", "15:00", nil)
	assert.Empty(t, reasons)
}

func TestValidateWindow_InactiveSiblingIgnored(t *testing.T) {
	siblings := []*TrainerAvailability{window(1, "09:00", "12:00", false)}

	reasons := ValidateWindow(siblings, int(time.Monday), "10:00", "13:00", nil)
	assert.Empty(t, reasons)
}

func TestValidateWindow_OtherDayIgnored(t *testing.T) {
	siblings := []*TrainerAvailability{window(1, "09:00", "12:00", true)}

	reasons := ValidateWindow(siblings, int(time.Tuesday), "10:00", "13:00", nil)
	assert.Empty(t, reasons)
}

func TestValidateWindow_ExcludesSelfOnUpdate(t *testing.T) {
	siblings := []*TrainerAvailability{window(7, "09:00", "12:00", true)}
	selfID := int64(7)

	// Редактируемое окно не конфликтует само с собой
	reasons := ValidateWindow(siblings, int(time.Monday), "09:30", "12:30", &selfID)
	assert.Empty(t, reasons)
}
