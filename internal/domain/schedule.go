package domain

import (
	"github.com/m04kA/GMS-SchedulingService/pkg/types"
)

// ReasonCode машинно-читаемый код отказа бизнес-проверки
type ReasonCode string

const (
	// ReasonTrainerNotWorkingThisDay тренер не имеет ни одного активного окна в этот день недели
	ReasonTrainerNotWorkingThisDay ReasonCode = "trainer_not_working_this_day"

	// ReasonOutsideWorkingHours запрошенный интервал не помещается целиком ни в одно окно
	ReasonOutsideWorkingHours ReasonCode = "outside_working_hours"

	// ReasonTimeSlotConflict запрошенный интервал пересекается с существующей записью
	ReasonTimeSlotConflict ReasonCode = "time_slot_conflict"

	// ReasonInvalidRange начало окна не раньше его конца
	ReasonInvalidRange ReasonCode = "invalid_range"

	// ReasonOverlappingAvailability окно пересекается с другим активным окном тренера
	ReasonOverlappingAvailability ReasonCode = "overlapping_availability"
)

// ReasonStrings конвертирует коды отказов в строки для ответов API
func ReasonStrings(reasons []ReasonCode) []string {
	out := make([]string, len(reasons))
	for i, r := range reasons {
		out[i] = string(r)
	}
	return out
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd)
// Интервалы пересекаются, только если a1 < b2 И b1 < a2 (строгие неравенства)
// Запись, заканчивающаяся ровно в 10:00, не конфликтует с записью, начинающейся в 10:00
//
// Единственная точка истины для всех проверок пересечений: создание записи,
// генерация слотов и валидация окон доступности используют этот предикат
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && bStart.IsBefore(aEnd)
}

// Admissibility результат проверки допустимости записи
type Admissibility struct {
	Admissible bool
	Reasons    []ReasonCode
}

// CheckAdmissibility решает, допустима ли запись [start, start+duration)
// для тренера при заданных окнах доступности и существующих записях на дату
//
// Две независимые проверки, обе выполняются всегда (причины накапливаются,
// вызывающая сторона показывает их все разом):
//  1. Вмещение в доступность: существует активное окно, целиком содержащее интервал.
//     Нет окон вообще -> trainer_not_working_this_day; окна есть, но ни одно
//     не содержит интервал -> outside_working_hours
//  2. Отсутствие пересечений с неотменёнными записями тренера на эту дату
//
// Чистая функция над снимком данных: гарантия от гонок двух одновременных
// созданий обеспечивается сериализуемой транзакцией на уровне хранилища
func CheckAdmissibility(
	windows []*TrainerAvailability,
	appointments []*Appointment,
	start types.TimeString,
	durationMinutes int,
) (Admissibility, error) {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return Admissibility{}, err
	}

	reasons := make([]ReasonCode, 0, 2)

	// Проверка 1: вмещение в окно доступности
	activeWindows := 0
	contained := false
	for _, w := range windows {
		if !w.IsActive {
			continue
		}
		activeWindows++
		if w.Contains(start, end) {
			contained = true
		}
	}

	if activeWindows == 0 {
		reasons = append(reasons, ReasonTrainerNotWorkingThisDay)
	} else if !contained {
		reasons = append(reasons, ReasonOutsideWorkingHours)
	}

	// Проверка 2: отсутствие пересечений с существующими записями
	for _, a := range appointments {
		if !a.BlocksSlot() {
			continue
		}
		if Overlaps(start, end, a.StartTime, a.EndTime) {
			reasons = append(reasons, ReasonTimeSlotConflict)
			break
		}
	}

	return Admissibility{
		Admissible: len(reasons) == 0,
		Reasons:    reasons,
	}, nil
}

// GenerateSlots генерирует упорядоченный список свободных времён начала
// для записи длительностью durationMinutes
//
// Для каждого активного окна кандидаты идут от начала окна с шагом
// SlotStepMinutes; кандидат допустим, если кандидат+длительность не выходит
// за конец окна и интервал не пересекается ни с одной неотменённой записью.
// Окна обрабатываются независимо в переданном порядке, результаты
// конкатенируются; окна не сливаются даже если граничат друг с другом
func GenerateSlots(
	windows []*TrainerAvailability,
	appointments []*Appointment,
	durationMinutes int,
) ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0)

	for _, w := range windows {
		if !w.IsActive {
			continue
		}

		current := w.StartTime
		for {
			slotEnd, err := current.AddMinutes(durationMinutes)
			if err != nil {
				// Кандидат вышел за пределы суток - окно исчерпано
				break
			}
			// Окно короче длительности услуги не даёт ни одного кандидата
			if slotEnd.IsAfter(w.EndTime) {
				break
			}

			if !conflictsAny(current, slotEnd, appointments) {
				slots = append(slots, current)
			}

			next, err := current.AddMinutes(SlotStepMinutes)
			if err != nil {
				break
			}
			current = next
		}
	}

	return slots, nil
}

// conflictsAny проверяет пересечение интервала хотя бы с одной неотменённой записью
func conflictsAny(start, end types.TimeString, appointments []*Appointment) bool {
	for _, a := range appointments {
		if !a.BlocksSlot() {
			continue
		}
		if Overlaps(start, end, a.StartTime, a.EndTime) {
			return true
		}
	}
	return false
}

// ValidateWindow проверяет кандидата окна доступности [start, end)
// против остальных окон тренера на тот же день недели
//
// Отказы: invalid_range если start >= end; overlapping_availability если
// кандидат пересекается с другим активным окном. При редактировании
// существующего окна его собственный id передается в excludeID и
// исключается из проверки пересечений
//
// Существующие записи против нового окна не перепроверяются: сужение окна
// не отменяет уже созданные в вырезанном диапазоне записи
func ValidateWindow(
	siblings []*TrainerAvailability,
	dayOfWeek int,
	start, end types.TimeString,
	excludeID *int64,
) []ReasonCode {
	reasons := make([]ReasonCode, 0, 2)

	if !start.IsBefore(end) {
		reasons = append(reasons, ReasonInvalidRange)
	}

	for _, w := range siblings {
		if !w.IsActive {
			continue
		}
		if int(w.DayOfWeek) != dayOfWeek {
			continue
		}
		if excludeID != nil && w.ID == *excludeID {
			continue
		}
		if Overlaps(start, end, w.StartTime, w.EndTime) {
			reasons = append(reasons, ReasonOverlappingAvailability)
			break
		}
	}

	return reasons
}
