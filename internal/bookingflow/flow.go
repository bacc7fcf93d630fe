package bookingflow

import (
	"time"

	"github.com/rakshdevstudio/JCB/internal/domain"
	"github.com/rakshdevstudio/JCB/pkg/types"
)

// Step шаг мастера бронирования
type Step string

const (
	StepCity         Step = "city"
	StepSalon        Step = "salon"
	StepService      Step = "service"
	StepStaff        Step = "staff"
	StepDateTime     Step = "datetime"
	StepConfirmation Step = "confirmation"
)

// Steps фиксированный порядок шагов мастера
var Steps = []Step{StepCity, StepSalon, StepService, StepStaff, StepDateTime, StepConfirmation}

// Selection незавершённый выбор пользователя. Каждое поле nil, пока не выбрано.
// Принадлежит ровно одной сессии и никогда не разделяется между ними.
type Selection struct {
	City    *domain.City      `json:"city"`
	Salon   *domain.Salon     `json:"salon"`
	Service *domain.Service   `json:"service"`
	Staff   *domain.Staff     `json:"staff"`
	Date    *time.Time        `json:"date"`
	Time    *types.TimeString `json:"time"`
}

// Flow конечный автомат мастера бронирования.
// Некорректные переходы не являются ошибками - они просто не применяются
// (метод возвращает false), автомат никогда не «падает».
type Flow struct {
	Step      Step      `json:"step"`
	Selection Selection `json:"selection"`
}

// New создаёт автомат на первом шаге с пустым выбором
func New() *Flow {
	return &Flow{Step: StepCity}
}

// stepIndex возвращает позицию шага в фиксированном порядке, -1 для неизвестного
func stepIndex(s Step) int {
	for i, step := range Steps {
		if step == s {
			return i
		}
	}
	return -1
}

// StepIndex позиция текущего шага (0-based)
func (f *Flow) StepIndex() int {
	return stepIndex(f.Step)
}

// Progress доля пройденных шагов в процентах, для индикатора прогресса
func (f *Flow) Progress() float64 {
	return float64(f.StepIndex()+1) / float64(len(Steps)) * 100
}

// SelectCity выбирает город. Сбрасывает зависящие от города выборы
// (салон и мастера) и переводит автомат на шаг выбора салона.
func (f *Flow) SelectCity(city domain.City) bool {
	f.Selection.City = &city
	f.Selection.Salon = nil
	f.Selection.Staff = nil
	f.Step = StepSalon
	return true
}

// SelectSalon выбирает салон. Требует выбранного города.
// Сбрасывает выбранного мастера и переводит на шаг выбора услуги.
func (f *Flow) SelectSalon(salon domain.Salon) bool {
	if f.Selection.City == nil {
		return false
	}
	f.Selection.Salon = &salon
	f.Selection.Staff = nil
	f.Step = StepService
	return true
}

// SelectService выбирает услугу. Требует выбранного салона.
func (f *Flow) SelectService(service domain.Service) bool {
	if f.Selection.Salon == nil {
		return false
	}
	f.Selection.Service = &service
	f.Step = StepStaff
	return true
}

// SelectStaff выбирает мастера. nil означает «любой мастер».
// Требует выбранной услуги.
func (f *Flow) SelectStaff(staff *domain.Staff) bool {
	if f.Selection.Service == nil {
		return false
	}
	f.Selection.Staff = staff
	f.Step = StepDateTime
	return true
}

// SelectDateTime выбирает дату и время, переводит на подтверждение.
// Требует пройденного шага выбора мастера (услуга выбрана).
func (f *Flow) SelectDateTime(date time.Time, t types.TimeString) bool {
	if f.Selection.Service == nil {
		return false
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	f.Selection.Date = &day
	f.Selection.Time = &t
	f.Step = StepConfirmation
	return true
}

// GoBack переходит на предыдущий шаг, не сбрасывая выбор.
// No-op на первом шаге и на подтверждении: успешно собранное бронирование
// нельзя незаметно снова сделать «в процессе».
func (f *Flow) GoBack() bool {
	if f.Step == StepConfirmation {
		return false
	}
	idx := f.StepIndex()
	if idx <= 0 {
		return false
	}
	f.Step = Steps[idx-1]
	return true
}

// CanGoBack сообщает, доступна ли навигация назад с текущего шага
func (f *Flow) CanGoBack() bool {
	return f.StepIndex() > 0 && f.Step != StepConfirmation
}

// GoToStep переходит на более ранний шаг без сброса выбора.
// Вперёд перейти нельзя - вперёд автомат двигают только выборы.
// С шага подтверждения уйти можно только через Reset.
func (f *Flow) GoToStep(target Step) bool {
	if f.Step == StepConfirmation {
		return false
	}
	targetIdx := stepIndex(target)
	if targetIdx < 0 || targetIdx >= f.StepIndex() {
		return false
	}
	f.Step = target
	return true
}

// Reset полностью очищает выбор и возвращает автомат на первый шаг
func (f *Flow) Reset() {
	f.Selection = Selection{}
	f.Step = StepCity
}

// IsComplete сообщает, достаточно ли данных для отправки бронирования.
// Мастер может быть nil («любой»), остальные обязательны.
func (f *Flow) IsComplete() bool {
	s := f.Selection
	return s.Salon != nil && s.Service != nil && s.Date != nil && s.Time != nil
}
