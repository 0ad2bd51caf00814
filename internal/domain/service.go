package domain

import (
	"sort"
	"time"
)

// Service диагностическая услуга клиники
type Service string

const (
	ServiceECG        Service = "ECG"
	ServiceUltrasound Service = "ULTRASOUND"
	ServiceEyeCheckUp Service = "EYE CHECK UP"
	Service2DEcho     Service = "2D ECHO"
)

// serviceSchedule статическое расписание услуги: день недели и длительность процедуры.
// Это конфигурация клиники, а не данные - каждая услуга жестко привязана
// к одному дню недели и фиксированной длительности слота.
type serviceSchedule struct {
	Weekday             time.Weekday
	SlotDurationMinutes int
}

var serviceSchedules = map[Service]serviceSchedule{
	ServiceUltrasound: {Weekday: time.Tuesday, SlotDurationMinutes: 5},
	ServiceEyeCheckUp: {Weekday: time.Thursday, SlotDurationMinutes: 15},
	Service2DEcho:     {Weekday: time.Friday, SlotDurationMinutes: 30},
	ServiceECG:        {Weekday: time.Saturday, SlotDurationMinutes: 5},
}

// ParseService проверяет, что строка является одной из услуг клиники
func ParseService(s string) (Service, error) {
	svc := Service(s)
	if _, ok := serviceSchedules[svc]; !ok {
		return "", ErrUnknownService
	}
	return svc, nil
}

// Weekday день недели, в который клиника оказывает услугу (Sunday=0)
func (s Service) Weekday() time.Weekday {
	return serviceSchedules[s].Weekday
}

// SlotDurationMinutes длительность одного слота услуги в минутах
func (s Service) SlotDurationMinutes() int {
	return serviceSchedules[s].SlotDurationMinutes
}

// AllServices список услуг, отсортированный по дню недели
// (в таком порядке услуги показываются пациенту)
func AllServices() []Service {
	services := make([]Service, 0, len(serviceSchedules))
	for svc := range serviceSchedules {
		services = append(services, svc)
	}
	sort.Slice(services, func(i, j int) bool {
		return services[i].Weekday() < services[j].Weekday()
	})
	return services
}
