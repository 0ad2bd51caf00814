package get_available_slots

import (
	"github.com/m04kA/SMC-ClinicService/internal/domain"
)

// Request модель запроса доступности услуги
type Request struct {
	Service string // название услуги, например "2D ECHO"
	Count   int    // сколько дат вернуть; 0 = значение по умолчанию
}

// Response модель ответа: даты и времена, из которых пациент выбирает слот
type Response struct {
	Service        domain.Service      // услуга
	Weekday        int                 // день недели услуги (Sunday=0)
	WeekdayName    string              // название дня недели
	Dates          []domain.DateOption // ближайшие даты приема
	Times          []string            // метки слотов в порядке возрастания
	FirstAvailable *domain.Slot        // самая ранняя пара (дата, время), nil если слотов нет
}
