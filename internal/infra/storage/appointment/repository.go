package appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
)

// Repository файловый репозиторий заявок.
//
// Вся коллекция хранится одним JSON-массивом (с отступами) и переписывается
// целиком на каждую мутацию. Мьютекс дает эксклюзивный доступ внутри процесса:
// каждая мутация - это полный цикл чтение-изменение-запись. Гонки между
// несколькими процессами не предотвращаются - у сервиса один процесс.
type Repository struct {
	path string
	mu   sync.Mutex
}

// NewRepository создает репозиторий поверх указанного файла.
// Файл может еще не существовать - он будет создан при первой записи.
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// List возвращает все заявки.
// Если файл еще не создан, возвращает пустую коллекцию.
func (r *Repository) List(ctx context.Context) ([]*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.readAll()
}

// Append добавляет заявку в конец коллекции и переписывает файл
func (r *Repository) Append(ctx context.Context, appt *domain.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	appointments, err := r.readAll()
	if err != nil {
		return err
	}

	appointments = append(appointments, appt)
	return r.writeAll(appointments)
}

// ReplaceStatus заменяет статус заявки по идентификатору и переписывает файл.
// Если заявка не найдена, возвращает ErrAppointmentNotFound, ничего не меняя.
func (r *Repository) ReplaceStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	appointments, err := r.readAll()
	if err != nil {
		return nil, err
	}

	for _, appt := range appointments {
		if appt.ID == id {
			appt.Status = status
			if err := r.writeAll(appointments); err != nil {
				return nil, err
			}
			return appt, nil
		}
	}

	return nil, ErrAppointmentNotFound
}

func (r *Repository) readAll() ([]*domain.Appointment, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*domain.Appointment{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrReadFile, err)
	}

	var appointments []*domain.Appointment
	if err := json.Unmarshal(data, &appointments); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if appointments == nil {
		appointments = []*domain.Appointment{}
	}

	return appointments, nil
}

func (r *Repository) writeAll(appointments []*domain.Appointment) error {
	data, err := json.MarshalIndent(appointments, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteFile, err)
		}
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFile, err)
	}

	return nil
}
