package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/elegance-studio/salon-service/internal/domain"
	"github.com/elegance-studio/salon-service/internal/events"
	"github.com/elegance-studio/salon-service/internal/persistence"
	apperrors "github.com/elegance-studio/salon-service/pkg/errorutil"
)

// AppointmentsKey is the durable storage key for the booking
// collection.
const AppointmentsKey = "appointments"

// AppointmentLedger owns the authoritative in-memory collection of
// bookings, mirrored to durable storage on every mutation.
type AppointmentLedger struct {
	mu           sync.Mutex
	appointments []domain.Appointment
	kv           persistence.Store
	dispatcher   events.Dispatcher
	logger       *zap.Logger
}

// NewAppointmentLedger loads the collection from durable storage,
// starting empty when no record exists yet.
func NewAppointmentLedger(ctx context.Context, kv persistence.Store, dispatcher events.Dispatcher, logger *zap.Logger) (*AppointmentLedger, error) {
	l := &AppointmentLedger{kv: kv, dispatcher: dispatcher, logger: logger}

	data, err := kv.Get(ctx, AppointmentsKey)
	switch {
	case errors.Is(err, persistence.ErrKeyNotFound):
		l.appointments = []domain.Appointment{}
	case err != nil:
		return nil, fmt.Errorf("load appointment collection: %w", err)
	default:
		if err := json.Unmarshal(data, &l.appointments); err != nil {
			return nil, fmt.Errorf("decode appointment collection: %w", err)
		}
	}

	return l, nil
}

// Book appends the booking and assigns it an id. A nil booking is a
// silent no-op, mirroring the original forgiving contract. Ids are
// assigned max existing + 1 so a cancelled id is never reissued.
func (l *AppointmentLedger) Book(ctx context.Context, booking *domain.Appointment) (*domain.Appointment, error) {
	if booking == nil {
		return nil, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	appt := *booking
	appt.ID = l.nextIDLocked()
	l.appointments = append(l.appointments, appt)
	l.persistLocked(ctx)

	l.publish(ctx, events.EventAppointmentBooked, events.AppointmentBookedPayload{
		AppointmentID: appt.ID,
		Email:         appt.Email,
		Date:          appt.Date,
		Time:          appt.Time,
		Service:       appt.Service,
		StaffID:       appt.StaffID,
	})
	created := appt
	return &created, nil
}

// FindByEmail returns the first appointment whose email matches
// exactly, in collection order.
func (l *AppointmentLedger) FindByEmail(email string) (*domain.Appointment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.appointments {
		if l.appointments[i].Email == email {
			found := l.appointments[i]
			return &found, nil
		}
	}
	return nil, apperrors.NewNotFound("appointment", map[string]any{"email": email})
}

// ListByEmail returns every appointment for the email, in collection
// order.
func (l *AppointmentLedger) ListByEmail(email string) []domain.Appointment {
	l.mu.Lock()
	defer l.mu.Unlock()

	result := make([]domain.Appointment, 0, len(l.appointments))
	for i := range l.appointments {
		if l.appointments[i].Email == email {
			result = append(result, l.appointments[i])
		}
	}
	return result
}

// All returns every appointment in collection order.
func (l *AppointmentLedger) All() []domain.Appointment {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]domain.Appointment(nil), l.appointments...)
}

// Cancel removes every appointment with the given id. The collection is
// persisted even when nothing matched.
func (l *AppointmentLedger) Cancel(ctx context.Context, id int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := false
	kept := l.appointments[:0]
	for i := range l.appointments {
		if l.appointments[i].ID == id {
			removed = true
			continue
		}
		kept = append(kept, l.appointments[i])
	}
	l.appointments = kept
	l.persistLocked(ctx)

	if removed {
		l.publish(ctx, events.EventAppointmentCancelled, events.AppointmentCancelledPayload{AppointmentID: id})
	}
}

func (l *AppointmentLedger) nextIDLocked() int {
	next := 1
	for i := range l.appointments {
		if l.appointments[i].ID >= next {
			next = l.appointments[i].ID + 1
		}
	}
	return next
}

func (l *AppointmentLedger) persistLocked(ctx context.Context) {
	data, err := json.Marshal(l.appointments)
	if err != nil {
		l.logger.Error("encode appointment collection", zap.Error(err))
		return
	}
	if err := l.kv.Put(ctx, AppointmentsKey, data); err != nil {
		l.logger.Warn("persist appointment collection", zap.Error(err))
	}
}

func (l *AppointmentLedger) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if l.dispatcher == nil {
		return
	}
	_ = l.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
}
