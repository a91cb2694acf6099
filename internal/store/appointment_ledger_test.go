package store

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/elegance-studio/salon-service/internal/domain"
	"github.com/elegance-studio/salon-service/internal/persistence"
	apperrors "github.com/elegance-studio/salon-service/pkg/errorutil"
)

func newTestLedger(t *testing.T, kv persistence.Store) *AppointmentLedger {
	t.Helper()
	l, err := NewAppointmentLedger(context.Background(), kv, nil, zap.NewNop())
	if err != nil {
		t.Fatalf("NewAppointmentLedger: %v", err)
	}
	return l
}

func booking(email, service string) *domain.Appointment {
	return &domain.Appointment{
		Email:   email,
		Date:    "2024-01-01",
		Time:    "10:00",
		Service: service,
		StaffID: 1,
	}
}

func TestBook_NilIsSilentNoOp(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(t)
	l := newTestLedger(t, kv)

	created, err := l.Book(ctx, nil)
	if err != nil {
		t.Fatalf("Book(nil): %v", err)
	}
	if created != nil {
		t.Fatalf("expected no record, got %+v", created)
	}
	if got := len(l.All()); got != 0 {
		t.Fatalf("collection changed: %d", got)
	}
	if _, err := kv.Get(ctx, AppointmentsKey); !errors.Is(err, persistence.ErrKeyNotFound) {
		t.Fatalf("nil booking must not persist, got %v", err)
	}
}

func TestBook_AssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t, newTestKV(t))

	first, err := l.Book(ctx, booking("a@x.com", "Haircut"))
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	second, err := l.Book(ctx, booking("b@x.com", "Manicure"))
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("unexpected ids: %d, %d", first.ID, second.ID)
	}
}

func TestBook_NeverReissuesAnExistingID(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t, newTestKV(t))

	l.Book(ctx, booking("a@x.com", "Haircut"))
	l.Book(ctx, booking("b@x.com", "Haircut"))
	l.Book(ctx, booking("c@x.com", "Haircut"))
	l.Cancel(ctx, 1)

	created, err := l.Book(ctx, booking("d@x.com", "Haircut"))
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	for _, existing := range l.All() {
		if existing.ID == created.ID && existing.Email != created.Email {
			t.Fatalf("id %d collides with existing booking", created.ID)
		}
	}
	if created.ID != 4 {
		t.Fatalf("expected id 4, got %d", created.ID)
	}
}

func TestFindByEmail_ReturnsFirstMatch(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t, newTestKV(t))

	l.Book(ctx, booking("a@x.com", "Haircut"))
	l.Book(ctx, booking("a@x.com", "Manicure"))

	got, err := l.FindByEmail("a@x.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if got.Service != "Haircut" {
		t.Fatalf("expected first booking, got %+v", got)
	}
}

func TestFindByEmail_ExactMatchOnly(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t, newTestKV(t))

	l.Book(ctx, booking("a@x.com", "Haircut"))

	if _, err := l.FindByEmail("A@X.COM"); !apperrors.IsCode(err, "NOT_FOUND") {
		t.Fatalf("expected NOT_FOUND for different case, got %v", err)
	}
}

func TestListByEmail_ReturnsAllMatches(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t, newTestKV(t))

	l.Book(ctx, booking("a@x.com", "Haircut"))
	l.Book(ctx, booking("b@x.com", "Haircut"))
	l.Book(ctx, booking("a@x.com", "Manicure"))

	got := l.ListByEmail("a@x.com")
	if len(got) != 2 || got[0].Service != "Haircut" || got[1].Service != "Manicure" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestCancel_RemovesBooking(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t, newTestKV(t))

	created, _ := l.Book(ctx, booking("a@x.com", "Haircut"))
	l.Cancel(ctx, created.ID)

	if got := len(l.All()); got != 0 {
		t.Fatalf("booking not removed: %d left", got)
	}
}

func TestCancel_UnknownIDStillPersists(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(t)
	l := newTestLedger(t, kv)

	l.Cancel(ctx, 999)

	data, err := kv.Get(ctx, AppointmentsKey)
	if err != nil {
		t.Fatalf("cancel must persist unconditionally: %v", err)
	}
	var stored []domain.Appointment
	if err := json.Unmarshal(data, &stored); err != nil {
		t.Fatalf("decode mirror: %v", err)
	}
	if len(stored) != 0 {
		t.Fatalf("unexpected mirror contents: %+v", stored)
	}
}

func TestLedger_RoundTripThroughStorage(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(t)
	l := newTestLedger(t, kv)

	appt := booking("a@x.com", "Haircut")
	appt.Details = map[string]any{"notes": "first visit"}
	if _, err := l.Book(ctx, appt); err != nil {
		t.Fatalf("Book: %v", err)
	}

	reloaded := newTestLedger(t, kv)
	if !reflect.DeepEqual(l.All(), reloaded.All()) {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", l.All(), reloaded.All())
	}
}
