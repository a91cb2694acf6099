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

	"github.com/elegance-studio/salon-service/internal/availability"
	"github.com/elegance-studio/salon-service/internal/domain"
	"github.com/elegance-studio/salon-service/internal/events"
	"github.com/elegance-studio/salon-service/internal/persistence"
	apperrors "github.com/elegance-studio/salon-service/pkg/errorutil"
)

// StaffKey is the durable storage key for the staff collection, kept
// verbatim from the original prototype's layout.
const StaffKey = "EleganceStaff"

// StaffDirectory owns the authoritative in-memory roster of staff
// members and mirrors it to durable storage on every mutation. The
// in-memory slice stays the source of truth; a failed mirror write is
// logged and the mutation still succeeds.
type StaffDirectory struct {
	mu         sync.Mutex
	members    []domain.StaffMember
	kv         persistence.Store
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewStaffDirectory loads the roster from durable storage, seeding the
// default roster (and writing it back) when no record exists yet.
func NewStaffDirectory(ctx context.Context, kv persistence.Store, dispatcher events.Dispatcher, logger *zap.Logger) (*StaffDirectory, error) {
	d := &StaffDirectory{kv: kv, dispatcher: dispatcher, logger: logger}

	data, err := kv.Get(ctx, StaffKey)
	switch {
	case errors.Is(err, persistence.ErrKeyNotFound):
		d.members = SeedStaff()
		d.persistLocked(ctx)
		logger.Info("seeded staff directory", zap.Int("count", len(d.members)))
	case err != nil:
		return nil, fmt.Errorf("load staff collection: %w", err)
	default:
		if err := json.Unmarshal(data, &d.members); err != nil {
			return nil, fmt.Errorf("decode staff collection: %w", err)
		}
	}

	return d, nil
}

// Add validates the candidate, assigns the next id, marks it active and
// appends it to the roster.
func (d *StaffDirectory) Add(ctx context.Context, candidate domain.StaffMember) (*domain.StaffMember, error) {
	if err := validateCandidate(&candidate); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.members {
		if d.members[i].EmailEquals(candidate.Email) || d.members[i].Phone == candidate.Phone {
			return nil, apperrors.NewDuplicate("staff member with this email or phone already exists", map[string]any{
				"email": candidate.Email,
				"phone": candidate.Phone,
			})
		}
	}

	candidate.ID = d.nextIDLocked()
	candidate.Status = domain.StaffStatusActive
	d.members = append(d.members, candidate)
	d.persistLocked(ctx)

	created := candidate
	d.publish(ctx, events.EventStaffAdded, events.StaffAddedPayload{
		StaffID: created.ID,
		Name:    created.Name,
		Role:    created.Role,
	})
	return &created, nil
}

// Update merges the patch over the member with the given id. The id
// itself is immutable.
func (d *StaffDirectory) Update(ctx context.Context, id int, patch domain.StaffPatch) (*domain.StaffMember, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx := d.indexOfLocked(id)
	if idx < 0 {
		return nil, apperrors.NewNotFound("staff member", map[string]any{"id": id})
	}

	patch.ApplyTo(&d.members[idx])
	d.members[idx].ID = id
	d.persistLocked(ctx)

	updated := d.members[idx]
	d.publish(ctx, events.EventStaffUpdated, events.StaffUpdatedPayload{StaffID: id})
	return &updated, nil
}

// Remove deletes the member with the given id. Removing an unknown id
// is not an error; the collection is persisted either way.
func (d *StaffDirectory) Remove(ctx context.Context, id int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	removed := false
	kept := d.members[:0]
	for i := range d.members {
		if d.members[i].ID == id {
			removed = true
			continue
		}
		kept = append(kept, d.members[i])
	}
	d.members = kept
	d.persistLocked(ctx)

	if removed {
		d.publish(ctx, events.EventStaffRemoved, events.StaffRemovedPayload{StaffID: id})
	}
}

// All returns every member in directory order.
func (d *StaffDirectory) All() []domain.StaffMember {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.copyLocked()
}

// Active returns the members with active status, in directory order.
func (d *StaffDirectory) Active() []domain.StaffMember {
	d.mu.Lock()
	defer d.mu.Unlock()

	result := make([]domain.StaffMember, 0, len(d.members))
	for i := range d.members {
		if d.members[i].IsActive() {
			result = append(result, d.members[i])
		}
	}
	return result
}

// BySpecialty returns the active members offering the given service, in
// directory order.
func (d *StaffDirectory) BySpecialty(service string) []domain.StaffMember {
	d.mu.Lock()
	defer d.mu.Unlock()

	result := make([]domain.StaffMember, 0, len(d.members))
	for i := range d.members {
		if d.members[i].IsActive() && d.members[i].HasSpecialty(service) {
			result = append(result, d.members[i])
		}
	}
	return result
}

// Available returns the members able to serve the service at the
// requested date and time.
func (d *StaffDirectory) Available(date, clock, service string) ([]domain.StaffMember, error) {
	d.mu.Lock()
	members := d.copyLocked()
	d.mu.Unlock()

	matched, err := availability.Filter(members, date, clock, service)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid date", map[string]any{"date": date})
	}
	return matched, nil
}

func (d *StaffDirectory) nextIDLocked() int {
	next := 1
	for i := range d.members {
		if d.members[i].ID >= next {
			next = d.members[i].ID + 1
		}
	}
	return next
}

func (d *StaffDirectory) indexOfLocked(id int) int {
	for i := range d.members {
		if d.members[i].ID == id {
			return i
		}
	}
	return -1
}

func (d *StaffDirectory) copyLocked() []domain.StaffMember {
	return append([]domain.StaffMember(nil), d.members...)
}

// persistLocked mirrors the full collection to durable storage. The
// mirror is optimistic: a failed write leaves the in-memory state
// authoritative and is only logged.
func (d *StaffDirectory) persistLocked(ctx context.Context) {
	data, err := json.Marshal(d.members)
	if err != nil {
		d.logger.Error("encode staff collection", zap.Error(err))
		return
	}
	if err := d.kv.Put(ctx, StaffKey, data); err != nil {
		d.logger.Warn("persist staff collection", zap.Error(err))
	}
}

func (d *StaffDirectory) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if d.dispatcher == nil {
		return
	}
	_ = d.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
}

func validateCandidate(candidate *domain.StaffMember) error {
	missing := []string{}
	if candidate.Name == "" {
		missing = append(missing, "name")
	}
	if candidate.Email == "" {
		missing = append(missing, "email")
	}
	if candidate.Phone == "" {
		missing = append(missing, "phone")
	}
	if candidate.Role == "" {
		missing = append(missing, "role")
	}
	if len(candidate.Specialties) == 0 {
		missing = append(missing, "specialties")
	}
	if len(missing) > 0 {
		return apperrors.NewValidationError("missing required fields", map[string]any{"fields": missing})
	}
	return nil
}
