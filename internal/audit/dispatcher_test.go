package audit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/testutil"
)

type memorySink struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (s *memorySink) Write(_ context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return s.err
}

func (s *memorySink) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev.Action)
	}
	return out
}

func TestDispatcherDeliversToEverySink(t *testing.T) {
	a := &memorySink{}
	b := &memorySink{err: errors.New("redis down")}

	d := NewDispatcher(nil, a, b)
	d.Dispatch(Event{Action: "appointment_created", Entity: "appointment"})
	d.Dispatch(Event{Action: "appointment_cancelled", Entity: "appointment"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	want := []string{"appointment_created", "appointment_cancelled"}
	assert.Equal(t, want, a.actions())
	assert.Equal(t, want, b.actions())
	assert.False(t, a.events[0].At.IsZero())
}

func TestDispatchAfterCloseDoesNotPanic(t *testing.T) {
	d := NewDispatcher(nil)
	require.NoError(t, d.Close(context.Background()))

	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: "late"})
	})
	assert.NoError(t, d.Close(context.Background()))
}

type blockingSink struct {
	release chan struct{}
}

func (s *blockingSink) Write(ctx context.Context, _ Event) error {
	<-s.release
	return nil
}

func TestDispatchDropsWhenQueueFull(t *testing.T) {
	sink := &blockingSink{release: make(chan struct{})}
	d := newDispatcher(nil, 1, sink)

	assert.NotPanics(t, func() {
		for i := 0; i < 10; i++ {
			d.Dispatch(Event{Action: "flood"})
		}
	})

	close(sink.release)
	require.NoError(t, d.Close(context.Background()))
}

func TestLoggerPersistsAuditLog(t *testing.T) {
	db := testutil.NewDB(t)

	actor, entity := uint(3), uint(42)
	err := New(db).Write(context.Background(), Event{
		ActorID:  &actor,
		Action:   "appointment_conflict",
		Entity:   "appointment",
		EntityID: &entity,
		Metadata: map[string]any{"barber_id": 3},
	})
	require.NoError(t, err)

	var got models.AuditLog
	require.NoError(t, db.First(&got).Error)
	assert.Equal(t, "appointment_conflict", got.Action)
	assert.Equal(t, `{"barber_id":3}`, got.Metadata)
	require.NotNil(t, got.EntityID)
	assert.Equal(t, uint(42), *got.EntityID)
}
