package audit

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const defaultQueueSize = 100

type Event struct {
	ActorID  *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
	At       time.Time
}

// Dispatcher entrega eventos de forma assíncrona para os sinks.
// Fila cheia descarta o evento: auditoria nunca quebra a API.
type Dispatcher struct {
	sinks []Sink
	log   *zap.Logger
	queue chan Event

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(log *zap.Logger, sinks ...Sink) *Dispatcher {
	return newDispatcher(log, defaultQueueSize, sinks...)
}

func newDispatcher(log *zap.Logger, size int, sinks ...Sink) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}

	d := &Dispatcher{
		sinks: sinks,
		log:   log,
		queue: make(chan Event, size),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		for _, s := range d.sinks {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := s.Write(ctx, ev); err != nil {
				d.log.Warn("audit write failed",
					zap.String("action", ev.Action),
					zap.Error(err))
			}
			cancel()
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	defer func() {
		// Dispatch depois de Close: canal fechado
		if recover() != nil {
			d.log.Warn("audit dispatcher closed, dropping event", zap.String("action", ev.Action))
		}
	}()

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close para de aceitar eventos e espera a fila esvaziar ou ctx expirar.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.closeOnce.Do(func() { close(d.queue) })

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
