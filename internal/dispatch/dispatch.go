// Package dispatch demultiplexes the global button-press stream back to
// the screens that own the pressed buttons.
//
// Each screen gets at most one stream subscription, created when its
// first instance mounts and released when the mount count drops back to
// zero. The subscription's listener filters presses by owner route,
// decodes the local id and resolves a handler: the most recently mounted
// instance's handler first, then the screen's default handler. An
// unmatched press on an owned route is a warning, never an error.
package dispatch

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/atomic"

	"github.com/navrail/navrail/internal/logging"
	"github.com/navrail/navrail/internal/routeid"
	"github.com/navrail/navrail/internal/screen"
	"github.com/navrail/navrail/internal/stream"
)

// Dispatcher owns the per-screen stream subscriptions.
// It is safe for concurrent use.
type Dispatcher struct {
	stream *stream.Stream
	logger *logging.Logger

	mu       sync.Mutex
	bindings map[*screen.Descriptor]*binding
}

// binding tracks one screen's subscription and its live mounts,
// most recent last.
type binding struct {
	desc   *screen.Descriptor
	refs   *atomic.Int32
	subID  string
	mounts []*Mount
}

// Mount is a handle for one live instance of a screen. Releasing it
// decrements the screen's mount count; the stream subscription is removed
// only when the count reaches zero.
type Mount struct {
	dispatcher *Dispatcher
	binding    *binding
	handler    screen.Handler
	released   bool
}

// New creates a Dispatcher over the given press stream.
func New(s *stream.Stream, opts ...Option) *Dispatcher {
	if s == nil {
		panic("dispatch: stream must not be nil")
	}

	cfg := &config{logger: logging.NopLogger()}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logging.NopLogger()
	}

	return &Dispatcher{
		stream:   s,
		logger:   cfg.logger,
		bindings: make(map[*screen.Descriptor]*binding),
	}
}

// Mount registers a live instance of the screen. The first mount of a
// screen subscribes its listener to the press stream; if the descriptor
// has auto-reset enabled its bar is re-sent through the update channel.
// A failed reset rolls the mount back.
func (d *Dispatcher) Mount(ctx context.Context, desc *screen.Descriptor, opts ...MountOption) (*Mount, error) {
	if desc == nil {
		return nil, fmt.Errorf("dispatch: descriptor must not be nil")
	}
	if desc.Route() == "" {
		return nil, fmt.Errorf("dispatch: screen %q has no registered route", desc.Name())
	}

	m := &Mount{dispatcher: d}
	for _, opt := range opts {
		opt(m)
	}

	d.mu.Lock()
	b, ok := d.bindings[desc]
	if !ok {
		b = &binding{desc: desc, refs: atomic.NewInt32(0)}
		d.bindings[desc] = b
	}
	m.binding = b
	b.mounts = append(b.mounts, m)

	if b.refs.Inc() == 1 {
		b.subID = d.stream.Subscribe(func(p stream.Press) {
			d.dispatch(b, p)
		})
		d.logger.Debug("subscribed screen to press stream",
			"screen", desc.Name(), "route", desc.Route())
	}
	d.mu.Unlock()

	if desc.AutoReset() {
		if err := desc.ResetBar(ctx, nil); err != nil {
			m.Unmount()
			return nil, err
		}
	}

	return m, nil
}

// Unmount releases the mount. Safe to call more than once; only the
// first call has effect. When the screen's last mount is released, its
// stream subscription is removed.
func (m *Mount) Unmount() {
	d := m.dispatcher

	d.mu.Lock()
	defer d.mu.Unlock()

	if m.released {
		return
	}
	m.released = true

	b := m.binding
	for i, mount := range b.mounts {
		if mount == m {
			b.mounts = append(b.mounts[:i], b.mounts[i+1:]...)
			break
		}
	}

	if b.refs.Dec() == 0 {
		d.stream.Unsubscribe(b.subID)
		delete(d.bindings, b.desc)
		d.logger.Debug("unsubscribed screen from press stream",
			"screen", b.desc.Name(), "route", b.desc.Route())
	}
}

// dispatch is the per-screen stream listener. Presses owned by other
// routes are ignored; owned presses are decoded and handed to the
// resolved handler.
func (d *Dispatcher) dispatch(b *binding, p stream.Press) {
	route := b.desc.Route()
	if routeid.OwnerRoute(p.QualifiedID) != route {
		return
	}

	localID := routeid.Decode(p.QualifiedID, route)
	handler := d.resolveHandler(b)
	if handler == nil {
		d.logger.Warn("unmapped navigation button press",
			"route", route, "id", localID)
		return
	}

	handler(localID)
}

// resolveHandler tries the mounted instances from most recent to oldest,
// then falls back to the screen's default handler.
func (d *Dispatcher) resolveHandler(b *binding) screen.Handler {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := len(b.mounts) - 1; i >= 0; i-- {
		if b.mounts[i].handler != nil {
			return b.mounts[i].handler
		}
	}
	return b.desc.DefaultHandler()
}

// Mounts returns the number of live mounts for the given screen.
func (d *Dispatcher) Mounts(desc *screen.Descriptor) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.bindings[desc]
	if !ok {
		return 0
	}
	return int(b.refs.Load())
}
