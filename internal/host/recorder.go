package host

import (
	"context"
	"sync"
)

// Recorder is an in-memory Channel that records every request it
// receives, in order. It backs tests and the render command; a configured
// error is returned from every call to exercise failure propagation.
type Recorder struct {
	mu sync.Mutex

	Updates   []UpdateRequest
	Navigates []NavigateRequest
	Backs     []*BackRequest
	Finishes  []FinishRequest

	// Err, when non-nil, is returned unchanged from every call after the
	// request has been recorded.
	Err error
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Update records the request.
func (r *Recorder) Update(_ context.Context, req UpdateRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Updates = append(r.Updates, req)
	return r.Err
}

// Navigate records the request.
func (r *Recorder) Navigate(_ context.Context, req NavigateRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Navigates = append(r.Navigates, req)
	return r.Err
}

// Back records the request; req may be nil for an unqualified back.
func (r *Recorder) Back(_ context.Context, req *BackRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Backs = append(r.Backs, req)
	return r.Err
}

// Finish records the request.
func (r *Recorder) Finish(_ context.Context, req FinishRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Finishes = append(r.Finishes, req)
	return r.Err
}

// CallCount returns the total number of recorded requests across all
// channels.
func (r *Recorder) CallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Updates) + len(r.Navigates) + len(r.Backs) + len(r.Finishes)
}
