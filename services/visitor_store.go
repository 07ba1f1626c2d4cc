package services

import (
	"context"
	"log"
	"sync"
	"time"

	"al_jazira_website/config"
)

// Visitors is the global visitor store
var Visitors *VisitorStore

// InitializeVisitors sets up the visitor store; every new visitor gets a
// controller delivering through relay with the configured CC list and template.
func InitializeVisitors(cfg *config.Config, relay Relay) {
	opts := SubmissionOptions{
		Recipients:   cfg.RelayCC,
		TemplateHint: cfg.RelayTemplate,
	}
	Visitors = NewVisitorStore(func() *SubmissionController {
		return NewSubmissionController(relay, opts)
	}, cfg.VisitorTTL)
	log.Printf("Visitor store ready (idle TTL: %s)", cfg.VisitorTTL)
}

// VisitorStore keeps one SubmissionController per browser.
// Controllers idle longer than the TTL are swept; pending ones are kept.
type VisitorStore struct {
	factory  func() *SubmissionController
	ttl      time.Duration
	visitors map[string]*SubmissionController
	mu       sync.Mutex
}

// NewVisitorStore creates a store that builds controllers with factory
func NewVisitorStore(factory func() *SubmissionController, ttl time.Duration) *VisitorStore {
	return &VisitorStore{
		factory:  factory,
		ttl:      ttl,
		visitors: make(map[string]*SubmissionController),
	}
}

// Controller returns the visitor's controller, creating an idle one on first use
func (v *VisitorStore) Controller(visitorID string) *SubmissionController {
	v.mu.Lock()
	defer v.mu.Unlock()

	ctrl, ok := v.visitors[visitorID]
	if !ok {
		ctrl = v.factory()
		v.visitors[visitorID] = ctrl
	}
	return ctrl
}

// Peek returns the visitor's controller without creating one
func (v *VisitorStore) Peek(visitorID string) (*SubmissionController, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	ctrl, ok := v.visitors[visitorID]
	return ctrl, ok
}

// Len returns the number of tracked visitors
func (v *VisitorStore) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.visitors)
}

// Sweep drops controllers idle since before now-TTL and returns how many were removed
func (v *VisitorStore) Sweep(now time.Time) int {
	v.mu.Lock()
	defer v.mu.Unlock()

	removed := 0
	for id, ctrl := range v.visitors {
		if ctrl.IsPending() {
			continue
		}
		if now.Sub(ctrl.LastActive()) > v.ttl {
			delete(v.visitors, id)
			removed++
		}
	}
	return removed
}

// StartSweeper sweeps on every tick until ctx is cancelled
func (v *VisitorStore) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if n := v.Sweep(now); n > 0 {
					log.Printf("[INFO] Swept %d idle visitor(s)", n)
				}
			}
		}
	}()
}
