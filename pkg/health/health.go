// Package health provides health checks for the store adapters.
package health

import (
	"context"
	"sync"
	"time"
)

// Status represents the health status of a component.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

// CheckResult represents the result of a health check.
type CheckResult struct {
	Name      string        `json:"name"`
	Status    Status        `json:"status"`
	Error     string        `json:"error,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	Duration  time.Duration `json:"duration"`
}

// Checkable is implemented by components that support health checks; the
// store/mongodb Adapter is one.
type Checkable interface {
	HealthCheck(ctx context.Context) error
}

// Checker performs a named health check.
type Checker interface {
	Check(ctx context.Context) CheckResult
	Name() string
}

// AdapterChecker adapts any Checkable component to the Checker interface
// with a per-check timeout.
type AdapterChecker struct {
	name    string
	adapter Checkable
	timeout time.Duration
}

// NewAdapterChecker creates a health checker for an adapter. A zero timeout
// defaults to 5 seconds.
func NewAdapterChecker(name string, adapter Checkable, timeout time.Duration) *AdapterChecker {
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &AdapterChecker{
		name:    name,
		adapter: adapter,
		timeout: timeout,
	}
}

// Name returns the checker name.
func (c *AdapterChecker) Name() string {
	return c.name
}

// Check performs the health check on the adapter.
func (c *AdapterChecker) Check(ctx context.Context) CheckResult {
	start := time.Now()

	checkCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := c.adapter.HealthCheck(checkCtx)
	result := CheckResult{
		Name:      c.name,
		Status:    StatusHealthy,
		Timestamp: time.Now(),
		Duration:  time.Since(start),
	}
	if err != nil {
		result.Status = StatusUnhealthy
		result.Error = err.Error()
	}
	return result
}

// Registry manages a collection of health checks.
type Registry struct {
	mu       sync.RWMutex
	checkers map[string]Checker
}

// NewRegistry creates a new health check registry.
func NewRegistry() *Registry {
	return &Registry{
		checkers: make(map[string]Checker),
	}
}

// Register adds a health check to the registry. A checker with the same
// name replaces the previous one.
func (r *Registry) Register(checker Checker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[checker.Name()] = checker
}

// CheckAll runs every registered check and returns the results keyed by
// checker name.
func (r *Registry) CheckAll(ctx context.Context) map[string]CheckResult {
	r.mu.RLock()
	checkers := make([]Checker, 0, len(r.checkers))
	for _, c := range r.checkers {
		checkers = append(checkers, c)
	}
	r.mu.RUnlock()

	results := make(map[string]CheckResult, len(checkers))
	for _, c := range checkers {
		results[c.Name()] = c.Check(ctx)
	}
	return results
}

// Healthy reports whether every registered check currently passes.
func (r *Registry) Healthy(ctx context.Context) bool {
	for _, result := range r.CheckAll(ctx) {
		if result.Status != StatusHealthy {
			return false
		}
	}
	return true
}
