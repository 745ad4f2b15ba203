// Package health implements liveness and readiness probes for the bridge.
package health

import (
	"context"
	"sync"
	"time"
)

// DefaultTimeout bounds a full readiness round.
const DefaultTimeout = 5 * time.Second

type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
	// StatusDegraded means only optional dependencies are down; the service still serves.
	StatusDegraded Status = "degraded"
)

type Result struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

func up() Result { return Result{Status: StatusUp} }

func down(err error) Result { return Result{Status: StatusDown, Message: err.Error()} }

// Checker probes a single dependency.
type Checker interface {
	Name() string
	Check(ctx context.Context) Result
}

// CheckFunc adapts a plain function into a named Checker.
type CheckFunc struct {
	name string
	fn   func(ctx context.Context) error
}

func NewCheckFunc(name string, fn func(ctx context.Context) error) CheckFunc {
	return CheckFunc{name: name, fn: fn}
}

func (c CheckFunc) Name() string { return c.name }

func (c CheckFunc) Check(ctx context.Context) Result {
	if err := c.fn(ctx); err != nil {
		return down(err)
	}
	return up()
}

// Optional marks a dependency whose outage degrades the service without making it unready.
func Optional(c Checker) Checker {
	return optionalChecker{c}
}

type optionalChecker struct {
	Checker
}

type CheckResult struct {
	Name     string `json:"name"`
	Status   Status `json:"status"`
	Message  string `json:"message,omitempty"`
	Optional bool   `json:"optional,omitempty"`
}

type ReadinessResponse struct {
	Status Status        `json:"status"`
	Checks []CheckResult `json:"checks,omitempty"`
}

type Registry struct {
	checkers []Checker
}

func NewRegistry(checkers ...Checker) *Registry {
	return &Registry{checkers: checkers}
}

// CheckAll runs every checker concurrently. The overall status is down if a required
// check is down and degraded if only optional ones are.
func (r *Registry) CheckAll(ctx context.Context) ReadinessResponse {
	if len(r.checkers) == 0 {
		return ReadinessResponse{Status: StatusUp}
	}

	results := make([]CheckResult, len(r.checkers))
	var wg sync.WaitGroup
	for i, c := range r.checkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := c.Check(ctx)
			_, optional := c.(optionalChecker)
			results[i] = CheckResult{Name: c.Name(), Status: res.Status, Message: res.Message, Optional: optional}
		}()
	}
	wg.Wait()

	overall := StatusUp
	for _, res := range results {
		if res.Status != StatusDown {
			continue
		}
		if !res.Optional {
			overall = StatusDown
			break
		}
		overall = StatusDegraded
	}
	return ReadinessResponse{Status: overall, Checks: results}
}
