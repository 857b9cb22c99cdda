package health

import (
	"context"
	"sync"
)

// Registry fans a readiness pass out over the registered checkers.
type Registry struct {
	checkers []Checker
}

func NewRegistry(checkers ...Checker) *Registry {
	return &Registry{checkers: checkers}
}

// CheckResult is the outcome of probing one named dependency.
type CheckResult struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// ReadinessResponse aggregates one pass; Status is down if any check is.
type ReadinessResponse struct {
	Status Status        `json:"status"`
	Checks []CheckResult `json:"checks,omitempty"`
}

// CheckAll probes every dependency concurrently; the slowest checker bounds
// the pass, subject to ctx.
func (r *Registry) CheckAll(ctx context.Context) ReadinessResponse {
	if len(r.checkers) == 0 {
		return ReadinessResponse{Status: StatusUp}
	}

	results := make([]CheckResult, len(r.checkers))

	var wg sync.WaitGroup
	wg.Add(len(r.checkers))
	for i, checker := range r.checkers {
		go func(i int, c Checker) {
			defer wg.Done()

			res := CheckResult{Name: c.Name(), Status: StatusUp}
			if err := c.Check(ctx); err != nil {
				res.Status = StatusDown
				res.Message = err.Error()
			}
			results[i] = res
		}(i, checker)
	}
	wg.Wait()

	overall := StatusUp
	for _, res := range results {
		if res.Status == StatusDown {
			overall = StatusDown
			break
		}
	}

	return ReadinessResponse{Status: overall, Checks: results}
}
