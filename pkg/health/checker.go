// Package health exposes liveness and readiness probes over the service's
// hard dependencies.
package health

import (
	"context"
	"time"
)

// DefaultTimeout bounds a single readiness pass.
const DefaultTimeout = 5 * time.Second

// Status is the reported state of a dependency.
type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// Checker probes one dependency the service cannot serve without. A nil
// error means the dependency answered.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}
