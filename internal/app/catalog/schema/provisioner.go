// Package schema creates the catalog relations when they are missing.
package schema

import (
	"context"
	"errors"
	"fmt"
)

// ErrSchemaProvisioning wraps every provisioning failure.
var ErrSchemaProvisioning = errors.New("schema provisioning failed")

// Provisioner brings the store's schema up to date. Implementations are idempotent:
// running EnsureSchema N times has the same effect as running it once, and concurrent
// runs from several processes are safe.
type Provisioner interface {
	EnsureSchema(ctx context.Context) error
}

// NopProvisioner is used for stores without a schema (memory, unconfigured).
type NopProvisioner struct{}

// EnsureSchema does nothing.
func (NopProvisioner) EnsureSchema(context.Context) error {
	return nil
}

func provisioningError(err error) error {
	return fmt.Errorf("%w: %w", ErrSchemaProvisioning, err)
}
