package manifest

import (
	"context"
	"time"

	"github.com/cepress/cli/internal/output"
)

// Lookup fetches the latest version range of a package from a registry.
type Lookup interface {
	Latest(ctx context.Context, pkg string) (string, error)
}

// Resolver picks a version for each package: the registry's answer when the
// lookup succeeds, the fallback table otherwise.
type Resolver struct {
	lookup    Lookup
	fallbacks Fallbacks
	timeout   time.Duration
}

// NewResolver creates a resolver. A nil lookup resolves from fallbacks only.
// A positive timeout bounds each lookup.
func NewResolver(lookup Lookup, fallbacks Fallbacks, timeout time.Duration) *Resolver {
	if fallbacks == nil {
		fallbacks = DefaultFallbacks()
	}
	return &Resolver{
		lookup:    lookup,
		fallbacks: fallbacks,
		timeout:   timeout,
	}
}

// Resolve returns the version range for pkg. It never fails.
func (r *Resolver) Resolve(ctx context.Context, pkg string) string {
	if r.lookup == nil {
		return r.fallbacks.Version(pkg)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	v, err := r.lookup.Latest(ctx, pkg)
	if err != nil {
		fallback := r.fallbacks.Version(pkg)
		output.Warn("version lookup failed, using fallback", "package", pkg, "version", fallback, "error", err)
		return fallback
	}

	output.Debug("resolved package version", "package", pkg, "version", v)
	return v
}
