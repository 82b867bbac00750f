// SPDX-License-Identifier: MIT
// Package: cablekit/cable
//
// options.go — functional options for the package-wide construction
// settings: the default operating temperature, the promotion warning and
// the diagnostic logger.
//
// Options are applied last-wins by Configure. Invalid option inputs panic
// immediately at the call site: a misconfigured process must not start.

package cable

import (
	"log/slog"
	"math"
)

// settings is the resolved construction configuration.
type settings struct {
	defaultTemperature float64
	warnOnPromotion    bool
	logger             *slog.Logger
}

// Option mutates the construction settings. Apply with Configure.
type Option func(*settings)

// WithDefaultTemperature sets the temperature filled in for entities built
// without an explicit one [°C]. Panics if t is not finite.
//
// Complexity: O(1) to record; Configure re-registers the built-ins.
func WithDefaultTemperature(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		panic("cable: WithDefaultTemperature requires a finite temperature")
	}
	return func(s *settings) { s.defaultTemperature = t }
}

// WithPromotionWarnings enables or disables the advisory promotion warning.
// Promotion semantics are unaffected either way.
func WithPromotionWarnings(enabled bool) Option {
	return func(s *settings) { s.warnOnPromotion = enabled }
}

// WithLogger routes construction diagnostics to l. Passing nil restores the
// process-wide slog default.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// Configure applies options to the package construction settings, last
// option wins. Changing the default temperature rebuilds the built-in trait
// registry so that subsequent constructions pick up the new default.
//
// Configure is not safe to call concurrently with constructions in flight;
// call it during process start-up.
func Configure(opts ...Option) {
	s := settings{
		defaultTemperature: currentDefaultTemperature,
		warnOnPromotion:    warnOnPromotion,
		logger:             logger,
	}
	for _, opt := range opts {
		opt(&s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}
	logger = s.logger
	warnOnPromotion = s.warnOnPromotion

	if s.defaultTemperature != currentDefaultTemperature {
		currentDefaultTemperature = s.defaultTemperature
		registry = newBuiltinRegistry(currentDefaultTemperature)
	}
}

// currentDefaultTemperature tracks the active default for Configure.
var currentDefaultTemperature = float64(DefaultTemperature)
