// File: log.go
// Role: package logger and the advisory promotion warning.

package cable

import "log/slog"

// logger receives the promotion warning; defaults to slog's process-wide
// logger. Replace it with Configure(WithLogger(...)) in embedding
// applications and tests.
var logger = slog.Default()

// warnOnPromotion gates the advisory warning (never the promotion itself).
var warnOnPromotion = true

// warnPromotion emits the advisory diagnostic for a whole-graph promotion.
// It fires exactly when an operation returns a different object than the
// one passed in: a caller who discards the return value loses the change.
func warnPromotion(aggregate string, from, to any) {
	if !warnOnPromotion {
		return
	}
	logger.Warn("numeric kind promoted; use the returned aggregate, the original is unchanged",
		slog.String("aggregate", aggregate),
		slog.Any("from", from),
		slog.Any("to", to),
	)
}
