package cmdlog

import (
	"time"

	"twminer/internal/logger"
	"twminer/internal/metrics"
	"twminer/internal/xclient"
)

// Run executes one query flow, recording its duration and outcome in the
// metrics and the log.
func Run(log *logger.Logger, op string, f func() error) error {
	start := time.Now()
	err := f()
	metrics.ObserveQuery(op, start)
	if err != nil {
		kind := xclient.Kind(err)
		metrics.IncQueryError(op, kind)
		log.Error().Err(err).Str("op", op).Str("kind", kind).Dur("took", time.Since(start)).Msg(op + "_error")
		return err
	}
	log.Info().Str("op", op).Dur("took", time.Since(start)).Msg(op + "_ok")
	return nil
}
