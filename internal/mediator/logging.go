package mediator

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// LoggingBehavior logs the start and end of every request. Failures any of
// clientErrors accepts are caused by the request itself and logged at warn
// level; the rest at error level.
func LoggingBehavior(logger logrus.FieldLogger, clientErrors ...func(error) bool) Behavior {
	return func(ctx context.Context, request any, next Next) (any, error) {
		name := RequestName(request)
		log := logger.WithField("request", name)

		log.Infof("Handling request: %s", name)
		start := time.Now()

		out, err := next(ctx)

		log = log.WithField("duration", time.Since(start).String())
		if err != nil {
			if isClientError(err, clientErrors) {
				log.WithError(err).Warnf("Request rejected: %s", name)
			} else {
				log.WithError(err).Errorf("Request failed: %s", name)
			}
			return out, err
		}
		log.Infof("Handled request: %s", name)
		return out, nil
	}
}

func isClientError(err error, checks []func(error) bool) bool {
	for _, check := range checks {
		if check(err) {
			return true
		}
	}
	return false
}
