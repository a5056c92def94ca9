package handlers

import (
	"context"

	"github.com/rogerio-castellano/product-catalog/internal/auth"
	"github.com/rogerio-castellano/product-catalog/internal/mediator"
	"github.com/sirupsen/logrus"
)

var (
	bus         *mediator.Mediator
	tokens      *auth.Tokens
	admin       auth.Admin
	logger      logrus.FieldLogger = logrus.StandardLogger()
	healthChecks []func(ctx context.Context) error
)

func SetMediator(m *mediator.Mediator) {
	bus = m
}

func SetAuth(t *auth.Tokens, a auth.Admin) {
	tokens = t
	admin = a
}

func SetLogger(l logrus.FieldLogger) {
	logger = l
}

// SetHealthCheck installs the dependency checks run by HealthHandler, in
// order. Calling it with no checks removes them.
func SetHealthCheck(checks ...func(ctx context.Context) error) {
	healthChecks = checks
}
