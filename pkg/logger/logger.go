package logger

import (
	"go.uber.org/zap"
)

// NOOPLogger discards everything. It is the default for servers constructed
// without an explicit logger, mainly in tests.
var NOOPLogger = zap.NewNop().Sugar()

// New builds a SugaredLogger for the given environment: human-readable
// development output locally, JSON in every other environment.
func New(appEnv string) (*zap.SugaredLogger, error) {
	var (
		l   *zap.Logger
		err error
	)

	if appEnv == "local" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	return l.Sugar(), nil
}
