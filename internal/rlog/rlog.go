// Package rlog provides the process-wide structured logger.
package rlog

import "go.uber.org/zap"

var Log *zap.Logger

func init() {
	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}
	Log = logger
}
