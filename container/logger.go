// SPDX-License-Identifier: MIT

package container

import (
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	logger    atomic.Pointer[zap.Logger]
	nopLogger = zap.NewNop()
)

// Logger returns the package logger. It is a no-op logger until SetLogger
// is called.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nopLogger
}

// SetLogger installs l as the package logger; nil restores the no-op
// logger. It is safe to call while containers are in use.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}

// rejection is an error that has already been reported on the logger.
type rejection struct {
	msg string
	err error
}

func (r *rejection) Error() string { return r.msg }
func (r *rejection) Unwrap() error { return r.err }

// Reject wraps err with the operation tag. The first layer to reject an
// operation logs it at debug level with op and error fields; outer layers
// wrapping an already reported error only add their tag.
func Reject(tag string, err error) error {
	var r *rejection
	if errors.As(err, &r) {
		return fmt.Errorf("%s: %w", tag, err)
	}
	Logger().Debug("operation rejected", zap.String("op", tag), zap.Error(err))
	return &rejection{msg: tag + ": " + err.Error(), err: err}
}

// containerErrorf is Reject for the container's own operations.
func containerErrorf(tag string, err error) error {
	return Reject(tag, err)
}
