package cmd

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/klwxsrx/go-token-service/pkg/log"
)

// HandleAppPanic must be deferred directly. A panic with an error, such as a failed lazy.Loader.MustLoad
// of the properties or of the token settings, is logged with its error chain
func HandleAppPanic(ctx context.Context, logger log.Logger) (panicCaught bool) {
	msg := recover()
	if msg == nil {
		return false
	}

	err, _ := msg.(error)
	logger.WithError(err).WithField("panic", log.Fields{
		"message": fmt.Sprintf("%v", msg),
		"stack":   string(debug.Stack()),
	}).Error(ctx, "app failed with panic")
	return true
}
