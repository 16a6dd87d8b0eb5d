package signal

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"MerlinsForkAPI/internal/api/router"
	"MerlinsForkAPI/internal/app"
	"MerlinsForkAPI/internal/pkg/config"
	"MerlinsForkAPI/internal/pkg/logger"
)

var (
	cleanupMu    sync.Mutex
	cleanupFuncs []func()
)

// RegisterCleanupFunc registers fn to run once the server has stopped
func RegisterCleanupFunc(fn func()) {
	cleanupMu.Lock()
	defer cleanupMu.Unlock()
	cleanupFuncs = append(cleanupFuncs, fn)
}

// runCleanup runs registered functions in reverse registration order
func runCleanup() {
	cleanupMu.Lock()
	funcs := cleanupFuncs
	cleanupFuncs = nil
	cleanupMu.Unlock()

	for i := len(funcs) - 1; i >= 0; i-- {
		funcs[i]()
	}
}

// HandleSignals blocks until SIGINT or SIGTERM arrives or the server fails,
// then shuts everything down gracefully
func HandleSignals(application *app.Application, builder *router.Builder, serverErr <-chan error) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	return wait(sigChan, application, builder, serverErr)
}

func wait(sigChan <-chan os.Signal, application *app.Application, builder *router.Builder, serverErr <-chan error) error {
	var cause error

loop:
	for {
		select {
		case sig := <-sigChan:
			switch sig {
			case syscall.SIGINT, syscall.SIGTERM:
				logger.Info("Received termination signal, shutting down...",
					logger.String("signal", sig.String()))
				break loop
			case syscall.SIGHUP:
				// allow-lists are fixed for the life of the process
				logger.Warn("Received SIGHUP signal, restart the service to apply configuration changes")
			}
		case err := <-serverErr:
			if err != nil {
				logger.Error("HTTP server stopped unexpectedly", logger.Err(err))
				cause = fmt.Errorf("server error: %w", err)
			}
			break loop
		}
	}

	timeout := config.Seconds(application.GetConfig().Server.ShutdownTimeout)
	if err := builder.Shutdown(timeout); err != nil && cause == nil {
		cause = err
	}

	runCleanup()
	application.Shutdown()
	return cause
}
