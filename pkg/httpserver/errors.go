package httpserver

import "errors"

var (
	ErrStart          = errors.New("failed to start probe server")
	ErrShutdown       = errors.New("failed to shutdown probe server gracefully")
	ErrAlreadyRunning = errors.New("probe server is already running")
)
