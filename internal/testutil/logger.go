package testutil

import (
	"io"

	"github.com/aldonunez05/sb-hacks/internal/logger"
)

func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, 0, "text")
}
