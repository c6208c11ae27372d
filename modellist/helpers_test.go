package modellist

import (
	"io"

	"github.com/ayn2op/vlist/internal/logger"
)

func newTestLogger(w io.Writer) logger.Logger {
	return logger.New(w, true)
}
