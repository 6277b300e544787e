package stderr

import (
	"bufio"
	"io"
	"strings"

	"go.uber.org/zap"
)

// forward logs every non-blank line of r until EOF.
func forward(r io.Reader, log *zap.Logger) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			log.Warn("captured", zap.String("line", line))
		}
	}
}
