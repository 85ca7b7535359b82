// -----------------------------------------------------------------------
// Scheduler - cron runner for watch-mode refreshes
// -----------------------------------------------------------------------

package common

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"
)

// cronLogger adapts arbor to cron.Logger
type cronLogger struct {
	logger arbor.ILogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Str("detail", formatKeysAndValues(keysAndValues)).Msg("cron: " + msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error().Err(err).Str("detail", formatKeysAndValues(keysAndValues)).Msg("cron: " + msg)
}

// formatKeysAndValues renders alternating key/value pairs as "k=v k=v"
func formatKeysAndValues(keysAndValues []interface{}) string {
	parts := make([]string, 0, (len(keysAndValues)+1)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			parts = append(parts, fmt.Sprintf("%v=%v", keysAndValues[i], keysAndValues[i+1]))
		} else {
			parts = append(parts, fmt.Sprintf("%v", keysAndValues[i]))
		}
	}
	return strings.Join(parts, " ")
}

// jobWrappers recover panics and skip a run while the previous one is busy
func jobWrappers(l cron.Logger) []cron.JobWrapper {
	return []cron.JobWrapper{cron.Recover(l), cron.SkipIfStillRunning(l)}
}

// NewScheduler creates a cron runner that logs through arbor. Jobs added to it
// never crash the process and never overlap.
func NewScheduler(logger arbor.ILogger) *cron.Cron {
	l := cronLogger{logger: logger}
	return cron.New(
		cron.WithLogger(l),
		cron.WithChain(jobWrappers(l)...),
	)
}
