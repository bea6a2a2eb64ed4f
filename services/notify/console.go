// Package notifysvc provides Notifier implementations: a console writer, a
// recorder the web layer drains into the page, and a fan-out combinator.
package notifysvc

import (
	"fmt"
	"io"
	"os"

	"github.com/Khadar01822/pms-dashboard/core"
)

type consoleNotifier struct {
	out io.Writer
}

var _ core.Notifier = (*consoleNotifier)(nil)

func NewConsoleNotifier(out ...io.Writer) core.Notifier {
	w := io.Writer(os.Stdout)
	if len(out) > 0 {
		w = out[0]
	}
	return &consoleNotifier{out: w}
}

func (n consoleNotifier) notify(level core.NotificationLevel, msg string) {
	_, _ = fmt.Fprintf(n.out, "[%s] %s\n", level, msg)
}

func (n consoleNotifier) Success(msg string) { n.notify(core.LevelSuccess, msg) }
func (n consoleNotifier) Error(msg string)   { n.notify(core.LevelError, msg) }
func (n consoleNotifier) Info(msg string)    { n.notify(core.LevelInfo, msg) }
