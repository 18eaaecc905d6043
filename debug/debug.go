package debug

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

// Debug modes gate the diagnostic output of the subsystems that report through
// a Recorder.
const (
	ModeSweep = iota
	ModeStepUp
	ModeJump
	ModeWorld
	ModeTick
)

const (
	// LoggingTypeLogger emits diagnostics through the recorder's logger.
	LoggingTypeLogger = iota
	// LoggingTypeStdout prints diagnostics directly to standard output.
	LoggingTypeStdout
)

// Recorder collects mode-gated diagnostics. Recorders are not safe for
// concurrent use; each simulation thread owns its own.
type Recorder struct {
	LoggingType int

	log   *slog.Logger
	modes map[int]bool
}

// NewRecorder returns a recorder emitting through the given logger with all
// modes disabled.
func NewRecorder(log *slog.Logger) *Recorder {
	return &Recorder{
		log:   log,
		modes: make(map[int]bool),
	}
}

// Toggle flips wether or not the given mode emits diagnostics.
func (r *Recorder) Toggle(mode int) {
	r.modes[mode] = !r.modes[mode]
}

// Enabled returns true if the given mode currently emits diagnostics.
func (r *Recorder) Enabled(mode int) bool {
	return r.modes[mode]
}

// Notify emits a formatted diagnostic line for the given mode if the mode is
// enabled and the condition holds.
func (r *Recorder) Notify(mode int, cond bool, format string, args ...interface{}) {
	if !cond || !r.modes[mode] {
		return
	}
	r.emit(fmt.Sprintf(format, args...))
}

// Record emits a structured diagnostic event for the given mode. The extra
// data is rendered in insertion order. Unlike Notify, Record bypasses the mode
// toggle: events reported through it indicate conditions worth surfacing even
// when tracing is off.
func (r *Recorder) Record(mode int, msg string, extra *orderedmap.OrderedMap[string, any]) {
	sb := strings.Builder{}
	sb.WriteString(msg)
	if extra != nil && extra.Len() > 0 {
		sb.WriteString(" [")
		first := true
		for el := extra.Front(); el != nil; el = el.Next() {
			if !first {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%s=%v", el.Key, el.Value))
			first = false
		}
		sb.WriteString("]")
	}

	switch r.LoggingType {
	case LoggingTypeStdout:
		fmt.Println(sb.String())
	default:
		r.log.Warn(sb.String(), "mode", ModeName(mode))
	}
}

func (r *Recorder) emit(msg string) {
	switch r.LoggingType {
	case LoggingTypeStdout:
		fmt.Println(msg)
	default:
		r.log.Debug(msg)
	}
}

// ModeName returns the name of a debug mode.
func ModeName(mode int) string {
	switch mode {
	case ModeSweep:
		return "sweep"
	case ModeStepUp:
		return "step_up"
	case ModeJump:
		return "jump"
	case ModeWorld:
		return "world"
	case ModeTick:
		return "tick"
	}
	return "unknown"
}

// ParseMode resolves a debug mode by name, used to apply mode lists from
// configuration.
func ParseMode(name string) (int, bool) {
	switch name {
	case "sweep":
		return ModeSweep, true
	case "step_up":
		return ModeStepUp, true
	case "jump":
		return ModeJump, true
	case "world":
		return ModeWorld, true
	case "tick":
		return ModeTick, true
	}
	return 0, false
}
