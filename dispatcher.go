package xconsole

import (
	"fmt"
	"sync/atomic"
)

// Dispatcher routes records to a single installed Sink. The sink slot is
// one-shot: once set it cannot be replaced. The max level starts at LevelOff,
// so nothing is emitted until a sink is installed and SetMaxLevel is called.
//
// All methods are safe for concurrent use.
type Dispatcher struct {
	slot atomic.Pointer[sinkSlot]
	max  atomic.Uint32
}

type sinkSlot struct {
	sink Sink
}

// NewDispatcher returns a Dispatcher with no sink and max level LevelOff.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// SetSink installs s as the active sink. It returns ErrAlreadyInitialized if a
// sink is already installed; the existing sink is kept.
func (d *Dispatcher) SetSink(s Sink) error {
	if s == nil {
		return ErrNilSink
	}
	if !d.slot.CompareAndSwap(nil, &sinkSlot{sink: s}) {
		return ErrAlreadyInitialized
	}
	return nil
}

// Sink returns the installed sink or nil.
func (d *Dispatcher) Sink() Sink {
	if p := d.slot.Load(); p != nil {
		return p.sink
	}
	return nil
}

// SetMaxLevel sets the most verbose level that is passed to the sink.
func (d *Dispatcher) SetMaxLevel(l Level) { d.max.Store(uint32(l)) }

// MaxLevel reports the level set by SetMaxLevel.
func (d *Dispatcher) MaxLevel() Level { return Level(d.max.Load()) }

// Enabled reports whether a record for target at level would reach the sink.
// Use to avoid building expensive arguments in hot paths.
func (d *Dispatcher) Enabled(target string, level Level) bool {
	return d.enabledSink(target, level) != nil
}

// Log formats args with fmt.Sprint and emits them. Nothing is formatted when
// the record is filtered out.
func (d *Dispatcher) Log(level Level, target string, args ...any) {
	s := d.enabledSink(target, level)
	if s == nil {
		return
	}
	s.Log(Record{Level: level, Target: target, Args: fmt.Sprint(args...)})
}

// Logf is like Log but formats with fmt.Sprintf.
func (d *Dispatcher) Logf(level Level, target, format string, args ...any) {
	s := d.enabledSink(target, level)
	if s == nil {
		return
	}
	s.Log(Record{Level: level, Target: target, Args: fmt.Sprintf(format, args...)})
}

func (d *Dispatcher) Flush() {
	if s := d.Sink(); s != nil {
		s.Flush()
	}
}

// For returns a Logger bound to target.
func (d *Dispatcher) For(target string) Logger {
	return Logger{d: d, target: target}
}

// passes is the cheap global gate, checked before the sink is consulted.
func (d *Dispatcher) passes(level Level) bool {
	return level.Valid() && level <= d.MaxLevel()
}

func (d *Dispatcher) enabledSink(target string, level Level) Sink {
	if !d.passes(level) {
		return nil
	}
	s := d.Sink()
	if s == nil || !s.Enabled(target, level) {
		return nil
	}
	return s
}
