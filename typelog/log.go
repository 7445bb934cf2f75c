// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package typelog is the girepository module's own leveled logger: a
// minimal Logger interface any backend can satisfy, a level Filter that
// wraps one, and a Helper offering the Debugf/Infof/Warnf/Errorf
// convenience methods the rest of the module calls.
package typelog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level is a log severity, ordered so Filter can drop anything below its
// configured floor.
type Level int8

// Recognized severities, most to least verbose.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the minimal backend interface the rest of this module depends
// on. Log receives alternating key/value pairs after the level.
type Logger interface {
	Log(level Level, keyvals ...interface{}) error
}

// stdLogger writes to an io.Writer, one line per call.
type stdLogger struct {
	mu  sync.Mutex
	out io.Writer
}

// NewStdLogger returns a Logger that writes plain timestamped lines to w.
func NewStdLogger(w io.Writer) Logger {
	return &stdLogger{out: w}
}

func (l *stdLogger) Log(level Level, keyvals ...interface{}) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	ts := time.Now().Format(time.RFC3339)
	_, err := fmt.Fprintf(l.out, "%s level=%s %s\n", ts, level, formatKeyvals(keyvals))
	return err
}

func formatKeyvals(keyvals []interface{}) string {
	s := ""
	for i := 0; i+1 < len(keyvals); i += 2 {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%v=%v", keyvals[i], keyvals[i+1])
	}
	return s
}

// FilterOption configures a Filter.
type FilterOption func(*Filter)

// FilterLevel sets the minimum Level a Filter lets through.
func FilterLevel(level Level) FilterOption {
	return func(f *Filter) { f.level = level }
}

// Filter wraps a Logger and drops anything below a configured Level.
type Filter struct {
	logger Logger
	level  Level
}

// NewFilter wraps logger with a Filter configured by opts.
func NewFilter(logger Logger, opts ...FilterOption) Logger {
	f := &Filter{logger: logger, level: LevelInfo}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Filter) Log(level Level, keyvals ...interface{}) error {
	if level < f.level {
		return nil
	}
	return f.logger.Log(level, keyvals...)
}

// Helper is the ergonomic, printf-style façade the rest of the module
// calls over a Logger.
type Helper struct {
	logger Logger
}

// NewHelper wraps logger in a Helper.
func NewHelper(logger Logger) *Helper {
	return &Helper{logger: logger}
}

func (h *Helper) log(level Level, format string, args ...interface{}) {
	if h == nil || h.logger == nil {
		return
	}
	_ = h.logger.Log(level, "msg", fmt.Sprintf(format, args...))
}

// Debugf logs at LevelDebug.
func (h *Helper) Debugf(format string, args ...interface{}) { h.log(LevelDebug, format, args...) }

// Infof logs at LevelInfo.
func (h *Helper) Infof(format string, args ...interface{}) { h.log(LevelInfo, format, args...) }

// Warnf logs at LevelWarn.
func (h *Helper) Warnf(format string, args ...interface{}) { h.log(LevelWarn, format, args...) }

// Errorf logs at LevelError.
func (h *Helper) Errorf(format string, args ...interface{}) { h.log(LevelError, format, args...) }

// Default is a Helper writing errors-and-above to stderr, the zero-config
// fallback every loader in this module falls back to when the caller
// supplies no Logger.
func Default() *Helper {
	return NewHelper(NewFilter(NewStdLogger(os.Stderr), FilterLevel(LevelError)))
}
