package log

import (
	"github.com/sirupsen/logrus"
)

// Logger abstract interface for internal logging
type Logger interface {
	Error(msgs ...interface{})
	Warn(msgs ...interface{})
	Info(msgs ...interface{})
	Infof(s string, msgs ...interface{})
	Debug(msgs ...interface{})
	Trace(msgs ...interface{})
	Tracef(s string, msgs ...interface{})
	WithError(err error) Logger
	WithField(key string, value interface{}) Logger
}

type logger struct {
	entry *logrus.Entry
}

func (l *logger) Error(msgs ...interface{}) {
	l.entry.Error(msgs...)
}

func (l *logger) Warn(msgs ...interface{}) {
	l.entry.Warn(msgs...)
}

func (l *logger) Info(msgs ...interface{}) {
	l.entry.Info(msgs...)
}

func (l *logger) Infof(s string, msgs ...interface{}) {
	l.entry.Infof(s, msgs...)
}

func (l *logger) Debug(msgs ...interface{}) {
	l.entry.Debug(msgs...)
}

func (l *logger) Trace(msgs ...interface{}) {
	l.entry.Trace(msgs...)
}

func (l *logger) Tracef(s string, msgs ...interface{}) {
	l.entry.Tracef(s, msgs...)
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

func (l *logger) WithField(key string, value interface{}) Logger {
	return &logger{entry: l.entry.WithField(key, value)}
}

// NewLogger wraps a configured logrus.Logger
func NewLogger(log *logrus.Logger) Logger {
	return &logger{entry: logrus.NewEntry(log)}
}
