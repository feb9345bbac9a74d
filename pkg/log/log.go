/*
Copyright 2018 The pdfcpu Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package log provides the three logging sinks the color-space
// evaluator needs: Info for recovered/defaulted conditions, Warn for
// advisory findings, and Unreachable for invariant violations that
// abort the process.
package log

import (
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger defines an interface for logging messages.
type Logger interface {

	// Printf logs a formatted string.
	Printf(format string, args ...interface{})

	// Println logs a line.
	Println(args ...interface{})

	// Fatalf is equivalent to Printf() followed by a program abort.
	Fatalf(format string, args ...interface{})

	// Fatalln is equivalent to Println() followed by a program abort.
	Fatalln(args ...interface{})
}

type logger struct {
	log Logger
}

// The three sinks a color-space evaluation needs: Info for
// recovered/defaulted conditions, Warn for advisory
// findings that don't change behavior, and Unreachable for invariant
// violations that should never happen in a correct caller and abort
// the process rather than limp on with corrupt state.
var (
	Info        = &logger{}
	Warn        = &logger{}
	Unreachable = &logger{}
)

// SetInfoLogger sets the info logger.
func SetInfoLogger(log Logger) {
	Info.log = log
}

// SetWarnLogger sets the warn logger.
func SetWarnLogger(log Logger) {
	Warn.log = log
}

// SetUnreachableLogger sets the unreachable logger.
func SetUnreachableLogger(log Logger) {
	Unreachable.log = log
}

// SetDefaultInfoLogger sets the default info logger.
func SetDefaultInfoLogger() {
	SetInfoLogger(log.New(os.Stderr, "INFO: ", log.Ldate|log.Ltime))
}

// SetDefaultWarnLogger sets the default warn logger.
func SetDefaultWarnLogger() {
	SetWarnLogger(log.New(os.Stderr, "WARN: ", log.Ldate|log.Ltime))
}

// SetDefaultUnreachableLogger sets the default unreachable logger.
func SetDefaultUnreachableLogger() {
	SetUnreachableLogger(log.New(os.Stderr, "UNREACHABLE: ", log.Ldate|log.Ltime))
}

// SetDefaultLoggers sets all loggers to their default implementation,
// backed by a zap production logger. This lets the module be used
// standalone without forcing every embedding application to supply
// its own Logger.
func SetDefaultLoggers() {
	zl, err := zap.NewProduction()
	if err != nil {
		SetDefaultInfoLogger()
		SetDefaultWarnLogger()
		SetDefaultUnreachableLogger()
		return
	}
	s := zl.Sugar()
	SetInfoLogger(NewZapLogger(s, zapcore.InfoLevel))
	SetWarnLogger(NewZapLogger(s, zapcore.WarnLevel))
	SetUnreachableLogger(NewZapLogger(s, zapcore.ErrorLevel))
}

// DisableLoggers turns off all logging.
func DisableLoggers() {
	SetInfoLogger(nil)
	SetWarnLogger(nil)
	SetUnreachableLogger(nil)
}

// Printf writes a formatted message to the log.
func (l *logger) Printf(format string, args ...interface{}) {

	if l.log == nil {
		return
	}

	l.log.Printf(format, args...)
}

// Println writes a line to the log.
func (l *logger) Println(args ...interface{}) {

	if l.log == nil {
		return
	}

	l.log.Println(args...)
}

// Fatalf logs and aborts the process. Unlike Printf/Println, a nil
// sink does not make this a no-op: Fatalf documents an abort and
// falls back to panic so that an unwired Unreachable sink still
// aborts rather than silently returning.
func (l *logger) Fatalf(format string, args ...interface{}) {

	if l.log == nil {
		panic(fmt.Sprintf(format, args...))
	}

	l.log.Fatalf(format, args...)
}

// Fatalln logs and aborts the process; see Fatalf for the nil-sink
// fallback.
func (l *logger) Fatalln(args ...interface{}) {

	if l.log == nil {
		panic(fmt.Sprintln(args...))
	}

	l.log.Fatalln(args...)
}

// zapLogger adapts a *zap.SugaredLogger to Logger at a fixed level.
// Fatalf/Fatalln always abort the process regardless of level, since
// Logger.Fatal* documents process-abort semantics.
type zapLogger struct {
	s     *zap.SugaredLogger
	level zapcore.Level
}

// NewZapLogger adapts s to the Logger interface, logging at level.
func NewZapLogger(s *zap.SugaredLogger, level zapcore.Level) Logger {
	return &zapLogger{s: s, level: level}
}

func (z *zapLogger) Printf(format string, args ...interface{}) {
	z.s.Logf(z.level, format, args...)
}

func (z *zapLogger) Println(args ...interface{}) {
	switch z.level {
	case zapcore.WarnLevel:
		z.s.Warn(args...)
	case zapcore.ErrorLevel:
		z.s.Error(args...)
	default:
		z.s.Info(args...)
	}
}

func (z *zapLogger) Fatalf(format string, args ...interface{}) {
	z.s.Fatalf(format, args...)
}

func (z *zapLogger) Fatalln(args ...interface{}) {
	z.s.Fatal(args...)
}
