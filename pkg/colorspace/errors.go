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

package colorspace

import (
	"github.com/pkg/errors"

	"github.com/pdfcpu/colorspace/pkg/log"
	"github.com/pdfcpu/colorspace/pkg/model"
)

// FormatError wraps a fatal, caller-surfaced condition: a missing
// whitepoint, an unresolvable color-space name, an unrecognized array
// mode, or an unrecognized Indexed lookup type.
type FormatError struct {
	msg string
}

func (e *FormatError) Error() string { return e.msg }

func formatErrorf(format string, args ...interface{}) error {
	return &FormatError{msg: errors.Errorf(format, args...).Error()}
}

// ErrMissingData re-exports model.ErrMissingData: the sentinel that
// must escape a cache probe unchanged rather than being wrapped or
// swallowed, matching the "propagate-through" error kind.
var ErrMissingData = model.ErrMissingData

// infof logs a recovered/defaulted condition (the "recovered
// invalid parameter" kind): invalid blackpoint, invalid gamma, invalid
// Lab range. The caller has already substituted the documented
// default; this is informational only.
func infof(format string, args ...interface{}) {
	log.Info.Printf(format, args...)
}

// warnf logs an advisory finding (the "advisory warning" kind):
// non-default CalGray blackpoint, Indexed decode-map mismatches,
// ICCBased N mismatch, malformed decode array length. Non-fatal; the
// caller proceeds with the documented fallback.
func warnf(format string, args ...interface{}) {
	log.Warn.Printf(format, args...)
}

// unreachablef reports a programmer error: calling the abstract base's
// conversion methods, or constructing it directly. This aborts the
// process, via the logger's Fatalf/Fatalln semantics; an unwired sink
// falls back to a panic rather than silently returning.
func unreachablef(format string, args ...interface{}) {
	log.Unreachable.Fatalf(format, args...)
}
