/*
 * errors.go, part of devsnap.
 *
 * Copyright 2024 The devsnap Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package devsnap

import (
	"errors"
	"fmt"
	"strings"
)

//The two kinds of errors the package returns. Use errors.Is to check
//an error returned by ReadFile or Read against them.
var (
	ErrIO    = errors.New("I/O error")
	ErrParse = errors.New("parse error")
)

//Error is the error type returned by the snapshot readers. Besides wrapping the underlying
//error, it follows the goChem convention of allowing the callers to Decorate it with their
//names as the error travels up the stack.
type Error struct {
	kind     error
	message  string
	filename string //the snapshot file, or empty string if not known
	line     int    //1-based, 0 if the error is not tied to a line
	deco     []string
	err      error
}

func newIOError(filename string, err error, caller string) *Error {
	return &Error{kind: ErrIO, message: err.Error(), filename: filename, err: err, deco: []string{caller}}
}

func newParseError(filename string, line int, message string, err error) *Error {
	if err != nil {
		message = message + ": " + err.Error()
	}
	return &Error{kind: ErrParse, message: message, filename: filename, line: line, err: err}
}

func (err *Error) Error() string {
	var where string
	switch {
	case err.filename != "" && err.line > 0:
		where = fmt.Sprintf("%s:%d: ", err.filename, err.line)
	case err.filename != "":
		where = err.filename + ": "
	}
	msg := fmt.Sprintf("devsnap %s: %s%s", err.kind, where, err.message)
	if len(err.deco) > 0 {
		msg += " (" + strings.Join(err.deco, " <- ") + ")"
	}
	return msg
}

//Unwrap allows errors.Is to match both the kind of the error (ErrIO or ErrParse)
//and the underlying error, if any.
func (err *Error) Unwrap() []error {
	if err.err == nil {
		return []error{err.kind}
	}
	return []error{err.kind, err.err}
}

//Decorate adds the name of a caller, with any relevant information, to the error.
//It returns the current decoration. An empty string adds nothing.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the snapshot file associated with the error.
func (err *Error) FileName() string { return err.filename }

//Line returns the 1-based line of the snapshot file where the error was found, or 0.
func (err *Error) Line() int { return err.line }

//errDecorate decorates err with caller if it is an *Error, and returns it.
func errDecorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
