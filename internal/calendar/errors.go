package calendar

import "errors"

// ErrInvalidArgument reports bad input to a calculation: an occurrence
// index out of range, a year the engine does not support, or a month that
// cannot hold the requested occurrence. Surfaced to the caller, never
// retried.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrInternalConsistency reports a computed date that escaped its legal
// domain, such as the computus yielding a month other than March or April.
// It indicates a defect in the engine, not bad input, and aborts the query
// it occurred in.
var ErrInternalConsistency = errors.New("internal consistency error")
