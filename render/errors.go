package render

import (
	"errors"
	"fmt"
)

var (
	ErrUnrecognizedExtension = errors.New("unrecognized shader extension")
	ErrSourceNotFound        = errors.New("shader source not found")
	ErrProgramAllocation     = errors.New("unable to create shader program")
	ErrCompileFailed         = errors.New("shader compilation failed")
	ErrNotCompiled           = errors.New("program has not been compiled")
	ErrLinkFailed            = errors.New("program link failed")
	ErrNotLinked             = errors.New("program is not linked")
	ErrValidateFailed        = errors.New("program failed to validate")
	ErrUseBeforeLink         = errors.New("shader has not been linked")
)

// ShaderError describes a failed program operation. Err is always one of the
// sentinel errors above; Log carries the driver's info log when there is one.
type ShaderError struct {
	Op    string
	File  string
	Log   string
	Err   error
	Cause error
}

func (e *ShaderError) Error() string {
	msg := e.Op + ": "
	if e.File != "" {
		msg += e.File + ": "
	}
	msg += e.Err.Error()
	if e.Cause != nil {
		msg += fmt.Sprintf(" (%v)", e.Cause)
	}
	if e.Log != "" {
		msg += "\n" + e.Log
	}
	return msg
}

func (e *ShaderError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}
