// Package errors provides the error taxonomy for dirtree.
// Root resolution failures are typed so the entry point can report them
// and pick an exit status without the core packages touching the process.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Root resolution kinds
	CwdUnavailable
	PathResolutionError
	MetadataError
	NotADirectory
	// Config error kinds
	InvalidConfig
	ConfigNotFound
)

// String returns a short name for the kind, used as a log field.
func (k ErrorKind) String() string {
	switch k {
	case CwdUnavailable:
		return "CwdUnavailable"
	case PathResolutionError:
		return "PathResolutionError"
	case MetadataError:
		return "MetadataError"
	case NotADirectory:
		return "NotADirectory"
	case InvalidConfig:
		return "InvalidConfig"
	case ConfigNotFound:
		return "ConfigNotFound"
	default:
		return "Unknown"
	}
}

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s (%v)", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// PathError is a root resolution failure tied to a filesystem path.
type PathError struct {
	ApplicationError
	path string
}

// NewPathError creates a new path error
func NewPathError(msg string, path string, kind ErrorKind, err error) *PathError {
	return &PathError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the path error message
func (e *PathError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s (%v)", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the path associated with the error
func (e *PathError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// KindOf returns the kind of the first kinded error in err's chain.
func KindOf(err error) ErrorKind {
	var pathErr *PathError
	if errors.As(err, &pathErr) {
		return pathErr.Kind()
	}
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind()
	}
	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}
	return Unknown
}

func isPathKind(err error, kind ErrorKind) bool {
	var pathErr *PathError
	if errors.As(err, &pathErr) {
		return pathErr.Kind() == kind
	}
	return false
}

// IsCwdUnavailable checks if the working directory could not be determined
func IsCwdUnavailable(err error) bool {
	return isPathKind(err, CwdUnavailable)
}

// IsPathResolution checks if the path could not be canonicalized
func IsPathResolution(err error) bool {
	return isPathKind(err, PathResolutionError)
}

// IsMetadata checks if the canonical path's metadata could not be read
func IsMetadata(err error) bool {
	return isPathKind(err, MetadataError)
}

// IsNotADirectory checks if the target exists but is not a directory
func IsNotADirectory(err error) bool {
	return isPathKind(err, NotADirectory)
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}
