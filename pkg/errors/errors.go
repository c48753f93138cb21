// Package errors provides custom error types for the paneldump system.
// These errors enable programmatic error checking and keep the
// fatal/non-fatal distinction of the dedupe pipeline explicit.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the paneldump system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingIdentity indicates an entry lacks its identity-key field
	ErrMissingIdentity = errors.New("missing identity key")

	// ErrPanelCountMismatch indicates the assembled panel count differs
	// from the input panel count
	ErrPanelCountMismatch = errors.New("panel count mismatch")

	// ErrTimeout indicates that an operation timed out
	ErrTimeout = errors.New("operation timed out")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// MissingIdentityError reports an entry that cannot take part in
// duplicate detection because its identity-key field is unset.
// It is advisory: the entry stays in the panel untouched.
type MissingIdentityError struct {
	Panel  string
	Entity string // "genes" or "regions"
	Index  int    // position of the entry in the panel list
}

// Error implements the error interface
func (e *MissingIdentityError) Error() string {
	return fmt.Sprintf("%s entry %d in panel %q has no identity key", e.Entity, e.Index, e.Panel)
}

// Is implements errors.Is support
func (e *MissingIdentityError) Is(target error) bool {
	return target == ErrMissingIdentity
}

// NewMissingIdentityError creates a new MissingIdentityError
func NewMissingIdentityError(panel, entity string, index int) *MissingIdentityError {
	return &MissingIdentityError{Panel: panel, Entity: entity, Index: index}
}

// PanelCountError reports a post-assembly panel count that differs from
// the input count. This is fatal: it signals an assembly logic defect
// and the run must abort before emitting anything.
type PanelCountError struct {
	Want int
	Got  int
}

// Error implements the error interface
func (e *PanelCountError) Error() string {
	return fmt.Sprintf("panel count changed during assembly: %d in, %d out", e.Want, e.Got)
}

// Is implements errors.Is support
func (e *PanelCountError) Is(target error) bool {
	return target == ErrPanelCountMismatch
}

// NewPanelCountError creates a new PanelCountError
func NewPanelCountError(want, got int) *PanelCountError {
	return &PanelCountError{Want: want, Got: got}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// APIError represents an error from the PanelApp API
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("PanelApp API error (status %d) for %s: %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("PanelApp API error for %s: %s", e.Endpoint, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates a new APIError
func NewAPIError(endpoint string, statusCode int, message string) *APIError {
	return &APIError{Endpoint: endpoint, StatusCode: statusCode, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml", "tsv", etc.
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{Operation: operation, Path: path, Message: message, Err: err}
}

// ResourceError represents an error during resource operations
type ResourceError struct {
	Operation string // "fetch", "load", "save"
	Resource  string // "panel", "dump", "genepanels", "config"
	ID        string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ResourceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, e.Message)
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a new ResourceError
func NewResourceError(operation, resource, id string, err error) *ResourceError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ResourceError{Operation: operation, Resource: resource, ID: id, Message: message, Err: err}
}

// UnreconciledConflictError describes a duplicate group whose entries
// differ in more than mode of inheritance. It is never returned up the
// pipeline; the check command uses it to render conflicts for review.
type UnreconciledConflictError struct {
	Panel          string
	Entity         string
	Key            string
	Count          int
	DifferingNames []string
}

// Error implements the error interface
func (e *UnreconciledConflictError) Error() string {
	return fmt.Sprintf(
		"unreconciled duplicates for %s %q in panel %q: %d entries differ in %s",
		strings.TrimSuffix(e.Entity, "s"), e.Key, e.Panel, e.Count,
		strings.Join(e.DifferingNames, ", "),
	)
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsMissingIdentity checks if an error is a missing identity key error
func IsMissingIdentity(err error) bool {
	return errors.Is(err, ErrMissingIdentity)
}

// IsPanelCountMismatch checks if an error is a panel count mismatch
func IsPanelCountMismatch(err error) bool {
	return errors.Is(err, ErrPanelCountMismatch)
}

// IsTimeout checks if an error is a timeout error
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsCanceled checks if an error is a cancellation error
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapResource wraps an error as a ResourceError
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return NewResourceError(operation, resource, id, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapAPI wraps an error as an APIError
func WrapAPI(endpoint string, statusCode int, err error) error {
	if err == nil {
		return nil
	}
	return &APIError{Endpoint: endpoint, StatusCode: statusCode, Message: err.Error(), Err: err}
}
