// Package errors provides the structured error type shared by the
// breakpoint normalizer, the toolbar integration and the CLI.
package errors

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeInternal   ErrorType = "internal"
)

// TemplarError is a structured error type with context.
type TemplarError struct {
	Type        ErrorType
	Code        string
	Message     string
	Cause       error
	Context     map[string]interface{}
	Component   string
	FilePath    string
	Recoverable bool
}

// Error implements the error interface.
func (e *TemplarError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Component != "" {
		parts = append(parts, "component:"+e.Component)
	}

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *TemplarError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison.
func (e *TemplarError) Is(target error) bool {
	var t *TemplarError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *TemplarError) WithContext(key string, value interface{}) *TemplarError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithFile adds the file the error relates to.
func (e *TemplarError) WithFile(filePath string) *TemplarError {
	e.FilePath = filePath

	return e
}

// WithComponent adds component context.
func (e *TemplarError) WithComponent(component string) *TemplarError {
	e.Component = component

	return e
}

// Fields flattens the error into key/value pairs for the structured logger.
func (e *TemplarError) Fields() []interface{} {
	fields := []interface{}{"type", string(e.Type), "code", e.Code}
	if e.Component != "" {
		fields = append(fields, "component", e.Component)
	}
	if e.FilePath != "" {
		fields = append(fields, "file", e.FilePath)
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fields = append(fields, k, e.Context[k])
	}

	return fields
}

// Error creation functions

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *TemplarError {
	return &TemplarError{
		Type:        ErrorTypeValidation,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *TemplarError {
	return &TemplarError{
		Type:        ErrorTypeConfig,
		Code:        code,
		Message:     message,
		Recoverable: false,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *TemplarError {
	return &TemplarError{
		Type:        ErrorTypeInternal,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// IsValidationError checks if an error came out of breakpoint or
// descriptor validation.
func IsValidationError(err error) bool {
	var te *TemplarError
	if errors.As(err, &te) {
		return te.Type == ErrorTypeValidation
	}

	return false
}

// ErrorHandler provides centralized error handling.
type ErrorHandler struct {
	logger Logger
}

// Logger interface for error logging.
type Logger interface {
	Error(ctx context.Context, err error, msg string, fields ...interface{})
	Warn(ctx context.Context, err error, msg string, fields ...interface{})
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle logs an error with a level and message picked from its type.
func (h *ErrorHandler) Handle(ctx context.Context, err error) {
	if err == nil || h.logger == nil {
		return
	}

	var te *TemplarError
	if !errors.As(err, &te) {
		h.logger.Error(ctx, err, "Unhandled error occurred")

		return
	}

	switch te.Type {
	case ErrorTypeValidation:
		h.logger.Warn(ctx, err, "Validation error occurred", te.Fields()...)
	case ErrorTypeConfig:
		h.logger.Error(ctx, err, "Configuration error occurred", te.Fields()...)
	default:
		h.logger.Error(ctx, err, "Error occurred", te.Fields()...)
	}
}

// Common error codes.
const (
	ErrCodeInvalidPath         = "ERR_INVALID_PATH"
	ErrCodeConfigInvalid       = "ERR_CONFIG_INVALID"
	ErrCodeFileNotFound        = "ERR_FILE_NOT_FOUND"
	ErrCodeInternalError       = "ERR_INTERNAL"
	ErrCodeValidationFailed    = "ERR_VALIDATION_FAILED"
	ErrCodeBreakpointsEmpty    = "ERR_BREAKPOINTS_EMPTY"
	ErrCodeBreakpointInvalid   = "ERR_BREAKPOINT_INVALID"
	ErrCodeBreakpointDuplicate = "ERR_BREAKPOINT_DUPLICATE"
	ErrCodeAppInvalid          = "ERR_TOOLBAR_APP_INVALID"
	ErrCodeAppExists           = "ERR_TOOLBAR_APP_EXISTS"
	ErrCodeMarkupInvalid       = "ERR_MARKUP_INVALID"
)

// ValidationError interface for field-specific validation errors.
type ValidationError interface {
	error
	Field() string
	Value() interface{}
	Suggestions() []string
}

// FieldValidationError implements ValidationError for specific field errors.
type FieldValidationError struct {
	FieldName    string
	FieldValue   interface{}
	ErrorMessage string
	HelpText     []string
}

// Error implements the error interface.
func (fve *FieldValidationError) Error() string {
	return fmt.Sprintf("validation error in field '%s': %s", fve.FieldName, fve.ErrorMessage)
}

// Field returns the field name that failed validation.
func (fve *FieldValidationError) Field() string {
	return fve.FieldName
}

// Value returns the invalid value.
func (fve *FieldValidationError) Value() interface{} {
	return fve.FieldValue
}

// Suggestions returns helpful suggestions for fixing the error.
func (fve *FieldValidationError) Suggestions() []string {
	return fve.HelpText
}

// NewFieldValidationError creates a new field validation error.
func NewFieldValidationError(
	field string,
	value interface{},
	message string,
	suggestions ...string,
) *FieldValidationError {
	return &FieldValidationError{
		FieldName:    field,
		FieldValue:   value,
		ErrorMessage: message,
		HelpText:     suggestions,
	}
}

// ValidationErrorCollection represents a collection of validation errors.
type ValidationErrorCollection struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (vec *ValidationErrorCollection) Error() string {
	if len(vec.Errors) == 0 {
		return "no validation errors"
	}
	if len(vec.Errors) == 1 {
		return vec.Errors[0].Error()
	}

	return fmt.Sprintf("validation failed with %d errors", len(vec.Errors))
}

// Add adds a validation error to the collection.
func (vec *ValidationErrorCollection) Add(err ValidationError) {
	vec.Errors = append(vec.Errors, err)
}

// AddField adds a field validation error to the collection.
func (vec *ValidationErrorCollection) AddField(
	field string,
	value interface{},
	message string,
	suggestions ...string,
) {
	vec.Add(NewFieldValidationError(field, value, message, suggestions...))
}

// HasErrors returns true if there are any validation errors.
func (vec *ValidationErrorCollection) HasErrors() bool {
	return len(vec.Errors) > 0
}

// ToTemplarError converts the validation collection to a TemplarError.
func (vec *ValidationErrorCollection) ToTemplarError(code string) *TemplarError {
	if !vec.HasErrors() {
		return nil
	}

	var messages []string
	context := make(map[string]interface{})

	for _, err := range vec.Errors {
		messages = append(messages, err.Error())
		context[err.Field()] = map[string]interface{}{
			"value":       err.Value(),
			"suggestions": err.Suggestions(),
		}
	}

	return &TemplarError{
		Type:        ErrorTypeValidation,
		Code:        code,
		Message:     strings.Join(messages, "; "),
		Context:     context,
		Recoverable: true,
	}
}
