package errors

import (
	"errors"
)

// Wrap wraps an error with additional context, creating a TemplarError if the input is not already one
func Wrap(err error, errType ErrorType, code, message string) *TemplarError {
	if err == nil {
		return nil
	}

	// If it's already a TemplarError, preserve its properties but update the message
	var te *TemplarError
	if errors.As(err, &te) {
		return &TemplarError{
			Type:        errType,
			Code:        code,
			Message:     message,
			Cause:       te,
			Context:     te.Context,
			Component:   te.Component,
			FilePath:    te.FilePath,
			Recoverable: te.Recoverable,
		}
	}

	return &TemplarError{
		Type:        errType,
		Code:        code,
		Message:     message,
		Cause:       err,
		Recoverable: errType == ErrorTypeValidation,
	}
}

// WrapValidation wraps an error as a validation error
func WrapValidation(err error, code, message string) *TemplarError {
	return Wrap(err, ErrorTypeValidation, code, message)
}

// WrapConfig wraps an error as a configuration error (non-recoverable)
func WrapConfig(err error, code, message string) *TemplarError {
	templErr := Wrap(err, ErrorTypeConfig, code, message)
	if templErr != nil {
		templErr.Recoverable = false
	}
	return templErr
}

// WrapIO wraps an error as an I/O error
func WrapIO(err error, code, message string) *TemplarError {
	templErr := Wrap(err, ErrorTypeIO, code, message)
	if templErr != nil {
		templErr.Recoverable = false
	}
	return templErr
}

// GetCode returns the code of the outermost TemplarError in the chain, or ""
func GetCode(err error) string {
	var te *TemplarError
	if errors.As(err, &te) {
		return te.Code
	}
	return ""
}

// HasCode reports whether any TemplarError in the chain carries code
func HasCode(err error, code string) bool {
	for err != nil {
		var te *TemplarError
		if !errors.As(err, &te) {
			return false
		}
		if te.Code == code {
			return true
		}
		err = te.Cause
	}
	return false
}
