package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Typed errors below wrap one of these so callers can use
// errors.Is without depending on the concrete type.
var (
	// ErrInvalidRequest indicates the search query failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrParse indicates a mandatory sub-structure of a flight row is missing.
	ErrParse = errors.New("parse error")

	// ErrPageStructure indicates the results container is absent from the page.
	ErrPageStructure = errors.New("page structure error")

	// ErrEmptyResult indicates there is no priced flight to aggregate over.
	ErrEmptyResult = errors.New("empty result")

	// ErrAcquisition indicates the results page could not be obtained.
	ErrAcquisition = errors.New("acquisition failed")

	// ErrAcquisitionTimeout indicates page acquisition ran out of time.
	ErrAcquisitionTimeout = errors.New("acquisition timed out")

	// ErrAlreadyPopulated is returned when a collection is populated twice.
	ErrAlreadyPopulated = errors.New("flight collection already populated")
)

// ValidationError describes a single invalid query field.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap allows errors.Is(err, ErrInvalidRequest).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// ParseError reports a flight row whose mandatory markup is missing or
// unrecognised. Row is the zero-based index of the row in the results list,
// or -1 when the row position is unknown.
type ParseError struct {
	Row          int
	FlightNumber string
	Field        string
	Selector     string
	Reason       string
}

// NewParseError creates a ParseError for a field whose selector matched nothing.
func NewParseError(field, selector string) *ParseError {
	return &ParseError{Row: -1, Field: field, Selector: selector, Reason: "missing sub-structure"}
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("parse error")
	if e.Row >= 0 {
		fmt.Fprintf(&b, " at row %d", e.Row)
	}
	if e.FlightNumber != "" {
		fmt.Fprintf(&b, " (flight %s)", e.FlightNumber)
	}
	fmt.Fprintf(&b, ": field %s: %s", e.Field, e.Reason)
	if e.Selector != "" {
		fmt.Fprintf(&b, " %q", e.Selector)
	}
	return b.String()
}

// Unwrap allows errors.Is(err, ErrParse).
func (e *ParseError) Unwrap() error {
	return ErrParse
}

// PageStructureError reports that the results container was not found,
// usually because the acquisition layer returned the wrong page.
type PageStructureError struct {
	Selector  string
	PageTitle string
}

// NewPageStructureError creates a PageStructureError.
func NewPageStructureError(selector, pageTitle string) *PageStructureError {
	return &PageStructureError{Selector: selector, PageTitle: pageTitle}
}

func (e *PageStructureError) Error() string {
	msg := fmt.Sprintf("page structure error: results container %q not found", e.Selector)
	if e.PageTitle != "" {
		msg += fmt.Sprintf(" (page title %q)", e.PageTitle)
	}
	return msg
}

// Unwrap allows errors.Is(err, ErrPageStructure).
func (e *PageStructureError) Unwrap() error {
	return ErrPageStructure
}

// AcquisitionError wraps a failure of the page acquisition collaborator.
type AcquisitionError struct {
	URL     string
	Timeout bool
	Err     error
}

// NewAcquisitionError creates a non-timeout AcquisitionError.
func NewAcquisitionError(url string, err error) *AcquisitionError {
	return &AcquisitionError{URL: url, Err: err}
}

// NewAcquisitionTimeoutError creates an AcquisitionError flagged as a timeout.
func NewAcquisitionTimeoutError(url string, err error) *AcquisitionError {
	return &AcquisitionError{URL: url, Timeout: true, Err: err}
}

func (e *AcquisitionError) Error() string {
	kind := "acquisition failed"
	if e.Timeout {
		kind = "acquisition timed out"
	}
	if e.Err == nil {
		return fmt.Sprintf("%s for %s", kind, e.URL)
	}
	return fmt.Sprintf("%s for %s: %v", kind, e.URL, e.Err)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}

// Is matches ErrAcquisition for every acquisition failure and
// ErrAcquisitionTimeout for timeouts only.
func (e *AcquisitionError) Is(target error) bool {
	if target == ErrAcquisition {
		return true
	}
	return e.Timeout && target == ErrAcquisitionTimeout
}

// IsInvalidRequest reports whether err is a query validation failure.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsParse reports whether err is a row-level parse failure.
func IsParse(err error) bool {
	return errors.Is(err, ErrParse)
}

// IsPageStructure reports whether err means the wrong page was rendered.
func IsPageStructure(err error) bool {
	return errors.Is(err, ErrPageStructure)
}

// IsEmptyResult reports whether err means no priced flight exists.
func IsEmptyResult(err error) bool {
	return errors.Is(err, ErrEmptyResult)
}

// IsAcquisitionTimeout reports whether err is an acquisition timeout.
func IsAcquisitionTimeout(err error) bool {
	return errors.Is(err, ErrAcquisitionTimeout)
}
