package service

import (
	"errors"
	"fmt"
	"strings"
)

// InvalidInputError rejects caller data before any remote call is made.
type InvalidInputError struct {
	Detail string
}

func (e *InvalidInputError) Error() string {
	return e.Detail
}

type UnsupportedTypeError struct {
	Filename string
}

func (e *UnsupportedTypeError) Error() string {
	return "Nur CSV-Dateien sind erlaubt."
}

type EmptyFileError struct {
	Filename string
}

func (e *EmptyFileError) Error() string {
	return "Datei ist leer."
}

// QueryExecutionError means the warehouse call failed or reported a
// non-successful statement state.
type QueryExecutionError struct {
	Detail string
	Err    error
}

func (e *QueryExecutionError) Error() string {
	return e.Detail
}

func (e *QueryExecutionError) Unwrap() error {
	return e.Err
}

// SchemaMismatchError means the result lacks a column the caller needs.
type SchemaMismatchError struct {
	Expected []string
	Columns  []string
}

func (e *SchemaMismatchError) Error() string {
	quoted := make([]string, len(e.Expected))
	for i, c := range e.Expected {
		quoted[i] = "'" + c + "'"
	}
	return fmt.Sprintf("Erwartete Spalten %s nicht im Ergebnis gefunden.", strings.Join(quoted, " und "))
}

type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("Upload fehlgeschlagen: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// AgentInvocationError is never returned to HTTP callers; AgentService folds
// it into the reply text.
type AgentInvocationError struct {
	Endpoint string
	Err      error
}

func (e *AgentInvocationError) Error() string {
	return fmt.Sprintf("Fehler beim Aufruf des Agents '%s': %v", e.Endpoint, e.Err)
}

func (e *AgentInvocationError) Unwrap() error {
	return e.Err
}

// IsInvalidInput reports whether err rejects caller-supplied data.
func IsInvalidInput(err error) bool {
	var invalid *InvalidInputError
	var unsupported *UnsupportedTypeError
	var empty *EmptyFileError
	return errors.As(err, &invalid) || errors.As(err, &unsupported) || errors.As(err, &empty)
}
