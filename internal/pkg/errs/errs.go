package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification via errors.Is. Every concrete error type in
// this package unwraps to exactly one of these.
var (
	ErrValueIsRequired    = errors.New("value is required")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrObjectNotFound     = errors.New("object not found")
	ErrVersionIsInvalid   = errors.New("version is invalid")
	ErrInvalidTransition  = errors.New("invalid state transition")
	ErrCapacityExceeded   = errors.New("capacity exceeded")
	ErrVehicleUnavailable = errors.New("vehicle unavailable")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// sanitize flattens values destined for error messages into a single line
// so log injection through user-supplied input is not possible.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a supplied value is malformed or violates
// a domain rule. Requests failing with this error must be corrected by the caller.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value falls outside its
// permitted bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError with the offending value and bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates that an aggregate or entity could not be located.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named lookup parameter.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)", ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// VersionIsInvalidError indicates an optimistic-concurrency conflict: the
// aggregate was modified by another transaction between read and write.
// Operations failing with this error are safe to retry.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError for the named aggregate.
func NewVersionIsInvalidError(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError wrapping an underlying cause.
func NewVersionIsInvalidErrorWithCause(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// InvalidTransitionError indicates an illegal state-machine edge: the requested
// status is not reachable from the entity's current status.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

// NewInvalidTransitionError creates an InvalidTransitionError describing the rejected edge.
func NewInvalidTransitionError(entity, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s cannot move from %s to %s", ErrInvalidTransition, e.Entity, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// CapacityExceededError indicates that a cargo requirement exceeds a vehicle's capacity.
type CapacityExceededError struct {
	ParamName string
	Required  float64
	Limit     float64
}

// NewCapacityExceededError creates a CapacityExceededError for the named capacity dimension.
func NewCapacityExceededError(paramName string, required, limit float64) *CapacityExceededError {
	return &CapacityExceededError{ParamName: paramName, Required: required, Limit: limit}
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: %s requires %v, limit is %v", ErrCapacityExceeded, e.ParamName, e.Required, e.Limit)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// VehicleUnavailableError indicates that a vehicle is not in a status that
// permits the requested operation, typically because a concurrent assignment won.
type VehicleUnavailableError struct {
	ID     string
	Status string
}

// NewVehicleUnavailableError creates a VehicleUnavailableError for the vehicle and its observed status.
func NewVehicleUnavailableError(id, status string) *VehicleUnavailableError {
	return &VehicleUnavailableError{ID: id, Status: status}
}

func (e *VehicleUnavailableError) Error() string {
	return fmt.Sprintf("%s: vehicle %s is %s", ErrVehicleUnavailable, e.ID, e.Status)
}

func (e *VehicleUnavailableError) Unwrap() error {
	return ErrVehicleUnavailable
}

// InsufficientStockError indicates that a stock mutation would drive current or
// available stock below zero.
type InsufficientStockError struct {
	SKU       string
	Requested int
	Available int
}

// NewInsufficientStockError creates an InsufficientStockError for the SKU with the rejected quantity.
func NewInsufficientStockError(sku string, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{SKU: sku, Requested: requested, Available: available}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: %s has %d available, %d requested", ErrInsufficientStock, e.SKU, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// StorageUnavailableError indicates an underlying storage or transport failure.
// Operations failing with this error are safe to retry.
type StorageUnavailableError struct {
	Op    string
	Cause error
}

// NewStorageUnavailableError creates a StorageUnavailableError wrapping the infrastructure failure.
func NewStorageUnavailableError(op string, cause error) *StorageUnavailableError {
	return &StorageUnavailableError{Op: op, Cause: cause}
}

func (e *StorageUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrStorageUnavailable, e.Op, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrStorageUnavailable, e.Op)
}

func (e *StorageUnavailableError) Unwrap() error {
	return ErrStorageUnavailable
}
