// Package guard provides the constructor guard pattern used by domain objects
// to detect zero-value instances that bypassed their designated constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation error
// is supplied for a guard that was never constructed. It guarantees that
// validation of a zero-value object always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks domain objects as properly constructed.
// Embedding a ConstructorGuard in a struct and initializing it through
// NewConstructorGuard lets Validate distinguish objects built through their
// constructor from zero values, keeping domain invariants intact.
//
// Example:
//
//	type Money struct {
//	    amount int
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewMoney(amount int) (Money, error) {
//	    if amount < 0 {
//	        return Money{}, errors.New("amount cannot be negative")
//	    }
//	    return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking its owner as properly constructed.
// Call it inside every domain object constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its constructor.
// Returns nil for constructed objects. For zero values it returns validationError,
// or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
