// Package guard provides a defensive construction pattern for value objects,
// commands, and queries. Embedding a ConstructorGuard in a struct makes it
// possible to detect zero-value instances that bypassed the constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated constructor.
// The zero value fails validation, so direct struct literals are detectable.
//
// Example:
//
//	type AddDrugCommand struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewAddDrugCommand(name string) (AddDrugCommand, error) {
//	    if name == "" {
//	        return AddDrugCommand{}, errs.NewValueIsRequiredError("name")
//	    }
//	    return AddDrugCommand{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c AddDrugCommand) Validate() error {
//	    return c.guard.Validate(ErrAddDrugCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as properly
// constructed. Call this in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was created through its constructor.
// For zero-value guards it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
