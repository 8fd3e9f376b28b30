package core

import (
	"errors"
	"fmt"
)

// ContractError reports a broken internal invariant, such as a negative line
// number or a violation built without its required parameters.
//
// Contract errors are raised with panic and recovered at the API boundary by
// RecoverContract, which turns them into an ordinary error.
type ContractError struct {
	Op  string // operation that detected the violation
	Msg string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("contract violation in %s: %s", e.Op, e.Msg)
}

// Contractf panics with a ContractError.
func Contractf(op, format string, args ...any) {
	panic(&ContractError{Op: op, Msg: fmt.Sprintf(format, args...)})
}

// Require panics with a ContractError when cond is false.
func Require(cond bool, op, format string, args ...any) {
	if !cond {
		Contractf(op, format, args...)
	}
}

// RecoverContract converts a ContractError panic into *errp.
// Other panics are re-raised. It must be called directly by defer.
func RecoverContract(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if ce, ok := r.(*ContractError); ok {
		*errp = ce
		return
	}
	panic(r)
}

// IsContractError reports whether err wraps a ContractError.
func IsContractError(err error) bool {
	var ce *ContractError
	return errors.As(err, &ce)
}
