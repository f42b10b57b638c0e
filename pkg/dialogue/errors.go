package dialogue

import "errors"

// InputError is a problem with what the user typed. It is answered with its
// Reason and the flow's usage hint, never with the generic failure tip.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return e.Reason
}

// NotFoundError means a query ran and matched nothing.
type NotFoundError struct {
	Reason string
}

func (e *NotFoundError) Error() string {
	return e.Reason
}

func isInputError(err error) (*InputError, bool) {
	var target *InputError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

func isNotFound(err error) (*NotFoundError, bool) {
	var target *NotFoundError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
