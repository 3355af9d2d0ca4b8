package rop

import "errors"

func joinErrors(errs []Error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}

	all := make([]error, len(errs))
	for i, e := range errs {
		all[i] = e
	}
	return errors.Join(all...)
}

// AsError finds the first Error in err's chain.
func AsError(err error) (Error, bool) {
	var e Error
	if errors.As(err, &e) {
		return e, true
	}
	return Error{}, false
}
