package converters

import (
	"github.com/Station-Manager/errors"
)

// CheckString asserts that src is a string. Empty strings are accepted.
func CheckString(op errors.Op, src any) (string, error) {
	srcVal, ok := src.(string)
	if !ok {
		return "", errors.New(op).Errorf("%s, got %T", ErrMsgNotString, src)
	}
	return srcVal, nil
}

// CheckNonEmptyString asserts that src is a non-empty string.
func CheckNonEmptyString(op errors.Op, src any) (string, error) {
	srcVal, err := CheckString(op, src)
	if err != nil {
		return "", err
	}
	if srcVal == "" {
		return "", errors.New(op).Msg(ErrMsgEmptyString)
	}
	return srcVal, nil
}
