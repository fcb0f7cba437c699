package common

import (
	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
	"github.com/flexible-adapter/adapters/converters"
)

// TypeToModelStringConverter converts a string to a model null.String. The
// empty string maps to SQL NULL.
func TypeToModelStringConverter(src any) (any, error) {
	const op errors.Op = "converters.common.TypeToModelStringConverter"
	srcVal, err := converters.CheckString(op, src)
	if err != nil {
		return null.String{}, errors.New(op).Err(err)
	}
	if srcVal == "" {
		return null.String{}, nil
	}
	return null.StringFrom(srcVal), nil
}

// ModelToTypeStringConverter converts a model null.String (or a plain
// string) to a string. SQL NULL maps to the empty string.
func ModelToTypeStringConverter(src any) (any, error) {
	const op errors.Op = "converters.common.ModelToTypeStringConverter"

	if nullStr, ok := src.(null.String); ok {
		if !nullStr.Valid {
			return "", nil
		}
		return nullStr.String, nil
	}

	srcVal, err := converters.CheckString(op, src)
	if err != nil {
		return "", errors.New(op).Err(err)
	}
	return srcVal, nil
}
