package adapters

import (
	"github.com/go-faster/errors"
	"github.com/goccy/go-json"
)

// roundTrip marshals input and decodes it into output. Fields only survive
// when both sides agree on their JSON names, so it suits flat records with
// matching tags; use an Adapter for anything else.
func roundTrip[In any, Out any](input In, output *Out) error {
	data, err := json.Marshal(input)
	if err != nil {
		return errors.Wrap(err, "adapters: marshal")
	}
	if err = json.Unmarshal(data, output); err != nil {
		return errors.Wrap(err, "adapters: unmarshal")
	}
	return nil
}

// ConvertModelToType decodes a storage model into a T through JSON.
func ConvertModelToType[T any](model any) (*T, error) {
	var out T
	if err := roundTrip(model, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConvertTypeToModel decodes a domain value into a storage model M through JSON.
func ConvertTypeToModel[M any](value any) (*M, error) {
	var out M
	if err := roundTrip(value, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
