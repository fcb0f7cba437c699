package adapters

import (
	"reflect"

	"github.com/aarondl/null/v8"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
	"github.com/goccy/go-json"
)

// rawAdditionalData extracts the JSON payload from a null.JSON or
// sqlboiler types.JSON value. An empty or null payload yields nil.
func rawAdditionalData(v reflect.Value) []byte {
	switch ad := v.Interface().(type) {
	case null.JSON:
		if !ad.Valid {
			return nil
		}
		return ad.JSON
	case boilertypes.JSON:
		return ad
	}
	return nil
}

func (a *Adapter) unmarshalAdditionalData(raw reflect.Value, dv reflect.Value, dstMeta *structMetadata, st reflect.Type, assigned map[string]bool) error {
	payload := rawAdditionalData(raw)
	if len(payload) == 0 {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return err
	}
	find := dstMeta.find
	if a.options.CaseInsensitiveAdditionalData {
		find = dstMeta.findFold
	}
	dt := dv.Type()
	convs := a.converters.Load()
	for key, value := range fields {
		fi, ok := find(key)
		if !ok || fi.ignore || fi.isAdditionalData {
			continue
		}
		if a.options.OverwritePolicy == PreferFields && assigned[fi.name] {
			continue
		}
		field := writeField(dv, fi.index)
		if fn, ok := convs.lookup(st, dt, fi.name); ok {
			// A registered converter owns the field; values it cannot handle
			// are dropped rather than decoded directly.
			var decoded any
			if err := json.Unmarshal(value, &decoded); err != nil {
				continue
			}
			out, err := fn(decoded)
			if err != nil || out == nil {
				continue
			}
			cv := reflect.ValueOf(out)
			if !cv.Type().AssignableTo(field.Type()) {
				continue
			}
			field.Set(cv)
		} else {
			ptr := reflect.New(field.Type())
			if err := json.Unmarshal(value, ptr.Interface()); err != nil {
				continue
			}
			field.Set(ptr.Elem())
		}
		if err := a.validate(field, fi.name, st, dt); err != nil {
			return err
		}
		assigned[fi.name] = true
	}
	return nil
}

func (a *Adapter) marshalRemaining(target reflect.Value, sv reflect.Value, srcMeta *structMetadata, consumed map[string]bool) error {
	remaining := make(map[string]any)
	for i := range srcMeta.fields {
		sf := &srcMeta.fields[i]
		if sf.isAdditionalData || sf.ignore || consumed[sf.name] {
			continue
		}
		field, ok := readField(sv, sf.index)
		if !ok || !field.CanInterface() {
			continue
		}
		if !a.options.IncludeZeroValues && field.IsZero() {
			continue
		}
		remaining[sf.name] = field.Interface()
	}

	var payload []byte
	if len(remaining) > 0 {
		var err error
		if payload, err = json.Marshal(remaining); err != nil {
			return err
		}
	}
	switch target.Type() {
	case nullJSONType:
		if payload == nil {
			target.Set(reflect.ValueOf(null.JSON{}))
		} else {
			target.Set(reflect.ValueOf(null.JSONFrom(payload)))
		}
	case boilerJSONType:
		target.Set(reflect.ValueOf(boilertypes.JSON(payload)))
	}
	return nil
}
