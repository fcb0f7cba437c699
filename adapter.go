package adapters

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/go-faster/errors"
)

var (
	ErrNilArgument = errors.New("src and dst must not be nil")
	ErrNotPointer  = errors.New("src and dst must be pointers")
	ErrNotStruct   = errors.New("src and dst must point to structs")
)

// Adapter copies and converts fields between structs. Registries are swapped
// atomically so an Adapter may be shared between goroutines while converters
// and validators are still being registered.
type Adapter struct {
	converters atomic.Pointer[scoped[ConverterFunc]]
	validators atomic.Pointer[scoped[ValidatorFunc]]
	metadata   sync.Map // reflect.Type -> *structMetadata
	options    Options
}

// New creates an Adapter with default options.
func New() *Adapter { return NewWithOptions() }

// NewWithOptions creates an Adapter with the given options applied in order.
func NewWithOptions(opts ...Option) *Adapter {
	a := &Adapter{options: Options{OverwritePolicy: PreferFields}}
	for _, opt := range opts {
		opt(&a.options)
	}
	a.converters.Store(newScoped[ConverterFunc]())
	a.validators.Store(newScoped[ValidatorFunc]())
	return a
}

// Options returns a copy of the options the adapter was built with.
func (a *Adapter) Options() Options { return a.options }

func (a *Adapter) updateConverters(fn func(*scoped[ConverterFunc])) {
	for {
		old := a.converters.Load()
		next := old.clone()
		fn(next)
		if a.converters.CompareAndSwap(old, next) {
			return
		}
	}
}

func (a *Adapter) updateValidators(fn func(*scoped[ValidatorFunc])) {
	for {
		old := a.validators.Load()
		next := old.clone()
		fn(next)
		if a.validators.CompareAndSwap(old, next) {
			return
		}
	}
}

// RegisterConverter adds a converter for fieldName on any src/dst pair.
// A nil fn removes the registration.
func (a *Adapter) RegisterConverter(fieldName string, fn ConverterFunc) {
	a.updateConverters(func(r *scoped[ConverterFunc]) {
		if fn == nil {
			r.remove(fieldName, nil, nil)
			return
		}
		r.setGlobal(fieldName, fn)
	})
}

// RegisterConverterFor scopes a converter to a destination type.
func (a *Adapter) RegisterConverterFor(dstType any, fieldName string, fn ConverterFunc) {
	dt := structType(dstType)
	a.updateConverters(func(r *scoped[ConverterFunc]) {
		if fn == nil {
			r.remove(fieldName, dt, nil)
			return
		}
		r.setDst(dt, fieldName, fn)
	})
}

// RegisterConverterForPair scopes a converter to a (src, dst) type pair. Pair
// converters take precedence over every other scope.
func (a *Adapter) RegisterConverterForPair(srcType, dstType any, fieldName string, fn ConverterFunc) {
	key := pairOf(srcType, dstType)
	a.updateConverters(func(r *scoped[ConverterFunc]) {
		if fn == nil {
			r.remove(fieldName, nil, &key)
			return
		}
		r.setPair(key, fieldName, fn)
	})
}

// RegisterValidator adds a validator for fieldName on any destination.
func (a *Adapter) RegisterValidator(fieldName string, fn ValidatorFunc) {
	a.updateValidators(func(r *scoped[ValidatorFunc]) {
		if fn == nil {
			r.remove(fieldName, nil, nil)
			return
		}
		r.setGlobal(fieldName, fn)
	})
}

// RegisterValidatorFor scopes a validator to a destination type.
func (a *Adapter) RegisterValidatorFor(dstType any, fieldName string, fn ValidatorFunc) {
	dt := structType(dstType)
	a.updateValidators(func(r *scoped[ValidatorFunc]) {
		if fn == nil {
			r.remove(fieldName, dt, nil)
			return
		}
		r.setDst(dt, fieldName, fn)
	})
}

// RegisterValidatorForPair scopes a validator to a (src, dst) type pair.
func (a *Adapter) RegisterValidatorForPair(srcType, dstType any, fieldName string, fn ValidatorFunc) {
	key := pairOf(srcType, dstType)
	a.updateValidators(func(r *scoped[ValidatorFunc]) {
		if fn == nil {
			r.remove(fieldName, nil, &key)
			return
		}
		r.setPair(key, fieldName, fn)
	})
}

// Adapt copies src into dst. Both must be non-nil pointers to structs.
// The source is never modified.
func (a *Adapter) Adapt(src, dst any) error {
	if src == nil || dst == nil {
		return ErrNilArgument
	}
	sv := reflect.ValueOf(src)
	dv := reflect.ValueOf(dst)
	if sv.Kind() != reflect.Ptr || dv.Kind() != reflect.Ptr {
		return ErrNotPointer
	}
	if sv.IsNil() || dv.IsNil() {
		return ErrNilArgument
	}
	sv, dv = sv.Elem(), dv.Elem()
	if sv.Kind() != reflect.Struct || dv.Kind() != reflect.Struct {
		return ErrNotStruct
	}
	return a.adaptStruct(sv, dv)
}

// Into is Adapt with the destination first.
func (a *Adapter) Into(dst, src any) error { return a.Adapt(src, dst) }

func (a *Adapter) adaptStruct(sv, dv reflect.Value) error {
	st, dt := sv.Type(), dv.Type()
	srcMeta := a.metadataFor(st)
	dstMeta := a.metadataFor(dt)

	// consumed tracks source fields that found a home; assigned tracks
	// destination fields set from a direct source field.
	consumed := make(map[string]bool, len(srcMeta.fields))
	assigned := make(map[string]bool, len(dstMeta.fields))

	for i := range dstMeta.fields {
		df := &dstMeta.fields[i]
		if df.isAdditionalData || df.ignore {
			continue
		}
		sf, ok := srcMeta.byName[df.name]
		if !ok && df.jsonName != "" {
			sf, ok = srcMeta.byJSONName[df.jsonName]
		}
		if !ok {
			continue
		}
		if sf.isAdditionalData || sf.ignore {
			consumed[sf.name] = true
			continue
		}
		srcField, ok := readField(sv, sf.index)
		if !ok {
			continue
		}
		if err := a.adaptField(writeField(dv, df.index), srcField, df.name, st, dt); err != nil {
			return errors.Wrapf(err, "adapting field %s", df.name)
		}
		consumed[sf.name] = true
		assigned[df.name] = true
	}

	if srcMeta.additionalData != nil && !a.options.DisableUnmarshalAdditionalData {
		raw := sv.FieldByIndex(srcMeta.additionalData.index)
		if err := a.unmarshalAdditionalData(raw, dv, dstMeta, st, assigned); err != nil {
			return errors.Wrap(err, "unmarshaling AdditionalData")
		}
		consumed[additionalDataField] = true
	}
	if dstMeta.additionalData != nil && !a.options.DisableMarshalAdditionalData {
		target := dv.FieldByIndex(dstMeta.additionalData.index)
		if err := a.marshalRemaining(target, sv, srcMeta, consumed); err != nil {
			return errors.Wrap(err, "marshaling remaining fields to AdditionalData")
		}
	}
	return nil
}

func (a *Adapter) adaptField(dstField, srcField reflect.Value, name string, st, dt reflect.Type) error {
	if !dstField.CanSet() {
		return errors.Errorf("cannot set field %s", name)
	}
	if fn, ok := a.converters.Load().lookup(st, dt, name); ok {
		if err := applyConverter(dstField, fn, srcField.Interface(), name); err != nil {
			return err
		}
		return a.validate(dstField, name, st, dt)
	}
	from, to := srcField.Type(), dstField.Type()
	switch {
	case from.AssignableTo(to):
		dstField.Set(srcField)
	case from.ConvertibleTo(to) && convertibleKinds(from, to):
		dstField.Set(srcField.Convert(to))
	default:
		return nil
	}
	return a.validate(dstField, name, st, dt)
}

// convertibleKinds rejects reflect conversions that compile but change
// meaning, such as int to string.
func convertibleKinds(from, to reflect.Type) bool {
	if to.Kind() == reflect.String {
		return from.Kind() == reflect.String
	}
	return true
}

func (a *Adapter) validate(field reflect.Value, name string, st, dt reflect.Type) error {
	if fn, ok := a.validators.Load().lookup(st, dt, name); ok {
		return fn(field.Interface())
	}
	return nil
}

func applyConverter(dstField reflect.Value, fn ConverterFunc, in any, name string) error {
	out, err := fn(in)
	if err != nil {
		return err
	}
	if out == nil {
		dstField.Set(reflect.Zero(dstField.Type()))
		return nil
	}
	cv := reflect.ValueOf(out)
	if !cv.Type().AssignableTo(dstField.Type()) {
		return errors.Errorf("converter for %s returned %s, expected %s", name, cv.Type(), dstField.Type())
	}
	dstField.Set(cv)
	return nil
}
