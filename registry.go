package adapters

import "reflect"

// ConverterFunc converts a source field value into a value assignable to the
// destination field of the same name.
type ConverterFunc func(src any) (any, error)

// ValidatorFunc checks a destination field value once it has been assigned.
type ValidatorFunc func(value any) error

// typePair keys pair-scoped registrations as [srcType, dstType].
type typePair [2]reflect.Type

// scoped holds per-field registrations at three scopes. Lookups prefer the
// pair scope, then the destination type, then the global scope. Instances are
// never mutated once published; writers clone and swap.
type scoped[F any] struct {
	global map[string]F
	byDst  map[reflect.Type]map[string]F
	byPair map[typePair]map[string]F
}

func newScoped[F any]() *scoped[F] {
	return &scoped[F]{
		global: make(map[string]F),
		byDst:  make(map[reflect.Type]map[string]F),
		byPair: make(map[typePair]map[string]F),
	}
}

func cloneFields[F any](m map[string]F) map[string]F {
	out := make(map[string]F, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *scoped[F]) clone() *scoped[F] {
	out := &scoped[F]{
		global: cloneFields(s.global),
		byDst:  make(map[reflect.Type]map[string]F, len(s.byDst)+1),
		byPair: make(map[typePair]map[string]F, len(s.byPair)+1),
	}
	for t, m := range s.byDst {
		out.byDst[t] = cloneFields(m)
	}
	for p, m := range s.byPair {
		out.byPair[p] = cloneFields(m)
	}
	return out
}

func (s *scoped[F]) setGlobal(field string, fn F) { s.global[field] = fn }

func (s *scoped[F]) setDst(dst reflect.Type, field string, fn F) {
	m := s.byDst[dst]
	if m == nil {
		m = make(map[string]F)
		s.byDst[dst] = m
	}
	m[field] = fn
}

func (s *scoped[F]) setPair(key typePair, field string, fn F) {
	m := s.byPair[key]
	if m == nil {
		m = make(map[string]F)
		s.byPair[key] = m
	}
	m[field] = fn
}

func (s *scoped[F]) remove(field string, dst reflect.Type, key *typePair) {
	switch {
	case key != nil:
		delete(s.byPair[*key], field)
	case dst != nil:
		delete(s.byDst[dst], field)
	default:
		delete(s.global, field)
	}
}

func (s *scoped[F]) lookup(src, dst reflect.Type, field string) (F, bool) {
	if fn, ok := s.byPair[typePair{src, dst}][field]; ok {
		return fn, true
	}
	if fn, ok := s.byDst[dst][field]; ok {
		return fn, true
	}
	fn, ok := s.global[field]
	return fn, ok
}

// structType returns the struct type behind a value or pointer example.
func structType(example any) reflect.Type {
	t := reflect.TypeOf(example)
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

func pairOf(src, dst any) typePair { return typePair{structType(src), structType(dst)} }
