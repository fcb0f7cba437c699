package adapters

import (
	"reflect"
	"strings"

	"github.com/aarondl/null/v8"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
)

const additionalDataField = "AdditionalData"

var (
	nullJSONType   = reflect.TypeOf(null.JSON{})
	boilerJSONType = reflect.TypeOf(boilertypes.JSON{})
)

type fieldInfo struct {
	index            []int
	name             string
	jsonName         string
	typ              reflect.Type
	isAdditionalData bool
	ignore           bool
}

type structMetadata struct {
	fields         []fieldInfo
	byName         map[string]*fieldInfo
	byJSONName     map[string]*fieldInfo
	additionalData *fieldInfo
}

// find resolves a field by Go name first, then by json tag name.
func (m *structMetadata) find(name string) (*fieldInfo, bool) {
	if fi, ok := m.byName[name]; ok {
		return fi, true
	}
	fi, ok := m.byJSONName[name]
	return fi, ok
}

// findFold is find with case-insensitive matching as a fallback.
func (m *structMetadata) findFold(name string) (*fieldInfo, bool) {
	if fi, ok := m.find(name); ok {
		return fi, true
	}
	for n, fi := range m.byName {
		if strings.EqualFold(n, name) {
			return fi, true
		}
	}
	for n, fi := range m.byJSONName {
		if strings.EqualFold(n, name) {
			return fi, true
		}
	}
	return nil, false
}

// WarmMetadata pre-builds field metadata for the given values, pointers or
// types. Anything that is not a struct is skipped.
func (a *Adapter) WarmMetadata(examples ...any) {
	for _, e := range examples {
		if e == nil {
			continue
		}
		t, ok := e.(reflect.Type)
		if !ok {
			t = structType(e)
		} else if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			continue
		}
		a.metadataFor(t)
	}
}

func (a *Adapter) metadataFor(t reflect.Type) *structMetadata {
	if cached, ok := a.metadata.Load(t); ok {
		return cached.(*structMetadata)
	}
	meta := &structMetadata{
		byName:     make(map[string]*fieldInfo),
		byJSONName: make(map[string]*fieldInfo),
	}
	collectFields(t, nil, meta)
	for i := range meta.fields {
		fi := &meta.fields[i]
		meta.byName[fi.name] = fi
		if fi.jsonName != "" {
			meta.byJSONName[fi.jsonName] = fi
		}
	}
	if fi, ok := meta.byName[additionalDataField]; ok && fi.isAdditionalData {
		meta.additionalData = fi
	}
	actual, _ := a.metadata.LoadOrStore(t, meta)
	return actual.(*structMetadata)
}

// collectFields flattens exported fields, descending into embedded structs
// and embedded struct pointers.
func collectFields(t reflect.Type, prefix []int, meta *structMetadata) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		index := append(append([]int(nil), prefix...), i)
		if f.Anonymous {
			ft := f.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				collectFields(ft, index, meta)
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("adapter")
		meta.fields = append(meta.fields, fieldInfo{
			index:            index,
			name:             f.Name,
			jsonName:         jsonName(f.Tag),
			typ:              f.Type,
			isAdditionalData: f.Name == additionalDataField && (f.Type == nullJSONType || f.Type == boilerJSONType),
			ignore:           tag == "ignore" || tag == "-",
		})
	}
}

func jsonName(tag reflect.StructTag) string {
	jt, ok := tag.Lookup("json")
	if !ok {
		return ""
	}
	if i := strings.IndexByte(jt, ','); i >= 0 {
		jt = jt[:i]
	}
	if jt == "-" {
		return ""
	}
	return jt
}

// readField walks index on v. A nil embedded pointer on the way means the
// field is absent.
func readField(v reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Ptr {
			if v.IsNil() {
				return reflect.Value{}, false
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v, true
}

// writeField walks index on v, allocating nil embedded pointers.
func writeField(v reflect.Value, index []int) reflect.Value {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Ptr {
			if v.IsNil() {
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v
}
