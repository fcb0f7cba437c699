package adapters

// Generic helpers are top-level functions because methods cannot take type
// parameters.

// Copy adapts src into dst.
func Copy[T any](a *Adapter, dst *T, src any) error { return a.Into(dst, src) }

// AdaptTo adapts src into a freshly allocated T.
func AdaptTo[T any](a *Adapter, src any) (*T, error) {
	var d T
	if err := a.Into(&d, src); err != nil {
		return nil, err
	}
	return &d, nil
}

// Make adapts src into a T returned by value. On error the partially filled
// value is returned alongside it.
func Make[T any](a *Adapter, src any) (T, error) {
	var d T
	err := a.Into(&d, src)
	return d, err
}

// MakeSlice adapts every element of src, stopping at the first failure.
func MakeSlice[T any, S any](a *Adapter, src []S) ([]T, error) {
	out := make([]T, 0, len(src))
	for i := range src {
		d, err := Make[T](a, &src[i])
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// ComposeConverters chains converters left to right. The first error aborts
// and a nil output short-circuits the chain.
func ComposeConverters(fns ...ConverterFunc) ConverterFunc {
	return func(src any) (any, error) {
		cur := src
		for _, fn := range fns {
			out, err := fn(cur)
			if err != nil {
				return nil, err
			}
			if out == nil {
				return nil, nil
			}
			cur = out
		}
		return cur, nil
	}
}

// MapString applies f to string inputs and passes everything else through.
func MapString(f func(string) string) ConverterFunc {
	return func(src any) (any, error) {
		if s, ok := src.(string); ok {
			return f(s), nil
		}
		return src, nil
	}
}
