package adapters

// Builder collects options, converters and validators and publishes them
// into a new Adapter in a single registry swap.
type Builder struct {
	opts       []Option
	converters *scoped[ConverterFunc]
	validators *scoped[ValidatorFunc]
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		converters: newScoped[ConverterFunc](),
		validators: newScoped[ValidatorFunc](),
	}
}

// WithOptions appends adapter options.
func (b *Builder) WithOptions(opts ...Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

// AddConverter registers a global converter by field name.
func (b *Builder) AddConverter(field string, fn ConverterFunc) *Builder {
	b.converters.setGlobal(field, fn)
	return b
}

// AddConverterFor registers a converter for a destination type and field name.
func (b *Builder) AddConverterFor(dst any, field string, fn ConverterFunc) *Builder {
	b.converters.setDst(structType(dst), field, fn)
	return b
}

// AddConverterForPair registers a converter for a (src, dst) pair and field name.
func (b *Builder) AddConverterForPair(src, dst any, field string, fn ConverterFunc) *Builder {
	b.converters.setPair(pairOf(src, dst), field, fn)
	return b
}

// AddValidator registers a global validator by field name.
func (b *Builder) AddValidator(field string, fn ValidatorFunc) *Builder {
	b.validators.setGlobal(field, fn)
	return b
}

// AddValidatorFor registers a validator for a destination type and field name.
func (b *Builder) AddValidatorFor(dst any, field string, fn ValidatorFunc) *Builder {
	b.validators.setDst(structType(dst), field, fn)
	return b
}

// AddValidatorForPair registers a validator for a (src, dst) pair and field name.
func (b *Builder) AddValidatorForPair(src, dst any, field string, fn ValidatorFunc) *Builder {
	b.validators.setPair(pairOf(src, dst), field, fn)
	return b
}

// Build returns a new Adapter. The builder may be reused; later additions do
// not leak into adapters that were already built.
func (b *Builder) Build() *Adapter {
	a := NewWithOptions(b.opts...)
	a.converters.Store(b.converters.clone())
	a.validators.Store(b.validators.clone())
	return a
}
