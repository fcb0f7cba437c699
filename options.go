package adapters

// OverwritePolicy controls whether AdditionalData values may replace fields
// that were already set from a direct source field.
type OverwritePolicy int

const (
	PreferFields         OverwritePolicy = iota // keep directly mapped values
	PreferAdditionalData                        // AdditionalData wins when a key is present
)

// Options tune the AdditionalData behaviour of an Adapter. Plain field copying
// is not affected by any of them.
type Options struct {
	IncludeZeroValues              bool // marshal zero-valued leftovers into AdditionalData
	CaseInsensitiveAdditionalData  bool // match AdditionalData keys ignoring case
	OverwritePolicy                OverwritePolicy
	DisableMarshalAdditionalData   bool // never fill dst.AdditionalData
	DisableUnmarshalAdditionalData bool // never read src.AdditionalData
}

type Option func(*Options)

func WithIncludeZeroValues(v bool) Option { return func(o *Options) { o.IncludeZeroValues = v } }

func WithCaseInsensitiveAdditionalData(v bool) Option {
	return func(o *Options) { o.CaseInsensitiveAdditionalData = v }
}

func WithOverwritePolicy(p OverwritePolicy) Option { return func(o *Options) { o.OverwritePolicy = p } }

func WithDisableMarshalAdditionalData(v bool) Option {
	return func(o *Options) { o.DisableMarshalAdditionalData = v }
}

func WithDisableUnmarshalAdditionalData(v bool) Option {
	return func(o *Options) { o.DisableUnmarshalAdditionalData = v }
}

// WithoutAdditionalData disables both directions of AdditionalData handling,
// turning the adapter into a plain field copier.
func WithoutAdditionalData() Option {
	return func(o *Options) {
		o.DisableMarshalAdditionalData = true
		o.DisableUnmarshalAdditionalData = true
	}
}
