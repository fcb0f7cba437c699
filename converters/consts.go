package converters

const (
	ErrMsgNotString   = "Given parameter not a string"
	ErrMsgEmptyString = "String parameter cannot be empty."
)
