package chart

// Defaulter is implemented by prop types that can fill their unset fields
// from another instance.
type Defaulter[P any] interface {
	Defaults(fallback P) P
}

// ModifyProps applies defaults to props: fields set on props win, then
// fields from the theme role's props (if any), then the fallback props.
// Style is never taken from the theme props; theme styles are merged
// separately through [GetStyles].
func ModifyProps[P Defaulter[P]](props P, themeProps *P, fallback P) P {
	if themeProps != nil {
		props = props.Defaults(*themeProps)
	}
	return props.Defaults(fallback)
}
