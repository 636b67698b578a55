package templates

// ErrorView describes an error page body.
type ErrorView struct {
	Page       PageContext
	StatusCode int
	TitleKey   string
	BodyKey    string
}
