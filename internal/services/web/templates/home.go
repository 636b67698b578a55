package templates

// IconSize is the rendered edge length of the landing icon, in pixels.
const IconSize = 100

// HomeView carries the landing page inputs.
type HomeView struct {
	Page  PageContext
	Price Price
}
