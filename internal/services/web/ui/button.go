package ui

// ButtonSize selects one of the fixed button sizes.
type ButtonSize string

const (
	SizeXS ButtonSize = "xs"
	SizeSM ButtonSize = "sm"
	SizeMD ButtonSize = "md"
	SizeLG ButtonSize = "lg"
)

// ButtonVariant selects the visual treatment of a button.
type ButtonVariant string

const (
	VariantSolid   ButtonVariant = "solid"
	VariantOutline ButtonVariant = "outline"
	VariantGhost   ButtonVariant = "ghost"
)

// ButtonProps configures Button. The zero value is a medium solid button.
type ButtonProps struct {
	Size     ButtonSize
	Variant  ButtonVariant
	Submit   bool
	Disabled bool
	ID       string
}

func (p ButtonProps) size() ButtonSize {
	switch p.Size {
	case SizeXS, SizeSM, SizeMD, SizeLG:
		return p.Size
	default:
		return SizeMD
	}
}

func (p ButtonProps) variant() ButtonVariant {
	switch p.Variant {
	case VariantSolid, VariantOutline, VariantGhost:
		return p.Variant
	default:
		return VariantSolid
	}
}

func (p ButtonProps) buttonType() string {
	if p.Submit {
		return "submit"
	}
	return "button"
}

func (p ButtonProps) className() string {
	return "btn btn-" + string(p.size()) + " btn-" + string(p.variant())
}
