package param

import (
	"github.com/arloliu/fitparam/engine"
)

// Kind discriminates the variants of Parameter.
type Kind uint8

const (
	KindScalar      Kind = 0x1 // KindScalar wraps an engine.RealVar.
	KindCategorical Kind = 0x2 // KindCategorical wraps an engine.Category.
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "Scalar"
	case KindCategorical:
		return "Categorical"
	default:
		return "Unknown"
	}
}

// Parameter is a named fit parameter: either a continuous scalar variable or a
// categorical factor. Exactly one of Real and Category is non-nil, as reported
// by Kind.
type Parameter struct {
	kind Kind
	real *engine.RealVar
	cat  *engine.Category
}

// NewScalar wraps a real variable. It returns nil for a nil variable.
func NewScalar(v *engine.RealVar) *Parameter {
	if v == nil {
		return nil
	}

	return &Parameter{kind: KindScalar, real: v}
}

// NewCategorical wraps a category. It returns nil for a nil category.
func NewCategorical(c *engine.Category) *Parameter {
	if c == nil {
		return nil
	}

	return &Parameter{kind: KindCategorical, cat: c}
}

// Kind returns the variant of the parameter.
func (p *Parameter) Kind() Kind { return p.kind }

// Real returns the wrapped variable, or nil for categorical parameters.
func (p *Parameter) Real() *engine.RealVar { return p.real }

// Category returns the wrapped category, or nil for scalar parameters.
func (p *Parameter) Category() *engine.Category { return p.cat }

// Name returns the engine-level name of the parameter.
func (p *Parameter) Name() string {
	switch p.kind {
	case KindScalar:
		return p.real.Name()
	case KindCategorical:
		return p.cat.Name()
	default:
		return ""
	}
}

// Value returns the scalar value, or the current level code of a category.
func (p *Parameter) Value() float64 {
	switch p.kind {
	case KindScalar:
		return p.real.Value()
	case KindCategorical:
		return float64(p.cat.Index())
	default:
		return 0
	}
}

// IsConstant reports whether the parameter is a constant scalar. Categories
// are never constant.
func (p *Parameter) IsConstant() bool {
	return p.kind == KindScalar && p.real.IsConstant()
}

// engineValue returns the primitive handed to the fit engine.
func (p *Parameter) engineValue() any {
	switch p.kind {
	case KindScalar:
		return p.real
	case KindCategorical:
		return p.cat
	default:
		return nil
	}
}

func (p *Parameter) String() string {
	switch p.kind {
	case KindScalar:
		return p.real.String()
	case KindCategorical:
		return p.cat.String()
	default:
		return "<invalid parameter>"
	}
}
