package param

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/floats"

	"github.com/arloliu/fitparam/engine"
	"github.com/arloliu/fitparam/errs"
	"github.com/arloliu/fitparam/internal/glob"
	"github.com/arloliu/fitparam/internal/logger"
	"github.com/arloliu/fitparam/internal/options"
)

// Collection is a namespace of uniquely named fit parameters.
//
// Names are unique across scalar and categorical parameters. Numeric updates
// through AddScalar or SetValue mutate the stored engine primitive in place, so
// references already handed to a fit engine stay valid. Replacing an existing
// entity (Replace, AddCategory over an existing name, or AddScalar over a
// categorical parameter) swaps the entity and logs a warning.
//
// Collection is not safe for concurrent use; callers that share a collection
// between goroutines must serialize access themselves.
type Collection struct {
	params map[string]*Parameter
	logger *log.Logger
}

// Option configures a Collection.
type Option = options.Option[*Collection]

// WithLogger sets the logger used for override warnings and debug traces.
// A nil logger discards all messages.
func WithLogger(l *log.Logger) Option {
	return options.NoError(func(c *Collection) {
		if l == nil {
			l = logger.Discard()
		}
		c.logger = l
	})
}

// New creates an empty collection.
//
// Parameters:
//   - opts: Optional configuration (see WithLogger)
//
// Returns:
//   - *Collection: The empty collection
//   - error: An error if an option is invalid
//
// Example:
//
//	params, err := param.New(param.WithLogger(log.Default()))
//	if err != nil {
//	    return err
//	}
//	params.AddScalar("mu", 1, 0, 10)
func New(opts ...Option) (*Collection, error) {
	c := &Collection{
		params: make(map[string]*Parameter),
		logger: logger.Default(),
	}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// AddScalar creates a scalar parameter from engine construction arguments.
//
// The accepted argument forms are those of engine.NewRealVar: (value),
// (min, max) or (value, min, max). When name already holds a scalar, the
// arguments are applied to it in place: a single argument sets the value, two
// set the bounds and three set the bounds then the value. The existing
// parameter is returned and the number of tracked names is unchanged. When
// name holds a categorical parameter it is replaced with a warning.
//
// Returns errs.ErrConfiguration when args is empty; engine rejections
// (errs.ErrMalformedArguments) are returned unchanged.
func (c *Collection) AddScalar(name string, args ...float64) (*Parameter, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: parameter %q: no construction arguments", errs.ErrConfiguration, name)
	}

	if p, ok := c.params[name]; ok && p.kind == KindScalar {
		if err := updateScalar(p.real, args); err != nil {
			return nil, err
		}
		c.logger.Debug("updated parameter in place", "name", name, "value", p.real.Value())

		return p, nil
	}

	v, err := engine.NewRealVar(name, args...)
	if err != nil {
		return nil, err
	}
	p := NewScalar(v)
	c.store(name, p)

	return p, nil
}

// AddObservable creates a scalar parameter bounded by a data sample.
//
// A non-empty values sample takes precedence: the bounds are its minimum and
// maximum and args are ignored. Otherwise args are passed to AddScalar
// unchanged. Supplying neither fails with errs.ErrConfiguration.
func (c *Collection) AddObservable(name string, values []float64, args ...float64) (*Parameter, error) {
	if len(values) > 0 {
		return c.AddScalar(name, floats.Min(values), floats.Max(values))
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: observable %q: need either values or construction arguments", errs.ErrConfiguration, name)
	}

	return c.AddScalar(name, args...)
}

// AddCategory creates a categorical parameter whose levels are the distinct
// entries of values. Each level is labeled with the shortest decimal form of
// the value and coded with the value truncated toward zero.
//
// Values that cannot be truncated to an int (NaN, ±Inf, out of range) fail
// with the safecast error; two values sharing a truncated code fail with
// errs.ErrDuplicateLevel. An existing parameter under name is replaced with a
// warning.
func (c *Collection) AddCategory(name string, values []float64) (*Parameter, error) {
	cat, err := engine.NewCategory(name)
	if err != nil {
		return nil, err
	}

	seen := make(map[float64]struct{}, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}

		code, err := safecast.Truncate[int](v)
		if err != nil {
			return nil, fmt.Errorf("category %q: level %g: %w", name, v, err)
		}
		if err := cat.DefineType(strconv.FormatFloat(v, 'g', -1, 64), code); err != nil {
			return nil, err
		}
	}

	p := NewCategorical(cat)
	c.store(name, p)

	return p, nil
}

// Get returns the parameter stored under name.
func (c *Collection) Get(name string) (*Parameter, bool) {
	p, ok := c.params[name]
	return p, ok
}

// Has reports whether name is tracked.
func (c *Collection) Has(name string) bool {
	_, ok := c.params[name]
	return ok
}

// Len returns the number of tracked parameters.
func (c *Collection) Len() int {
	return len(c.params)
}

// Names returns the tracked names in sorted order.
func (c *Collection) Names() []string {
	names := make([]string, 0, len(c.params))
	for name := range c.params {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// SetValue updates the value of the parameter stored under name in place.
//
// Scalars take val as their new value (free variables clip it into their
// bounds). Categories select the level whose code is val truncated toward
// zero. Unknown names fail with errs.ErrUnknownParameter.
func (c *Collection) SetValue(name string, val float64) error {
	p, ok := c.params[name]
	if !ok {
		return fmt.Errorf("%w: %q", errs.ErrUnknownParameter, name)
	}

	switch p.kind {
	case KindScalar:
		p.real.SetValue(val)
	case KindCategorical:
		code, err := safecast.Truncate[int](val)
		if err != nil {
			return fmt.Errorf("category %q: level %g: %w", name, val, err)
		}
		if err := p.cat.SetIndex(code); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %q has no kind", errs.ErrInvalidParameter, name)
	}

	return nil
}

// Replace stores p under name. Replacing an existing entity logs a warning
// naming both kinds; the previous entity is no longer tracked. The name of p
// must equal name.
func (c *Collection) Replace(name string, p *Parameter) error {
	if p == nil || (p.kind != KindScalar && p.kind != KindCategorical) {
		return fmt.Errorf("%w: %q", errs.ErrInvalidParameter, name)
	}
	if p.Name() != name {
		return fmt.Errorf("%w: parameter %q stored under %q", errs.ErrInvalidParameter, p.Name(), name)
	}
	c.store(name, p)

	return nil
}

// Pop removes and returns the parameter stored under name.
func (c *Collection) Pop(name string) (*Parameter, bool) {
	p, ok := c.params[name]
	if !ok {
		return nil, false
	}
	delete(c.params, name)
	c.logger.Debug("removed parameter", "name", name)

	return p, true
}

// PopOr removes and returns the parameter stored under name, or def when name
// is not tracked.
func (c *Collection) PopOr(name string, def *Parameter) *Parameter {
	if p, ok := c.Pop(name); ok {
		return p
	}

	return def
}

// Find returns the parameters whose names match a shell-style glob pattern
// ('*', '?', '[seq]', '[!seq]'). The order of the result is unspecified.
// Malformed patterns match nothing.
func (c *Collection) Find(pattern string) []*Parameter {
	p, err := glob.Compile(pattern)
	if err != nil {
		c.logger.Debug("ignoring malformed pattern", "pattern", pattern, "err", err)
		return nil
	}

	var found []*Parameter
	for _, name := range c.Names() {
		if p.Match(name) {
			found = append(found, c.params[name])
		}
	}

	return found
}

// String lists the parameter count followed by every name in sorted order.
// Constant scalars are annotated "const", free scalars with their bounds.
func (c *Collection) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Parameter collection\n%d parameters:", len(c.params))
	for _, name := range c.Names() {
		p := c.params[name]
		sb.WriteString("\n")
		sb.WriteString(name)
		switch {
		case p.IsConstant():
			sb.WriteString("\tconst")
		case p.kind == KindScalar:
			fmt.Fprintf(&sb, "\t[%.2g, %.2g]", p.real.Min(), p.real.Max())
		}
	}

	return sb.String()
}

// store tracks p under name, warning when an existing entity is replaced.
func (c *Collection) store(name string, p *Parameter) {
	if old, ok := c.params[name]; ok && old != p {
		c.logger.Warn("overriding parameter", "name", name, "old", old.kind, "new", p.kind)
	} else if !ok {
		c.logger.Debug("added parameter", "name", name, "kind", p.kind)
	}
	c.params[name] = p
}

// updateScalar applies construction arguments to an existing variable.
func updateScalar(v *engine.RealVar, args []float64) error {
	for _, a := range args {
		if math.IsNaN(a) {
			return fmt.Errorf("%w: %q: NaN argument", errs.ErrMalformedArguments, v.Name())
		}
	}

	switch len(args) {
	case 1:
		v.SetValue(args[0])
	case 2:
		return v.SetRange(args[0], args[1])
	case 3:
		if err := v.SetRange(args[1], args[2]); err != nil {
			return err
		}
		v.SetValue(args[0])
	default:
		return fmt.Errorf("%w: %q: expected 1 to 3 arguments, got %d", errs.ErrMalformedArguments, v.Name(), len(args))
	}

	return nil
}
