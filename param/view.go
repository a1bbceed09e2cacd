package param

import (
	"fmt"
	"iter"
	"slices"

	"github.com/arloliu/fitparam/engine"
	"github.com/arloliu/fitparam/errs"
	"github.com/arloliu/fitparam/internal/collision"
	"github.com/arloliu/fitparam/internal/hash"
)

// View is an immutable snapshot of a collection's name table. It maps every
// name tracked at export time to its engine primitive, either an
// *engine.RealVar or an *engine.Category.
//
// The name set of a view never changes. The primitives are shared with the
// collection, so value updates made through the collection are visible.
type View struct {
	names   []string
	params  map[string]*Parameter
	tracker *collision.Tracker
}

// Export snapshots the current name table.
func (c *Collection) Export() *View {
	names := c.Names()
	v := &View{
		names:   names,
		params:  make(map[string]*Parameter, len(names)),
		tracker: collision.NewTracker(len(names)),
	}
	for _, name := range names {
		v.params[name] = c.params[name]
		if !v.tracker.Track(name, hash.ID(name)) {
			c.logger.Warn("parameter id collision", "name", name, "id", hash.ID(name))
		}
	}

	return v
}

// Len returns the number of exported names.
func (v *View) Len() int { return len(v.names) }

// Names returns the exported names in sorted order.
func (v *View) Names() []string { return slices.Clone(v.names) }

// Get returns the engine primitive exported under name.
func (v *View) Get(name string) (any, bool) {
	p, ok := v.params[name]
	if !ok {
		return nil, false
	}

	return p.engineValue(), true
}

// Real returns the variable exported under name, if name is a scalar.
func (v *View) Real(name string) (*engine.RealVar, bool) {
	p, ok := v.params[name]
	if !ok || p.kind != KindScalar {
		return nil, false
	}

	return p.real, true
}

// Category returns the category exported under name, if name is categorical.
func (v *View) Category(name string) (*engine.Category, bool) {
	p, ok := v.params[name]
	if !ok || p.kind != KindCategorical {
		return nil, false
	}

	return p.cat, true
}

// All yields every exported name with its engine primitive, in name order.
func (v *View) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, name := range v.names {
			if !yield(name, v.params[name].engineValue()) {
				return
			}
		}
	}
}

// ByID resolves a parameter ID (the xxHash64 of its name) to the exported
// name and engine primitive.
//
// Returns errs.ErrUnknownParameter for IDs not in the view and
// errs.ErrHashCollision when several exported names share id.
func (v *View) ByID(id uint64) (string, any, error) {
	name, ok, err := v.tracker.Name(id)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return "", nil, fmt.Errorf("%w: id %#x", errs.ErrUnknownParameter, id)
	}

	return name, v.params[name].engineValue(), nil
}
