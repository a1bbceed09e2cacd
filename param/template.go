package param

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arloliu/fitparam/errs"
)

// Axis is one named dimension of a name template.
type Axis struct {
	Name   string
	Values []any
}

// ExpandTemplate creates one scalar parameter per combination of axis values.
//
// The template refers to axes through {name} placeholders; "{{" and "}}"
// produce literal braces. Combinations are generated in axis order with the
// last axis varying fastest. Every generated name is passed to AddScalar with
// the shared args.
//
// Floating-point values render in their shortest round-trip form and always
// carry a fraction or an exponent (1.0, 0.25, 1e-05, 1e+16); other values
// render with fmt.Sprint. Placeholders hold an axis name only: format specs
// and conversions such as {bin:02d} or {bin!r} are rejected as unknown axes.
//
// Parameters:
//   - tpl: Name template, e.g. "yield_{channel}_{year}"
//   - axes: Ordered axes referenced by the template
//   - args: Construction arguments shared by every generated parameter
//
// Returns:
//   - []string: The generated names in generation order
//   - error: errs.ErrInvalidTemplate for malformed templates or unknown
//     placeholders (nothing is created), or the first AddScalar error
//
// An axis without values yields no names. Without axes the template itself
// (with escapes resolved) is the only name.
func (c *Collection) ExpandTemplate(tpl string, axes []Axis, args ...float64) ([]string, error) {
	names, err := expandNames(tpl, axes)
	if err != nil {
		return nil, err
	}

	for _, name := range names {
		if _, err := c.AddScalar(name, args...); err != nil {
			return nil, err
		}
	}

	return names, nil
}

// segment is a literal run of a template, or a placeholder when axis >= 0.
type segment struct {
	text string
	axis int
}

func expandNames(tpl string, axes []Axis) ([]string, error) {
	segs, err := parseTemplate(tpl, axes)
	if err != nil {
		return nil, err
	}

	total := 1
	for _, a := range axes {
		total *= len(a.Values)
	}
	if total == 0 {
		return nil, nil
	}

	// Odometer over the axis value indices; the last axis turns fastest.
	idx := make([]int, len(axes))
	names := make([]string, 0, total)
	var sb strings.Builder
	for range total {
		sb.Reset()
		for _, s := range segs {
			if s.axis < 0 {
				sb.WriteString(s.text)
				continue
			}
			sb.WriteString(renderValue(axes[s.axis].Values[idx[s.axis]]))
		}
		names = append(names, sb.String())

		for i := len(idx) - 1; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(axes[i].Values) {
				break
			}
			idx[i] = 0
		}
	}

	return names, nil
}

func renderValue(v any) string {
	switch f := v.(type) {
	case float64:
		return formatFloat(f, 64)
	case float32:
		return formatFloat(float64(f), 32)
	default:
		return fmt.Sprint(v)
	}
}

// formatFloat renders f in positional notation for decimal exponents in
// [-4, 16) and in exponent notation otherwise, with ".0" appended to whole
// numbers.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}

		return "0.0"
	}

	e := strconv.FormatFloat(f, 'e', -1, bitSize)
	exp, _ := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return e
	}

	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

func parseTemplate(tpl string, axes []Axis) ([]segment, error) {
	index := make(map[string]int, len(axes))
	for i, a := range axes {
		index[a.Name] = i
	}

	var segs []segment
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			segs = append(segs, segment{text: lit.String(), axis: -1})
			lit.Reset()
		}
	}

	for i := 0; i < len(tpl); i++ {
		switch ch := tpl[i]; ch {
		case '{':
			if i+1 < len(tpl) && tpl[i+1] == '{' {
				lit.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(tpl[i+1:], '}')
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated placeholder in %q", errs.ErrInvalidTemplate, tpl)
			}
			name := tpl[i+1 : i+1+end]
			pos, ok := index[name]
			if !ok {
				return nil, fmt.Errorf("%w: placeholder {%s} in %q names no axis", errs.ErrInvalidTemplate, name, tpl)
			}
			flush()
			segs = append(segs, segment{axis: pos})
			i += end + 1
		case '}':
			if i+1 < len(tpl) && tpl[i+1] == '}' {
				lit.WriteByte('}')
				i++
				continue
			}
			return nil, fmt.Errorf("%w: single '}' in %q", errs.ErrInvalidTemplate, tpl)
		default:
			lit.WriteByte(ch)
		}
	}
	flush()

	return segs, nil
}
