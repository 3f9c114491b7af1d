package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/milk9111/parkour/anim"
)

// edit is one retargeting step given on the command line as op:axis[:args].
type edit struct {
	op   string
	axis anim.Axis
	args []float64
}

// arity is how many numbers each op takes after the axis.
var arity = map[string]int{
	"zero":       0,
	"flatten":    0,
	"normalize":  0,
	"arc":        0,
	"shift":      1,
	"scale":      1,
	"rescale":    1,
	"startat":    1,
	"endat":      1,
	"endlength":  1,
	"remapends":  2,
	"remaprange": 2,
	"fit":        3,
}

func parseAxis(s string) (anim.Axis, error) {
	switch strings.ToLower(s) {
	case "x":
		return anim.AxisX, nil
	case "y":
		return anim.AxisY, nil
	case "z":
		return anim.AxisZ, nil
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}

func parseEdit(s string) (edit, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return edit{}, fmt.Errorf("edit %q: want op:axis[:args]", s)
	}
	e := edit{op: strings.ToLower(parts[0])}
	want, ok := arity[e.op]
	if !ok {
		return edit{}, fmt.Errorf("edit %q: unknown op %q", s, parts[0])
	}
	axis, err := parseAxis(parts[1])
	if err != nil {
		return edit{}, fmt.Errorf("edit %q: %w", s, err)
	}
	e.axis = axis
	if got := len(parts) - 2; got != want {
		return edit{}, fmt.Errorf("edit %q: %s takes %d arguments, got %d", s, e.op, want, got)
	}
	for _, p := range parts[2:] {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return edit{}, fmt.Errorf("edit %q: %w", s, err)
		}
		e.args = append(e.args, v)
	}
	return e, nil
}

func (e edit) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:%s", e.op, e.axis)
	for _, v := range e.args {
		fmt.Fprintf(&b, ":%g", v)
	}
	return b.String()
}

// apply runs the edit on c. arc is used by the arc op.
func (e edit) apply(c *anim.Curve, arc anim.Arc) error {
	a := e.args
	switch e.op {
	case "zero":
		c.ZeroAxis(e.axis)
	case "flatten":
		c.FlattenAxis(e.axis)
	case "normalize":
		return c.Normalize(e.axis)
	case "arc":
		return c.SpliceArc(e.axis, arc)
	case "shift":
		c.ShiftAxis(e.axis, a[0])
	case "scale":
		c.ScaleAxis(e.axis, a[0])
	case "rescale":
		return c.RescaleExtent(e.axis, a[0])
	case "startat":
		return c.StartAxisAt(e.axis, a[0])
	case "endat":
		return c.EndAxisAt(e.axis, a[0])
	case "endlength":
		return c.ScaleToEndLength(e.axis, a[0])
	case "remapends":
		return c.RemapEnds(e.axis, a[0], a[1])
	case "remaprange":
		return c.RemapRange(e.axis, a[0], a[1])
	case "fit":
		return c.FitSegmentTravel(e.axis, a[0], a[1], a[2])
	default:
		return fmt.Errorf("unknown op %q", e.op)
	}
	return nil
}

// edits collects repeated -edit flags.
type edits []edit

func (es *edits) String() string {
	names := make([]string, len(*es))
	for i, e := range *es {
		names[i] = e.String()
	}
	return strings.Join(names, ",")
}

func (es *edits) Set(s string) error {
	e, err := parseEdit(s)
	if err != nil {
		return err
	}
	*es = append(*es, e)
	return nil
}
