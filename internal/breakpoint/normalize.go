package breakpoint

import (
	"sort"
)

// Breakpoint is a named viewport width threshold.
type Breakpoint struct {
	Name  string `json:"name" yaml:"name"`
	Value Value  `json:"value" yaml:"value"`
}

// List is a set of breakpoints in ascending order of magnitude.
type List []Breakpoint

// Names returns the breakpoint names in order.
func (l List) Names() []string {
	names := make([]string, len(l))
	for i, bp := range l {
		names[i] = bp.Name
	}
	return names
}

// Smallest returns the first breakpoint, if any.
func (l List) Smallest() (Breakpoint, bool) {
	if len(l) == 0 {
		return Breakpoint{}, false
	}
	return l[0], true
}

// Defaults returns the standard five-step Tailwind scale.
func Defaults() map[string]Value {
	return map[string]Value{
		"sm":  String("40rem"),
		"md":  String("48rem"),
		"lg":  String("64rem"),
		"xl":  String("80rem"),
		"2xl": String("96rem"),
	}
}

// Validate checks a single breakpoint value.
func Validate(name string, v Value) error {
	if _, ok := v.Magnitude(); !ok {
		return &InvalidValueError{Name: name, Raw: v.Raw()}
	}
	return nil
}

// Normalize validates breakpoints and sorts them by magnitude.
//
// Every value is validated before sorting, in name order, so a set with one
// entry is checked the same way as a larger one and the reported error does
// not depend on map iteration. Duplicates are detected on raw values after
// sorting: "40rem" and 40 are distinct even though both resolve to 40.
func Normalize(breakpoints map[string]Value) (List, error) {
	if len(breakpoints) == 0 {
		return nil, &EmptySetError{}
	}

	names := make([]string, 0, len(breakpoints))
	for name := range breakpoints {
		names = append(names, name)
	}
	sort.Strings(names)

	list := make(List, 0, len(names))
	magnitudes := make(map[string]float64, len(names))
	for _, name := range names {
		v := breakpoints[name]
		if err := Validate(name, v); err != nil {
			return nil, err
		}
		magnitudes[name], _ = v.Magnitude()
		list = append(list, Breakpoint{Name: name, Value: v})
	}

	// Equal magnitudes keep name order.
	sort.SliceStable(list, func(i, j int) bool {
		return magnitudes[list[i].Name] < magnitudes[list[j].Name]
	})

	// Value is comparable and its == matches Equal.
	seen := make(map[Value]string, len(list))
	for _, bp := range list {
		if other, ok := seen[bp.Value]; ok {
			return nil, &DuplicateValueError{
				Name:     bp.Name,
				Conflict: other,
				Value:    bp.Value,
			}
		}
		seen[bp.Value] = bp.Name
	}

	return list, nil
}
