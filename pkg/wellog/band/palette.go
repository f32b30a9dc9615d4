package band

// Palette is Paul Tol's qualitative color palette, designed for colorblind
// accessibility. See: https://personal.sron.nl/~pault/
//
// Lithology colors are assigned from this table in first-seen order, cycling
// with modulo wraparound when a log carries more distinct lithologies than
// the palette has entries.
var Palette = []string{
	"#4477AA", // Blue
	"#EE6677", // Rose
	"#228833", // Green
	"#CCBB44", // Olive/Yellow
	"#66CCEE", // Cyan
	"#AA3377", // Purple
	"#BBBBBB", // Grey
	"#EE8866", // Orange
	"#44BB99", // Teal
	"#FFAABB", // Pink
}

// PaletteColor returns the palette entry for a given assignment index,
// cycling through the palette.
func PaletteColor(index int) string {
	return Palette[index%len(Palette)]
}

// Assignment maps lithology names to palette colors in first-seen order.
// It is built fresh for every render call: determinism comes from rebuilding
// the same table from the same sorted dataset, never from caching across
// calls.
type Assignment struct {
	colors map[string]string
	order  []string
}

// Entry is one lithology with its assigned color.
type Entry struct {
	Lithology string `json:"lithology"`
	Color     string `json:"color"`
}

// NewAssignment builds a color assignment from lithologies in first-seen
// order. Duplicate names keep their original slot.
func NewAssignment(lithologies []string) *Assignment {
	a := &Assignment{colors: make(map[string]string, len(lithologies))}
	for _, name := range lithologies {
		if _, ok := a.colors[name]; ok {
			continue
		}
		a.colors[name] = PaletteColor(len(a.order))
		a.order = append(a.order, name)
	}
	return a
}

// Color returns the color assigned to a lithology. Names never seen by the
// assignment still get a deterministic color by being appended to the table,
// so no band ever renders with an undefined fill.
func (a *Assignment) Color(lithology string) string {
	if c, ok := a.colors[lithology]; ok {
		return c
	}
	c := PaletteColor(len(a.order))
	a.colors[lithology] = c
	a.order = append(a.order, lithology)
	return c
}

// Entries returns the assignment table in first-seen order.
func (a *Assignment) Entries() []Entry {
	out := make([]Entry, len(a.order))
	for i, name := range a.order {
		out[i] = Entry{Lithology: name, Color: a.colors[name]}
	}
	return out
}

// Len returns the number of distinct lithologies assigned so far.
func (a *Assignment) Len() int { return len(a.order) }
