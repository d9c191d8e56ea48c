package tween

// Target is the object a Tween animates. Get reports false for properties
// the target does not have; such properties are skipped for the life of the
// Tween that saw them missing at start.
type Target interface {
	Get(name string) (float64, bool)
	Set(name string, v float64)
}

// Props is a plain property bag.
//
//	obj := tween.Props{"x": 0, "alpha": 1}
type Props map[string]float64

// Get returns the property value.
func (p Props) Get(name string) (float64, bool) {
	v, ok := p[name]
	return v, ok
}

// Set writes the property value.
func (p Props) Set(name string, v float64) {
	p[name] = v
}

// Fields binds property names to float64 fields owned elsewhere, so a
// Tween can write straight into a struct:
//
//	tween.Fields{"x": &sprite.X, "y": &sprite.Y}
//
// A nil pointer counts as a missing property.
type Fields map[string]*float64

// Get returns the bound field's value.
func (f Fields) Get(name string) (float64, bool) {
	p := f[name]
	if p == nil {
		return 0, false
	}
	return *p, true
}

// Set writes through the bound pointer. Unbound names are ignored.
func (f Fields) Set(name string, v float64) {
	if p := f[name]; p != nil {
		*p = v
	}
}
