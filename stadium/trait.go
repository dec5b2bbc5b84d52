// File: stadium/trait.go
package stadium

// Trait is a named bundle of optional default values that raw geometry
// items reference by name. Every field is a pointer so "unset" is
// representable and distinguishable from a real zero value, which is
// what makes the two-pass resolution (trait, then hard default) work.
type Trait struct {
	BCoef   *float64
	CGroup  []string
	CMask   []string
	Radius  *float64
	InvMass *float64
	Damping *float64
	Bias    *float64
	Curve   *float64
	Color   []int
}

// applyTraitToFields is the generic "fill unset pointer fields from the
// named trait" step shared by every raw geometry kind's resolution.
func applyTraitToFields(traitName *string, traits map[string]Trait) Trait {
	if traitName == nil {
		return Trait{}
	}
	t, ok := traits[*traitName]
	if !ok {
		return Trait{}
	}
	return t
}
