package cssbuilder

// Element starts a new selector with the element type name set.
func Element(name string) *Selector {
	return &Selector{element: name}
}

// ID starts a new selector with the id fragment set.
func ID(name string) *Selector {
	return &Selector{id: "#" + name}
}

// Class starts a new selector with a single class fragment.
func Class(name string) *Selector {
	return &Selector{classes: "." + name}
}

// Attr starts a new selector with the attribute fragment set. The value is
// the raw attribute expression, including any operator and quoted value.
func Attr(value string) *Selector {
	return &Selector{attribute: "[" + value + "]"}
}

// PseudoClass starts a new selector with a single pseudo-class fragment.
func PseudoClass(name string) *Selector {
	return &Selector{pseudoClasses: ":" + name}
}

// PseudoElement starts a new selector with the pseudo-element fragment set.
func PseudoElement(name string) *Selector {
	return &Selector{pseudoElement: "::" + name}
}

// Combine joins two selectors with a combinator token, producing a new
// selector that renders as `left combinator right`. The combinator is
// inserted verbatim and not validated; operands may themselves be
// combinations, and their rendered form is captured at call time.
func Combine(left *Selector, combinator string, right *Selector) *Selector {
	return &Selector{
		combined:   left.String() + " " + combinator + " " + right.String(),
		isCombined: true,
	}
}
