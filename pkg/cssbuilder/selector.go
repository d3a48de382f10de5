package cssbuilder

// fragmentKind identifies one syntactic piece of a compound selector.
// The declaration order is the canonical CSS order and is relied upon
// by the ordering checks.
type fragmentKind int

const (
	kindElement fragmentKind = iota
	kindID
	kindClass
	kindAttribute
	kindPseudoClass
	kindPseudoElement
)

func (k fragmentKind) String() string {
	switch k {
	case kindElement:
		return "element"
	case kindID:
		return "id"
	case kindClass:
		return "class"
	case kindAttribute:
		return "attribute"
	case kindPseudoClass:
		return "pseudo-class"
	case kindPseudoElement:
		return "pseudo-element"
	default:
		return "unknown"
	}
}

// Selector accumulates the fragments of one compound selector, or holds the
// pre-rendered result of a combination. Fragments are stored already
// punctuated, so rendering is plain concatenation.
type Selector struct {
	element       string
	id            string
	classes       string
	attribute     string
	pseudoClasses string
	pseudoElement string

	combined   string
	isCombined bool
}

// fragments returns the fragment fields in canonical order.
func (s *Selector) fragments() [6]string {
	return [6]string{s.element, s.id, s.classes, s.attribute, s.pseudoClasses, s.pseudoElement}
}

// checkOrder reports an OrderError if any fragment of a kind strictly after
// k is already present. Skipping kinds forward is allowed, going backward
// is not.
func (s *Selector) checkOrder(k fragmentKind) error {
	parts := s.fragments()
	for i := int(k) + 1; i < len(parts); i++ {
		if parts[i] != "" {
			return &OrderError{Fragment: k.String(), Present: fragmentKind(i).String()}
		}
	}
	return nil
}

// Element sets the element type name. It fails with a DuplicateError if the
// element is already set, or with an OrderError if any later fragment kind
// is present. A failed call leaves the selector unchanged.
func (s *Selector) Element(name string) (*Selector, error) {
	if s.element != "" {
		return s, &DuplicateError{Fragment: kindElement.String()}
	}
	if err := s.checkOrder(kindElement); err != nil {
		return s, err
	}
	s.element = name
	return s, nil
}

// ID sets the id fragment. It fails with a DuplicateError if an id is
// already set, or with an OrderError if any later fragment kind is present.
func (s *Selector) ID(name string) (*Selector, error) {
	if s.id != "" {
		return s, &DuplicateError{Fragment: kindID.String()}
	}
	if err := s.checkOrder(kindID); err != nil {
		return s, err
	}
	s.id = "#" + name
	return s, nil
}

// Class appends a class fragment. Classes accumulate in call order with no
// uniqueness limit. It fails with an OrderError if an attribute,
// pseudo-class, or pseudo-element is already present.
func (s *Selector) Class(name string) (*Selector, error) {
	if err := s.checkOrder(kindClass); err != nil {
		return s, err
	}
	s.classes += "." + name
	return s, nil
}

// Attr sets the attribute fragment. The value is the raw attribute
// expression (for example `href$=".png"`) and is not validated. The
// attribute is a single slot: a second call overwrites the first rather
// than appending or failing. It fails with an OrderError if a pseudo-class
// or pseudo-element is already present.
func (s *Selector) Attr(value string) (*Selector, error) {
	if err := s.checkOrder(kindAttribute); err != nil {
		return s, err
	}
	s.attribute = "[" + value + "]"
	return s, nil
}

// PseudoClass appends a pseudo-class fragment. Pseudo-classes accumulate in
// call order with no uniqueness limit. It fails with an OrderError if a
// pseudo-element is already present.
func (s *Selector) PseudoClass(name string) (*Selector, error) {
	if err := s.checkOrder(kindPseudoClass); err != nil {
		return s, err
	}
	s.pseudoClasses += ":" + name
	return s, nil
}

// PseudoElement sets the pseudo-element fragment. It fails with a
// DuplicateError if one is already set. Nothing follows a pseudo-element in
// the canonical order, so there is no ordering check.
func (s *Selector) PseudoElement(name string) (*Selector, error) {
	if s.pseudoElement != "" {
		return s, &DuplicateError{Fragment: kindPseudoElement.String()}
	}
	s.pseudoElement = "::" + name
	return s, nil
}

// String renders the selector. A combined selector returns its combined
// expression verbatim; otherwise the set fragments are concatenated in
// canonical order. Rendering is pure and idempotent.
func (s *Selector) String() string {
	if s.isCombined {
		return s.combined
	}
	return s.element + s.id + s.classes + s.attribute + s.pseudoClasses + s.pseudoElement
}
