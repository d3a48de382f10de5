// Package cssbuilder assembles CSS selector strings from typed fragments
// while enforcing CSS syntax rules.
//
// A selector is built by starting a chain with one of the package-level
// entry points (Element, ID, Class, Attr, PseudoClass, PseudoElement) and
// extending it with the matching methods on the returned Selector. Two
// selectors are joined with Combine using any CSS combinator token. The
// final string is produced by String.
//
// # Ordering Rules
//
// Fragments must be added in the canonical CSS order:
//
//	element, id, class, attribute, pseudo-class, pseudo-element
//
// Kinds may be skipped (an element may be followed directly by an
// attribute), but going backward fails with an OrderError. Element, id, and
// pseudo-element may each occur at most once; a second attempt fails with a
// DuplicateError. Class and pseudo-class fragments accumulate in call
// order. The attribute is a single slot and a repeated call overwrites it.
//
// A failed call leaves the selector exactly as it was, so a caller may
// recover and continue the chain.
//
// # Usage
//
//	import "github.com/tonKristall/core-js-101/pkg/cssbuilder"
//
//	sel, err := cssbuilder.Element("a").Attr(`href$=".png"`)
//	if err != nil {
//		return err
//	}
//	sel, err = sel.PseudoClass("focus")
//	if err != nil {
//		return err
//	}
//	fmt.Println(sel.String())
//	// Output: a[href$=".png"]:focus
//
// Combinations nest to arbitrary depth:
//
//	list := cssbuilder.Combine(
//		cssbuilder.Element("ul"), ">", cssbuilder.Element("li"),
//	)
//	sel := cssbuilder.Combine(list, "~", cssbuilder.Class("active"))
//	// sel.String() == "ul > li ~ .active"
//
// # Error Handling
//
// Errors can be classified with the helper predicates:
//
//	if cssbuilder.IsDuplicateError(err) { /* fragment used twice */ }
//	if cssbuilder.IsOrderError(err)     { /* fragment out of order */ }
//
// # Scope
//
// The builder only produces strings. It does not parse selectors, validate
// identifier or attribute-expression content, or match selectors against a
// document. Combinator tokens are inserted verbatim without validation.
//
// # Concurrency
//
// A Selector is mutated in place and must not be shared across concurrent
// chains. Distinct selectors are independent and safe to build in parallel.
package cssbuilder
