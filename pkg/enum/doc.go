// Package enum provides closed, ordered, immutable enumerations whose
// members carry an underlying stored value, a symbolic name, and a map of
// auxiliary fields (at minimum a display label).
//
// # Overview
//
// An Enumeration replaces scattered magic constants with a single
// definition that supports lookup in both directions: by symbolic name,
// by underlying value, and by display label. Member order is preserved
// exactly as defined, because the order is user-visible wherever the
// enumeration feeds a closed-choice field (dropdowns, CLI usage text).
//
// # Usage
//
// Define an enumeration once, at package level:
//
//	var Severities = enum.MustNew(
//	    enum.M(0, "DEBUG", "Debug"),
//	    enum.M(1, "INFO", "Informational"),
//	    enum.M(2, "ERROR", "Error").With("page", true),
//	)
//
//	// Symbolic access to stored values:
//	var SeverityError = Severities.MustValue("ERROR") // 2
//
//	// Total lookups (a miss is an error, never a default):
//	m, err := Severities.ByValue(1)   // Member{Name: "INFO", ...}
//	l, err := Severities.LabelFor(2)  // "Error"
//
//	// Closed-choice consumers:
//	for _, c := range Severities.Choices() {
//	    fmt.Println(c.Value, c.Label)
//	}
//
// # Validation
//
// Construction validates that every member has a name and a non-empty
// label (members defined without a label get their name as the label),
// and that names and values are each unique within the enumeration. A
// violation is a programmer error surfaced at construction; MustNew
// panics so the defect is fatal at startup rather than latent.
//
// # Concurrency
//
// Both lookup indices are built once during construction and never
// mutated, so an Enumeration is safe for concurrent readers.
package enum
