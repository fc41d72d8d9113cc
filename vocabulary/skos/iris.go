package skos

// Namespace is the base IRI for the SKOS core vocabulary.
const Namespace = "http://www.w3.org/2004/02/skos/core#"

// Class IRIs for SKOS resources.
const (
	// ClassConceptScheme represents a skos:ConceptScheme, the root of a taxonomy.
	ClassConceptScheme = Namespace + "ConceptScheme"

	// ClassConcept represents a skos:Concept, one classification node.
	ClassConcept = Namespace + "Concept"
)

// Property IRIs used during harvesting.
const (
	// PrefLabel is the language-tagged preferred label of a concept.
	PrefLabel = Namespace + "prefLabel"

	// Notation is the stable short code of a concept, distinct from its URI.
	Notation = Namespace + "notation"

	// HasTopConcept links a scheme to its single top concept.
	// Domain: ClassConceptScheme, Range: ClassConcept
	HasTopConcept = Namespace + "hasTopConcept"

	// TopConceptOf is the inverse of HasTopConcept, asserted by the broad
	// fields directly under the scheme.
	TopConceptOf = Namespace + "topConceptOf"

	// Broader links a concept to its parent concept.
	Broader = Namespace + "broader"

	// Narrower links a concept to its child concepts.
	Narrower = Namespace + "narrower"
)

// Compact terms as they appear in JSON-LD documents using the "skos:" prefix.
const (
	TermPrefLabel     = "skos:prefLabel"
	TermNotation      = "skos:notation"
	TermHasTopConcept = "skos:hasTopConcept"
	TermTopConceptOf  = "skos:topConceptOf"
	TermBroader       = "skos:broader"
	TermNarrower      = "skos:narrower"
)
