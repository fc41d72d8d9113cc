// Package skos provides SKOS core vocabulary IRI constants for the
// taxonomy harvester.
//
// Only the subset of SKOS actually asserted by the ISCED-F publication is
// covered: preferred labels, notations, the scheme-to-top-concept relation,
// and the broader/narrower hierarchy relations. The Term* constants mirror
// the compact "skos:"-prefixed keys used by the endpoint's JSON-LD
// serialization.
package skos
