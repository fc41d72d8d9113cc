// Package iscedf provides IRI constants for the ISCED-F 2013 fields of
// education and training classification as published on the EU linked-data
// endpoint.
package iscedf

// Namespace is the base IRI for ISCED-F resources.
const Namespace = "http://data.europa.eu/snb/isced-f/"

// SchemeURI is the concept scheme resource for ISCED-F 2013.
const SchemeURI = Namespace + "25831c2"
