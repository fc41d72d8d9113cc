package harvest

import (
	"encoding/json"
	"fmt"

	"github.com/EuropeanUniversityFoundation/isced-go/vocabulary/skos"
)

// ldLiteral is a language-tagged literal in a JSON-LD document.
type ldLiteral struct {
	Language string `json:"@language"`
	Value    string `json:"@value"`
}

// ldRef is a reference to another resource.
type ldRef struct {
	ID string `json:"@id"`
}

// ldResource is one resource description inside a JSON-LD @graph.
type ldResource struct {
	ID            string      `json:"@id"`
	PrefLabels    []ldLiteral `json:"skos:prefLabel"`
	Notations     []ldLiteral `json:"skos:notation"`
	HasTopConcept []ldRef     `json:"skos:hasTopConcept"`
	TopConceptOf  []ldRef     `json:"skos:topConceptOf"`
	Broader       []ldRef     `json:"skos:broader"`
}

// ldDocument is the JSON-LD graph description returned for one resource URI.
type ldDocument struct {
	Graph []ldResource `json:"@graph"`
}

// Concept is a handle over one fetched concept: the resource matching the
// requested URI plus the sibling resources returned in the same graph. The
// siblings carry the inverse relations (topConceptOf, broader) the traversal
// enumerates children from.
type Concept struct {
	primary   *ldResource
	resources []ldResource
}

// parseConcept decodes a JSON-LD graph document and locates the primary
// resource for uri.
func parseConcept(uri string, data []byte) (*Concept, error) {
	var doc ldDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode graph document: %w", err)
	}
	if len(doc.Graph) == 0 {
		return nil, fmt.Errorf("empty graph document")
	}
	c := &Concept{resources: doc.Graph}
	for i := range doc.Graph {
		if doc.Graph[i].ID == uri {
			c.primary = &doc.Graph[i]
			break
		}
	}
	if c.primary == nil {
		return nil, fmt.Errorf("graph document has no resource %s", uri)
	}
	return c, nil
}

// ID returns the network identifier (URI) of the concept.
func (c *Concept) ID() string {
	return c.primary.ID
}

// Notation returns the stable short code of the concept, e.g. "0711".
func (c *Concept) Notation() (string, error) {
	if len(c.primary.Notations) == 0 || c.primary.Notations[0].Value == "" {
		return "", &MissingPropertyError{URI: c.primary.ID, Property: skos.Notation}
	}
	return c.primary.Notations[0].Value, nil
}

// Labels returns the concept's preferred labels keyed by language code.
// A later literal for an already-seen language is ignored.
func (c *Concept) Labels() LabelSet {
	labels := make(LabelSet, len(c.primary.PrefLabels))
	for _, l := range c.primary.PrefLabels {
		if l.Language == "" {
			continue
		}
		if _, seen := labels[l.Language]; seen {
			continue
		}
		labels[l.Language] = l.Value
	}
	return labels
}

// HasTopConcept returns the URI of the scheme's single top concept.
func (c *Concept) HasTopConcept() (string, error) {
	if len(c.primary.HasTopConcept) == 0 || c.primary.HasTopConcept[0].ID == "" {
		return "", &MissingPropertyError{URI: c.primary.ID, Property: skos.HasTopConcept}
	}
	return c.primary.HasTopConcept[0].ID, nil
}

// TopConceptsOf returns, in document order, the URIs of resources in this
// graph asserting skos:topConceptOf = scheme.
func (c *Concept) TopConceptsOf(scheme string) []string {
	var uris []string
	for i := range c.resources {
		for _, ref := range c.resources[i].TopConceptOf {
			if ref.ID == scheme {
				uris = append(uris, c.resources[i].ID)
				break
			}
		}
	}
	return uris
}

// NarrowerOf returns, in document order, the URIs of resources in this graph
// asserting skos:broader = uri. Callers at the detailed level must apply the
// self-loop exclusion before fetching the results.
func (c *Concept) NarrowerOf(uri string) []string {
	var uris []string
	for i := range c.resources {
		for _, ref := range c.resources[i].Broader {
			if ref.ID == uri {
				uris = append(uris, c.resources[i].ID)
				break
			}
		}
	}
	return uris
}
