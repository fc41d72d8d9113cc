package skos_test

import (
	"strings"
	"testing"

	"github.com/EuropeanUniversityFoundation/isced-go/vocabulary/skos"
)

func TestPropertyIRIs(t *testing.T) {
	props := map[string]string{
		"PrefLabel":     skos.PrefLabel,
		"Notation":      skos.Notation,
		"HasTopConcept": skos.HasTopConcept,
		"TopConceptOf":  skos.TopConceptOf,
		"Broader":       skos.Broader,
		"Narrower":      skos.Narrower,
	}

	for name, iri := range props {
		t.Run(name, func(t *testing.T) {
			if !strings.HasPrefix(iri, skos.Namespace) {
				t.Errorf("%s = %q, want prefix %q", name, iri, skos.Namespace)
			}
		})
	}
}

func TestCompactTermsMatchIRILocalNames(t *testing.T) {
	pairs := []struct {
		term string
		iri  string
	}{
		{skos.TermPrefLabel, skos.PrefLabel},
		{skos.TermNotation, skos.Notation},
		{skos.TermHasTopConcept, skos.HasTopConcept},
		{skos.TermTopConceptOf, skos.TopConceptOf},
		{skos.TermBroader, skos.Broader},
		{skos.TermNarrower, skos.Narrower},
	}

	for _, p := range pairs {
		local := strings.TrimPrefix(p.term, "skos:")
		if !strings.HasSuffix(p.iri, local) {
			t.Errorf("term %q does not match IRI %q", p.term, p.iri)
		}
	}
}
