package harvest

import "sort"

// LabelSet maps a language code to the preferred label text in that
// language. A set is complete for flattening only if it has an "en" entry.
type LabelSet map[string]string

// Languages returns the language codes of the set in ascending order.
func (s LabelSet) Languages() []string {
	langs := make([]string, 0, len(s))
	for lang := range s {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// English returns the English label and whether one is present.
func (s LabelSet) English() (string, bool) {
	text, ok := s["en"]
	return text, ok
}
