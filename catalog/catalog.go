// Package catalog builds per-language translation catalogs from a harvested
// taxonomy tree and replicates them across locale dialects.
package catalog

import (
	"sort"

	"github.com/EuropeanUniversityFoundation/isced-go/harvest"
)

// Message is one translation entry: the canonical English label and its
// localized text.
type Message struct {
	MsgID  string
	MsgStr string
}

// Messages is the ordered message list for one language. Entries keep the
// position of their first sighting; setting an existing MsgID overwrites the
// localized text in place.
type Messages struct {
	entries []Message
	index   map[string]int
}

// Set records a translation, overwriting any earlier value for msgID.
func (m *Messages) Set(msgID, msgStr string) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[msgID]; ok {
		m.entries[i].MsgStr = msgStr
		return
	}
	m.index[msgID] = len(m.entries)
	m.entries = append(m.entries, Message{MsgID: msgID, MsgStr: msgStr})
}

// Entries returns the messages in first-encounter order.
func (m *Messages) Entries() []Message {
	return m.entries
}

// Len returns the number of distinct message IDs.
func (m *Messages) Len() int {
	return len(m.entries)
}

func (m *Messages) clone() *Messages {
	c := &Messages{
		entries: make([]Message, len(m.entries)),
		index:   make(map[string]int, len(m.index)),
	}
	copy(c.entries, m.entries)
	for k, v := range m.index {
		c.index[k] = v
	}
	return c
}

// Catalog holds one message list per language code.
type Catalog struct {
	languages map[string]*Messages
}

// Language returns the message list for lang, creating it if absent.
func (c *Catalog) Language(lang string) *Messages {
	if c.languages == nil {
		c.languages = make(map[string]*Messages)
	}
	m, ok := c.languages[lang]
	if !ok {
		m = &Messages{}
		c.languages[lang] = m
	}
	return m
}

// Has reports whether a message list exists for lang.
func (c *Catalog) Has(lang string) bool {
	_, ok := c.languages[lang]
	return ok
}

// Languages returns the language codes of the catalog in ascending order.
func (c *Catalog) Languages() []string {
	langs := make([]string, 0, len(c.languages))
	for lang := range c.languages {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Entries returns the total number of distinct translation entries across
// all languages.
func (c *Catalog) Entries() int {
	var n int
	for _, m := range c.languages {
		n += m.Len()
	}
	return n
}

// Extract visits the root label set and every node's label set once, in
// top-down ascending-code order, and keys each localized text by the
// visited set's English label. Distinct codes sharing an English label
// collapse to one entry per language, the last visit winning; this is the
// intended deduplication, not data loss to guard against. The "en" list
// maps every distinct English label to itself and is the key space for all
// other languages.
func Extract(tree *harvest.Tree) *Catalog {
	c := &Catalog{}
	c.visit(tree.Labels)
	for _, broadCode := range tree.BroadCodes() {
		broad := tree.Broad[broadCode]
		c.visit(broad.Labels)
		for _, narrowCode := range broad.NarrowCodes() {
			narrow := broad.Narrow[narrowCode]
			c.visit(narrow.Labels)
			for _, detailedCode := range narrow.DetailedCodes() {
				c.visit(narrow.Detailed[detailedCode].Labels)
			}
		}
	}
	return c
}

func (c *Catalog) visit(labels harvest.LabelSet) {
	msgID, ok := labels.English()
	if !ok {
		return
	}
	for _, lang := range labels.Languages() {
		c.Language(lang).Set(msgID, labels[lang])
	}
}

// Replicate copies each source language's full message list verbatim under
// every target dialect code, overwriting existing targets. Sources are
// processed in ascending order for determinism. A source with no message
// list is skipped.
func (c *Catalog) Replicate(dialects map[string][]string) {
	sources := make([]string, 0, len(dialects))
	for source := range dialects {
		sources = append(sources, source)
	}
	sort.Strings(sources)

	for _, source := range sources {
		m, ok := c.languages[source]
		if !ok {
			continue
		}
		for _, target := range dialects[source] {
			c.languages[target] = m.clone()
		}
	}
}
