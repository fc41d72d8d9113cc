// Package table flattens a harvested taxonomy tree into the code-indexed
// lookup table consumed by applications at runtime.
package table

import (
	"fmt"
	"sort"

	"github.com/EuropeanUniversityFoundation/isced-go/harvest"
)

// Record is the flat lookup entry for one code. Broad always names the
// broad-field ancestor; Narrow and Detailed are nil for levels the code
// does not reach.
type Record struct {
	Label    string  `json:"label"`
	Broad    string  `json:"broad"`
	Narrow   *string `json:"narrow"`
	Detailed *string `json:"detailed"`
}

// MissingLabelError reports a node without an English label, which the flat
// table cannot represent.
type MissingLabelError struct {
	Code string
}

func (e *MissingLabelError) Error() string {
	return fmt.Sprintf("code %s: no English label", e.Code)
}

// Table is the immutable flattened lookup table. It is built once per
// harvest and passed by reference to consumers; it has no mutating methods.
type Table struct {
	codes   []string
	records map[string]Record
}

// Get returns the record for code.
func (t *Table) Get(code string) (Record, bool) {
	r, ok := t.records[code]
	return r, ok
}

// Codes returns every code in the table in ascending order.
func (t *Table) Codes() []string {
	return t.codes
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// Flatten walks the tree in ascending code order at every level and emits
// one record per broad, narrow, and detailed code.
func Flatten(tree *harvest.Tree) (*Table, error) {
	records := make(map[string]Record)

	for _, broadCode := range tree.BroadCodes() {
		broad := tree.Broad[broadCode]
		label, ok := broad.Labels.English()
		if !ok {
			return nil, &MissingLabelError{Code: broadCode}
		}
		records[broadCode] = Record{Label: label, Broad: broadCode}

		for _, narrowCode := range broad.NarrowCodes() {
			narrow := broad.Narrow[narrowCode]
			label, ok := narrow.Labels.English()
			if !ok {
				return nil, &MissingLabelError{Code: narrowCode}
			}
			nc := narrowCode
			records[narrowCode] = Record{Label: label, Broad: broadCode, Narrow: &nc}

			for _, detailedCode := range narrow.DetailedCodes() {
				detailed := narrow.Detailed[detailedCode]
				label, ok := detailed.Labels.English()
				if !ok {
					return nil, &MissingLabelError{Code: detailedCode}
				}
				nc := narrowCode
				dc := detailedCode
				records[detailedCode] = Record{Label: label, Broad: broadCode, Narrow: &nc, Detailed: &dc}
			}
		}
	}

	codes := make([]string, 0, len(records))
	for code := range records {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	return &Table{codes: codes, records: records}, nil
}
