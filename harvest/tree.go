package harvest

import "sort"

// Tree is the reconstructed four-level taxonomy. Labels holds the label set
// of the scheme's top concept; Broad maps broad-field codes to their
// subtrees. All ordered traversal of the tree goes through the sorted code
// accessors, which return codes in ascending lexicographic order.
type Tree struct {
	Labels LabelSet
	Broad  map[string]*BroadNode
}

// BroadNode is a broad field of study, e.g. "07" Engineering.
type BroadNode struct {
	Labels LabelSet
	Narrow map[string]*NarrowNode
}

// NarrowNode is a narrow field under a broad field, e.g. "071".
type NarrowNode struct {
	Labels   LabelSet
	Detailed map[string]*DetailedNode
}

// DetailedNode is a detailed field, the leaf level, e.g. "0711".
type DetailedNode struct {
	Labels LabelSet
}

// BroadCodes returns the broad-field codes in ascending order.
func (t *Tree) BroadCodes() []string {
	return sortedKeys(t.Broad)
}

// NarrowCodes returns the narrow-field codes in ascending order.
func (n *BroadNode) NarrowCodes() []string {
	return sortedKeys(n.Narrow)
}

// DetailedCodes returns the detailed-field codes in ascending order.
func (n *NarrowNode) DetailedCodes() []string {
	return sortedKeys(n.Detailed)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
