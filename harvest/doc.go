// Package harvest retrieves the ISCED-F concept scheme from the EU
// linked-data endpoint and reconstructs its four-level hierarchy.
//
// The traversal is a sequential recursive descent: scheme, top concept,
// broad fields, narrow fields, detailed fields. Every visited node costs
// exactly one rate-limited fetch; a node excluded by the self-loop rule at
// the detailed level costs none. Any failure anywhere in the descent aborts
// the harvest, so a returned Tree is always complete.
package harvest
