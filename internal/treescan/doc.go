// Package treescan walks a directory tree depth-first and builds an ordered
// forest of entries.
//
// Sibling order is whatever the directory listing yields; nothing is sorted.
// Counts reported for a scan cover only the top level, while the forest itself
// is expanded to full depth. Full-depth totals are available separately through
// Totals, which uses fastwalk for parallel traversal.
package treescan
