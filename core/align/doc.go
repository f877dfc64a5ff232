// Package align computes optimal local (overlap) alignments between
// two nucleotide reads with a Smith-Waterman dynamic-programming fill
// and an explicit traceback.
//
// The variant implemented here keeps row 0 and column 0 of the score
// matrix at zero, so an optimal path may begin anywhere without paying
// for skipped leading bases. Cells never go negative; the best
// alignment ends at the first row-major cell holding the global
// maximum and is walked back to the first zero cell.
//
// Inputs are treated as opaque byte strings: an unexpected symbol is
// just a mismatch, never an error. Both time and memory are O(m·n),
// and the full matrix is retained for the traceback, so multi-kilobase
// read pairs cost tens of millions of cells.
package align
