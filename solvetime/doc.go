// Package solvetime decodes, encodes, formats, validates and orders WCA
// result values.
//
// A result value ("wca_value") is a single integer. Negative values and zero
// are sentinels:
//
//	-1  DNF
//	-2  DNS
//	 0  skipped attempt
//
// Positive values depend on the event shape:
//
//	timed              centiseconds
//	fewest moves       move count (means are stored x100)
//	multi-blindfolded  0DDTTTTTMM (current) or 1SSAATTTTT (old style)
//
// For multi-blindfolded values DD is 99 minus the points, TTTTT the time in
// whole seconds (99999 when unknown), MM the number of missed cubes, SS is 99
// minus the solved count and AA the attempted count.
//
// SolveTime is a value type. The With* methods return a copy with the packed
// value recomputed, so a SolveTime is never observed half-updated.
package solvetime
