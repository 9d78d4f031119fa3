package hash

import "github.com/cespare/xxhash/v2"

// pairSep separates the two series names inside the hashed key. A unit
// separator keeps "a|b"+"c" and "a"+"b|c" style collisions out of reach
// for any printable name.
const pairSep = "\x1f"

// PairID computes the 64-bit identity of an (X series, Y series) pair.
// The pair is ordered: PairID("a", "b") != PairID("b", "a").
func PairID(xName, yName string) uint64 {
	return xxhash.Sum64String(xName + pairSep + yName)
}

// ID computes the xxHash64 of a single series name.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}
