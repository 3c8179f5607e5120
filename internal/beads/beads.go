// Package beads derives positions on the 108-bead ring from a count.
package beads

// RingSize is the number of beads on a full ring (one mala round).
const RingSize = 108

// GlowIndex returns the 0-based ring position of the bead lit for count.
// A count of zero lights no bead.
func GlowIndex(count int) (int, bool) {
	if count <= 0 {
		return 0, false
	}
	return (count - 1) % RingSize, true
}

// Rounds returns the number of completed rings for count.
func Rounds(count int) int {
	if count <= 0 {
		return 0
	}
	return count / RingSize
}
