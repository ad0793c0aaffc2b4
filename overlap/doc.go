// Package overlap implements the "overlapping model" front end of Wave
// Function Collapse: it learns N×N patterns and their adjacency from a small
// sample bitmap, and renders a solved (or partially solved) wfc.Model back
// into an image.
//
// What
//
//   - FromImage palette-indexes a bitmap into a Sample (≤ 256 colours, in
//     first-seen raster order).
//   - Extract slides an N×N window over the sample (wrapping when
//     PeriodicInput), adds the window's dihedral variants (up to Symmetry of
//     them), de-duplicates and counts them. Weight = occurrence count.
//   - Set.Compatibility allows q next to p in direction d iff the two
//     patterns agree on their overlap when q is shifted by d's offset.
//   - Render maps the model back to pixels: observed patterns when solved,
//     otherwise the average colour of every live pattern covering a pixel.
//
// Dihedral order
//
//	0: identity   1: reflect(0)   2: rotate(0)   3: reflect(2)
//	4: rotate(2)  5: reflect(4)   6: rotate(4)   7: reflect(6)
//
//	Symmetry=1 keeps the window as is, 2 adds its mirror, 8 adds all of them.
//
// Complexity (S sample pixels, P patterns, N pattern side)
//
//   - Extract:       O(S·8·N²) expected.
//   - Compatibility: O(4·P²·N²).
//   - Render:        O(W·H·N²·P) when unsolved, O(W·H) when solved.
//
// Usage
//
//	s, err := overlap.FromImage(img)
//	set, err := overlap.Extract(s, overlap.DefaultOptions())
//	m, err := set.NewModel(wfc.WithSize(48, 48), wfc.WithPeriodic(true))
//	if m.Run(seed, wfc.Unbounded) == wfc.Success {
//	    out := overlap.Render(set, m)
//	}
package overlap
