// Package metrics computes structural difficulty and population diversity
// scores over finished maze structures.
//
// What
//
//   - DeceptiveTurns: walks a solution path and tallies junctures plus the
//     subset that constitute deceptive turns — junctures whose offshoot
//     opens orthogonal to the travel direction, away from the side the
//     navigator arrived from.
//   - Diversity: the pairwise maze distance — both solution paths are
//     walked in lockstep, one step each regardless of differing lengths
//     (the shorter path holds at its final cell), summing the Manhattan
//     distance between the current cells; the score is that sum divided by
//     the number of lockstep steps.
//   - BatchDeception / BatchDiversity: population-wide evaluation with
//     bounded parallelism. Each maze touches only its own grid, so workers
//     never contend; results land in preallocated, index-stable slices and
//     each batch carries a run identifier for the downstream writer.
//
// Why
//
//   - Deceptive-turn counts quantify maze difficulty for the evolutionary
//     objective; diversity scores keep the evolving maze population spread
//     out. Both are handed off as plain value tuples (genome id, score) to
//     the external persistence layer.
//
// Degenerate inputs
//
//   - An empty or single-cell path yields zero junctures and zero deceptive
//     turns; diversity of two empty paths is 0 — denominators are guarded,
//     never divided by zero.
//   - Diversity is reflexive (d(A,A)=0) and symmetric (d(A,B)=d(B,A)).
//
// Complexity
//
//   - DeceptiveTurns: O(len(path)).
//   - Diversity: O(max(len(a), len(b))).
//   - Batches: O(population × W×H) work, bounded by Parallelism workers.
package metrics
