// Package pqueue implements an indexed binary heap: a priority queue that
// also maintains, for every element currently queued, an O(1) lookup from
// element identity to its current priority and heap position.
//
// This is the primitive the ordering engine uses to drive both of its
// selection orders — "most important unmarked node" during coarsening and
// "node most connected to the already-placed set" during refinement — both
// instantiated as max-heaps over a float64 priority.
//
// Complexity: Insert/Update/Extract/Erase are O(log n); Find is O(1).
// Failure semantics: operations on an empty heap, or erase/find for an
// identity not present, return a boolean false — never a panic or error.
package pqueue
