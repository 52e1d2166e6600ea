// Package draftpatch computes & applies structural patches to mutable
// document trees. It's intended to sit underneath a copy-on-write draft layer
// that knows which keys of a container were touched, and turn those touches
// into a compact edit script along with the script that undoes it
//
// Documents are trees built from two container types:
//   Object   (map[string]interface{})
//   *Array   (pointer to []interface{})
// and any scalar value. Arrays are held by pointer so an insertion or removal
// is visible to everyone holding the array. FromJSON converts the generic
// types produced by encoding/json into this model.
//
// GeneratePatches diffs a single container given a marker set describing which
// keys changed. Arrays are diffed by trimming the unchanged prefix & suffix and
// reporting what's left as replacements plus a run of insertions, which keeps
// append, remove & splice edits down to a handful of operations without paying
// for a full edit-distance computation. Objects produce one operation per
// touched key.
//
// ApplyPatches replays operations against a target, cloning every value it
// writes so an operation slice can be applied any number of times.
//
// Diff drives GeneratePatches over two snapshots when no draft layer is around
// to supply marker sets
package draftpatch
