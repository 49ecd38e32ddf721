// Package core implements the gradebook merge engine: parsing two
// tabular exports (a Brightspace-style gradebook and a Cisco Networking
// Academy-style provider export), joining student records on normalized
// email, and copying the fixed checkpoint-exam score columns from the
// provider export into the gradebook.
//
// This package has no UI dependencies and can be used by any frontend.
//
// The pipeline runs strictly left to right:
//
//	raw bytes -> ParseTable -> Normalize -> Join -> ApplyScores -> EncodeCSV
//
// Merge wires the whole pipeline together and is the only entry point
// callers normally need. Each call operates on its own data structures,
// so concurrent merges never interfere.
package core
