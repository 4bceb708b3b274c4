// Package cell models the gate library the synthesis engine maps logic onto.
//
// A library file describes the available gates: their name, per-metric cost
// (area, power, timing), and the searcher/applier rewrite patterns the
// engine compiles into rules. Libraries load from JSON or YAML and are
// schema-validated with CUE before use; a library that fails validation
// never reaches the engine.
package cell
