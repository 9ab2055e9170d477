// Package adapt provides the single-sequence adaptors: element-wise mapping,
// index pairing, bounded and unbounded generation, pseudo-random sequences
// and exclusion filtering. Each adaptor consumes and produces views whose
// cursors conform to the cursor capability contract, so they compose freely
// with the cartesian-product and join cursors.
package adapt
