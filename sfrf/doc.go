// Package sfrf computes spectral fault receptive fields: scalar
// condition-monitoring indicators for rolling-element bearings.
//
// A receptive field pairs a narrow "center" band around a characteristic
// defect frequency (and its harmonics and sidebands) with a wider
// "surround" band, in the manner of a retinal center-surround cell. The
// indicator is the difference between the spectral energy admitted by
// the center mask and a weighted share of the energy admitted by the
// surround mask, so broadband energy cancels while energy concentrated
// at the defect frequencies stands out.
//
// The pipeline has three stages:
//
//  1. [GenerateBands] turns geometry, an operating grid, and shape
//     parameters into labeled frequency bands per condition and fault
//     type.
//  2. [SynthesizeGains] evaluates Gaussian (or super-Gaussian) masks for
//     those bands on a caller-supplied frequency axis and combines them
//     into one center and one surround mask per row.
//  3. [ComputeResponse] applies the masks to a spectrum and integrates
//     the contrast into one scalar per signal column.
//
// All three stages are deterministic and purely functional over
// immutable inputs; identical inputs yield bit-identical outputs.
package sfrf
