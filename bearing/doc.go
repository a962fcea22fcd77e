// Package bearing models rolling-element bearing geometry and the
// characteristic defect frequencies derived from it.
//
// A bearing defect excites vibration at a frequency determined by the
// defect location (outer race, inner race, rolling element, or cage),
// the shaft speed, and the bearing geometry. The four kinematic
// frequencies are commonly abbreviated BPFO, BPFI, BSF, and FTF.
//
// The package also provides an operating-condition grid: an ordered
// sequence of (shaft speed, load) pairs a machine is analyzed at. All
// types are immutable value types once constructed.
package bearing
