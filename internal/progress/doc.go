package progress

// Package progress turns raw byte counts from the download engine into the
// two-level percentages shown in the interface: a per-track bar that resets
// for every track and a playlist bar that only ever moves forward.
