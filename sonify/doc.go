// Package sonify turns a univariate numeric time series into a musical
// rendering.
//
// The pipeline extracts a fundamental frequency from the series' spectrum,
// normalizes its period-to-period changes into a bounded modulation signal,
// synthesizes per-sample frequencies against a fixed harmonic-ratio table,
// quantizes them to musical pitch names, and renders one fixed-duration
// tone per frequency into a single mono waveform.
//
// All stages are pure functions over immutable inputs; independent pipeline
// invocations may run concurrently without shared state.
package sonify
