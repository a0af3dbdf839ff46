// Package samples builds spectral tables resampled onto uniform bins:
// CIE XYZ matching function samples, CIE daylight, blackbody radiators
// and the Smits basis spectra used for RGB to spectrum conversion.
//
// All tables are addressed by a wavelength range [from, to) in
// nanometers and a bin count. Each bin holds the average of the source
// function over the bin. Tables are computed once per (range, count)
// and memoized; every call returns a fresh copy that the caller may
// modify.
package samples
