// Package cie approximates the CIE color matching functions.
//
// The 1931 2° observer uses the multi-lobe piecewise Gaussian fit of
// Wyman, Sloan and Shirley, "Simple Analytic Approximations to the CIE XYZ
// Color Matching Functions" (JCGT 2013). The 1964 10° observer uses the
// single-lobe log-normal and Gaussian fits from the same paper.
//
// Every function also has a closed-form band integral built on math.Erf,
// which is what the spectral sampling tables are computed from.
package cie
