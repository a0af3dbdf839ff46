// Package ggx implements the GGX microfacet BRDF in N-dimensional space
// combined with a multiple-bounce term and a Disney-style diffuse term.
//
// Vectors are numerical.Vector values of the BRDF dimension. Normals,
// view and light directions must be unit vectors pointing away from the
// surface. The invariant is documented, not checked.
//
// References:
//
//	Eric Heitz. Sampling the GGX Distribution of Visible Normals.
//	Journal of Computer Graphics Techniques (JCGT), vol. 7, no. 4, 2018.
//
//	Tomas Akenine-Möller, Eric Haines, Naty Hoffman, Angelo Pesce,
//	Michal Iwanicki, Sébastien Hillaire. Real-Time Rendering,
//	Fourth Edition. CRC Press, 2018. Sections 9.5 to 9.9.
//
//	Matt Pharr, Wenzel Jakob, Greg Humphreys. Physically Based
//	Rendering, Third Edition. Elsevier, 2017. Section 14.1.2.
package ggx
