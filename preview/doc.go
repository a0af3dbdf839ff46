// Package preview renders in-memory previews of materials and light
// sources.
//
// Materials draws one shaded sphere per material using the GGX BRDF,
// either with RGB arithmetic or spectrally. TemperatureStrip draws a row
// of blackbody or daylight swatches. Both return an *image.RGBA64
// holding 16-bit sRGB pixels; writing the image to a file is left to the
// caller.
//
// Example:
//
//	img, err := preview.Materials([]preview.Material{
//	    {Name: "gold", Color: color.NewRGB(1, 0.71, 0.29), Metalness: 1, Roughness: 0.3},
//	    {Name: "plastic", Color: color.NewRGB(0.1, 0.3, 0.8), Roughness: 0.5},
//	}, preview.WithSize(128), preview.WithSpectral(true))
package preview
