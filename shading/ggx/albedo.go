package ggx

import (
	"fmt"
	"sync"

	"github.com/gogpu/pbr/numerical"
)

// albedoData is the generated table for one dimension. albedo is
// row-major with roughness selecting the row.
type albedoData struct {
	albedo  [albedoSize * albedoSize]float64
	average [albedoSize]float64
}

type albedoGrid struct {
	albedo  *numerical.Grid2D
	average *numerical.Grid1D
}

var albedoGrids = sync.OnceValue(func() map[int]albedoGrid {
	grids := make(map[int]albedoGrid, len(albedoTables))
	for n, d := range albedoTables {
		a, err := numerical.NewGrid2D(albedoSize, albedoSize, d.albedo[:])
		if err != nil {
			panic(fmt.Sprintf("ggx: albedo table %d: %v", n, err))
		}
		avg, err := numerical.NewGrid1D(d.average[:])
		if err != nil {
			panic(fmt.Sprintf("ggx: albedo average %d: %v", n, err))
		}
		grids[n] = albedoGrid{albedo: a, average: avg}
	}
	return grids
})

// HasF1Albedo reports whether albedo tables exist for the dimension.
func HasF1Albedo(dimension int) bool {
	_, ok := albedoTables[dimension]
	return ok
}

func albedoGridFor(dimension int) albedoGrid {
	g, ok := albedoGrids()[dimension]
	if !ok {
		panic(fmt.Sprintf("ggx: no albedo table for dimension %d", dimension))
	}
	return g
}

// F1Albedo returns the directional albedo of the GGX term with F0 = 1
// for the given roughness and cosine between the normal and the
// direction. It panics if HasF1Albedo(dimension) is false.
func F1Albedo(dimension int, roughness, cosine float64) float64 {
	return albedoGridFor(dimension).albedo.At(roughness, cosine)
}

// F1AlbedoCosineWeightedAverage returns the cosine-weighted average of
// F1Albedo over the hemisphere. It panics if HasF1Albedo(dimension) is
// false.
func F1AlbedoCosineWeightedAverage(dimension int, roughness float64) float64 {
	return albedoGridFor(dimension).average.At(roughness)
}
