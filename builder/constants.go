// Package builder: shared method tags and minima.
package builder

// Method tags prefix constructor errors.
const (
	MethodSegments      = "Segments"
	MethodPointGrid     = "PointGrid"
	MethodGrid          = "Grid"
	MethodPolygon       = "Polygon"
	MethodCycle         = "Cycle"
	MethodWheel         = "Wheel"
	MethodPlatonicSolid = "PlatonicSolid"
)

// MinCycleNodes is the smallest polygon: a triangle.
const MinCycleNodes = 3

// MinWheelNodes is a triangle rim plus the hub.
const MinWheelNodes = 4

// MinGridDim is the smallest grid side that still has a cell.
const MinGridDim = 2
