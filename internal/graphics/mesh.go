package graphics

// FloatsPerVertex is the number of position components per vertex
const FloatsPerVertex = 3

// CubeVertexCount is the number of vertices in CubeVertices
const CubeVertexCount = 36

// CubeVertices is the unit cube [0,1]^3 as 12 triangles, two per face.
// Each face keeps one winding so face culling removes a consistent side.
var CubeVertices = [CubeVertexCount * FloatsPerVertex]float32{
	// z = 0
	0, 0, 0,
	0, 1, 0,
	1, 1, 0,

	0, 0, 0,
	1, 1, 0,
	1, 0, 0,

	// y = 0
	0, 0, 1,
	0, 0, 0,
	1, 0, 0,

	0, 0, 1,
	1, 0, 0,
	1, 0, 1,

	// z = 1
	0, 1, 1,
	0, 0, 1,
	1, 0, 1,

	0, 1, 1,
	1, 0, 1,
	1, 1, 1,

	// y = 1
	0, 1, 0,
	0, 1, 1,
	1, 1, 1,

	0, 1, 0,
	1, 1, 1,
	1, 1, 0,

	// x = 1
	1, 0, 1,
	1, 0, 0,
	1, 1, 0,

	1, 0, 1,
	1, 1, 0,
	1, 1, 1,

	// x = 0
	0, 1, 1,
	0, 1, 0,
	0, 0, 0,

	0, 1, 1,
	0, 0, 0,
	0, 0, 1,
}
