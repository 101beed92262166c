package tetra

// A tetrahedron has 4 verts and 4 faces. The first vert is the apex,
// the other three form the base.

// gridVertOffsets is the ordering of verts inside a grid cell.
var gridVertOffsets = [8]V3i{
	{0, 0, 0},
	{1, 0, 0},
	{1, 1, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 0, 1},
	{1, 1, 1},
	{0, 1, 1},
}

// cellToTets splits a grid cell into 5 tetrahedra by corner index.
var cellToTets = [5][4]int{
	{0, 2, 7, 5},
	{1, 0, 5, 2},
	{3, 2, 7, 0},
	{4, 0, 7, 5},
	{6, 2, 5, 7},
}

// tetEdges lists the six edges of a tetrahedron as pairs of its local
// corner indices.
var tetEdges = [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {2, 3}, {3, 1}}

// vmaskToTriEdges maps a tetrahedron vertex mask to the edges holding
// the face vertices. Although there are 16 possible vert masks, the
// last 8 are the inverse of the first 8 so only 8 are stored. When
// using the inverse, edge2 and edge3 of each face must be swapped as
// well to keep the normals correct. Unused slots are -1.
var vmaskToTriEdges = [8][6]int{
	{-1, -1, -1, -1, -1, -1}, // 0000/1111
	{0, 1, 2, -1, -1, -1},    // 0001/1110
	{0, 5, 3, -1, -1, -1},    // 0010/1101
	{1, 2, 3, 3, 2, 5},       // 0011/1100
	{1, 3, 4, -1, -1, -1},    // 0100/1011
	{4, 2, 3, 3, 2, 0},       // 0101/1010
	{1, 0, 4, 4, 0, 5},       // 0110/1001
	{2, 5, 4, -1, -1, -1},    // 0111/1000
}
