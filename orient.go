package tetra

// cellVertOffsets returns the corner ordering for the cell at the
// given coordinate and whether the cell's tetrahedralization is
// parity-inverted. Corner labels flip along every axis whose cell
// coordinate is odd so that neighboring cells pick the same diagonals
// on their shared face. Parity is taken over the absolute value of the
// coordinate, keeping the pattern stable across negative cells.
func cellVertOffsets(cell V3i) (offsets [8]V3i, gridInverse bool) {
	flipX := absInt(cell[0])&1 != 0
	flipY := absInt(cell[1])&1 != 0
	flipZ := absInt(cell[2])&1 != 0
	gridInverse = flipX != flipY != flipZ

	offsets = gridVertOffsets
	for i := range offsets {
		if flipX {
			offsets[i][0] = 1 - offsets[i][0]
		}
		if flipY {
			offsets[i][1] = 1 - offsets[i][1]
		}
		if flipZ {
			offsets[i][2] = 1 - offsets[i][2]
		}
	}
	return offsets, gridInverse
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
