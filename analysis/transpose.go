package analysis

// TransposeColumns splits buf into keySize-byte blocks and returns one
// column per position within a block: column i holds byte i of every block,
// in block order. The last block may be short, so trailing columns may be
// one byte shorter than leading ones.
func TransposeColumns(buf []byte, keySize int) ([][]byte, error) {
	if keySize <= 0 {
		return nil, ErrInvalidKeySize
	}
	n := keySize
	if len(buf) < n {
		n = len(buf)
	}
	cols := make([][]byte, n)
	for i := range cols {
		cols[i] = make([]byte, 0, (len(buf)-i+keySize-1)/keySize)
	}
	for i, c := range buf {
		cols[i%keySize] = append(cols[i%keySize], c)
	}
	return cols, nil
}

// InterleaveColumns reverses TransposeColumns.
func InterleaveColumns(cols [][]byte) []byte {
	var total int
	for _, col := range cols {
		total += len(col)
	}
	res := make([]byte, 0, total)
	for row := 0; len(res) < total; row++ {
		for _, col := range cols {
			if row < len(col) {
				res = append(res, col[row])
			}
		}
	}
	return res
}
