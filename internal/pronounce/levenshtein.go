package pronounce

// Levenshtein returns the minimum number of single-rune insertions,
// deletions, and substitutions needed to transform a into b.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	matrix := make([][]int, len(rb)+1)
	for j := range matrix {
		matrix[j] = make([]int, len(ra)+1)
	}
	for i := 0; i <= len(ra); i++ {
		matrix[0][i] = i
	}
	for j := 0; j <= len(rb); j++ {
		matrix[j][0] = j
	}

	for j := 1; j <= len(rb); j++ {
		for i := 1; i <= len(ra); i++ {
			indicator := 1
			if ra[i-1] == rb[j-1] {
				indicator = 0
			}
			matrix[j][i] = min(
				matrix[j][i-1]+1,          // deletion
				matrix[j-1][i]+1,          // insertion
				matrix[j-1][i-1]+indicator, // substitution or match
			)
		}
	}

	return matrix[len(rb)][len(ra)]
}
