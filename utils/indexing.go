package utils

type Index []int

// Intersect returns the entries present in both I and J, both must be ascending.
func (I Index) Intersect(J Index) (r Index) {
	var (
		i, j int
	)
	r = make(Index, 0)
	for i < len(I) && j < len(J) {
		switch {
		case I[i] == J[j]:
			r = append(r, I[i])
			i++
			j++
		case I[i] < J[j]:
			i++
		default:
			j++
		}
	}
	return
}
