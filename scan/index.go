package scan

// Index returns the index of the first element of s equal to x, or -1,
// using the widest kernel the CPU supports for T.
func Index[T Integer](s []T, x T) int {
	switch Lanes[T]() {
	case 32:
		return FindLanes[[32]T](s, x)
	case 16:
		return FindLanes[[16]T](s, x)
	case 8:
		return FindLanes[[8]T](s, x)
	case 4:
		return FindLanes[[4]T](s, x)
	}
	return Find(s, x)
}

// IndexMin returns the index of the first occurrence of the smallest element
// of s, or -1 if s is empty, using the widest kernel the CPU supports for T.
func IndexMin[T Integer](s []T) int {
	switch Lanes[T]() {
	case 32:
		return ArgminLanes[[32]T](s)
	case 16:
		return ArgminLanes[[16]T](s)
	case 8:
		return ArgminLanes[[8]T](s)
	case 4:
		return ArgminLanes[[4]T](s)
	}
	return Argmin(s)
}
