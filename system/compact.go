package system

// compact filters s in place, keeping elements for which keep returns true
// Dropped tail slots are cleared so removed entities can be collected
func compact[T any](s []*T, keep func(*T) bool) []*T {
	live := s[:0]
	for _, v := range s {
		if keep(v) {
			live = append(live, v)
		}
	}
	clear(s[len(live):])
	return live
}
