package hjson

// pathStack tracks the nested object keys enclosing the current line.
type pathStack struct {
	segments []string
}

func (s *pathStack) push(segment string) {
	s.segments = append(s.segments, segment)
}

// pop removes the innermost segment. Popping an empty stack is a no-op.
func (s *pathStack) pop() {
	if len(s.segments) == 0 {
		return
	}
	s.segments = s.segments[:len(s.segments)-1]
}

func (s *pathStack) depth() int {
	return len(s.segments)
}
