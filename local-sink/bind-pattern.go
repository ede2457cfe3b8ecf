package localsink

import "github.com/RobertWHurst/rtcrelay"

// BindPattern binds handler to every event matching pattern. See
// rtcrelay.NewPattern for the pattern syntax.
func (s *Sink) BindPattern(pattern string, handler Handler) error {
	compiled, err := rtcrelay.NewPattern(pattern)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.patternHandlers = append(s.patternHandlers, patternHandler{pattern: compiled, handler: handler})
	return nil
}

// UnbindPattern removes every handler bound with BindPattern using the same
// pattern string.
func (s *Sink) UnbindPattern(pattern string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.patternHandlers[:0]
	for _, binding := range s.patternHandlers {
		if binding.pattern.String() != pattern {
			kept = append(kept, binding)
		}
	}
	for i := len(kept); i < len(s.patternHandlers); i += 1 {
		s.patternHandlers[i] = patternHandler{}
	}
	s.patternHandlers = kept
}
