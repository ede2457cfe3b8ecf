package localsink

// Forward runs the handlers bound to event: exact bindings first, then
// pattern bindings, each in the order they were bound. Events nothing is
// bound to are ignored. Handlers run without the sink's lock held, so they
// may bind and unbind.
func (s *Sink) Forward(event string, args ...any) {
	s.mu.RLock()
	exact := s.handlers[event]
	var matched []Handler
	for _, binding := range s.patternHandlers {
		if binding.pattern.Match(event) {
			matched = append(matched, binding.handler)
		}
	}
	s.mu.RUnlock()

	for _, handler := range exact {
		handler(event, args)
	}
	for _, handler := range matched {
		handler(event, args)
	}
}
