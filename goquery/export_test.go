package goquery

// Compiled reports how many distinct selectors the engine has compiled.
func (e *Engine) Compiled() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.selectors)
}
