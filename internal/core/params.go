package core

// Parameter is a single labelled value shown on a status panel.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterSnapshot captures the status values of one frame in display order.
type ParameterSnapshot struct {
	Params []Parameter
}

// Lookup returns the parameter stored under key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, p := range s.Params {
		if p.Key == key {
			return p, true
		}
	}
	return Parameter{}, false
}
