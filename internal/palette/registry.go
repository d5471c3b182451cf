package palette

import "sort"

// registry: name -> strategy table, fixed at startup. Never mutated
// after init, so reads need no locking.
var registry = map[string]Strategy{
	"golden_ratio": GoldenRatio{},
	"equidistant":  Equidistant{},
	"fibonacci":    Fibonacci{},
	"color_wheel":  ColorWheel{},
	"alternating":  Alternating{},
}

// Names: sorted list of registered algorithm names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup: resolves an algorithm name, reporting whether it is registered.
func Lookup(name string) (Strategy, bool) {
	s, ok := registry[name]
	return s, ok
}
