// Package registry provides a generic thread-safe table of named values.
//
// Keys are ordered so that listings are deterministic. Registration of a key
// that is already present fails rather than silently replacing the entry.
//
// # Basic Usage
//
//	r := registry.New[string, Strategy]()
//	if err := r.Register("bfs", bfs); err != nil {
//	    return err
//	}
//	r.MustRegister("astar", astar)
//
//	s, ok := r.Get("astar")
//
// # Listing
//
// Keys returns a sorted snapshot; Range iterates over a snapshot in key order,
// so the callback may mutate the registry.
//
//	for _, name := range r.Keys() {
//	    fmt.Println(name)
//	}
package registry
