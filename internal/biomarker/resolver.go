package biomarker

import "sort"

// ID is a canonical biomarker identifier used by a scoring formula.
// Many raw lab-report names alias to one ID; the mapping is fixed at
// startup and never mutated.
type ID string

// Age is the reserved ID for chronological age. Age is derived from the
// birthdate at snapshot time, never taken from raw readings.
const Age ID = "age"

// Resolver maps free-text biomarker names to canonical formula IDs.
// SSOT: alias tables live in this package and are read-only after New.
type Resolver struct {
	name    string
	aliases map[string]ID
}

// NewResolver creates a resolver from an alias table. The table is
// copied so callers cannot mutate it afterwards.
func NewResolver(name string, aliases map[string]ID) *Resolver {
	table := make(map[string]ID, len(aliases))
	for alias, id := range aliases {
		table[alias] = id
	}

	return &Resolver{name: name, aliases: table}
}

// Name returns the formula name this resolver belongs to.
func (r *Resolver) Name() string {
	return r.name
}

// Resolve maps a raw biomarker name to its canonical ID. The match is
// exact and case-sensitive; callers trim whitespace. An unknown name is
// not an error: raw lab exports routinely carry markers no formula uses,
// so callers skip the reading and move on.
func (r *Resolver) Resolve(rawName string) (ID, bool) {
	id, ok := r.aliases[rawName]
	return id, ok
}

// Aliases returns the alias table inverted: canonical ID to its sorted
// raw names. Used for diagnostics and the markers API.
func (r *Resolver) Aliases() map[ID][]string {
	inverted := make(map[ID][]string)
	for alias, id := range r.aliases {
		inverted[id] = append(inverted[id], alias)
	}

	for id := range inverted {
		sort.Strings(inverted[id])
	}

	return inverted
}

// IDs returns all canonical IDs known to this resolver, sorted.
func (r *Resolver) IDs() []ID {
	seen := make(map[ID]bool)
	for _, id := range r.aliases {
		seen[id] = true
	}

	ids := make([]ID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
