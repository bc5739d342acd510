package movie

// Relationship types recognized in the Movies dataset.
const (
	RelActedIn  = "ACTED_IN"
	RelDirected = "DIRECTED"
)

// MovieRef identifies one movie. Released is 0 when the store carries no
// release year; Tagline may be empty.
type MovieRef struct {
	Title    string `json:"title"`
	Released int    `json:"released,omitempty"`
	Tagline  string `json:"tagline,omitempty"`
}

// PersonRef is a person as seen from one movie. Role is the display label
// derived from the relationship type, not an intrinsic person attribute.
type PersonRef struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Relationship is a typed edge from a person to a movie. Roles carries
// character names and is present only on acting edges.
type Relationship struct {
	Type  string   `json:"type"`
	Roles []string `json:"roles,omitempty"`
}

// Credit pairs a person with the relationship connecting them to the movie.
type Credit struct {
	Person       PersonRef    `json:"person"`
	Relationship Relationship `json:"relationship"`
}

// DetailRecord aggregates one movie with its full credit list. At most one
// record is live per session; each detail fetch replaces the previous one.
type DetailRecord struct {
	Movie   MovieRef `json:"movie"`
	Credits []Credit `json:"credits"`
}

// RoleLabel maps a relationship type to the person role shown to users.
func RoleLabel(relType string) string {
	switch relType {
	case RelDirected:
		return "Director"
	case RelActedIn:
		return "Actor"
	default:
		return relType
	}
}

// Directors lists the names of everyone with a DIRECTED credit, in credit order.
func (d *DetailRecord) Directors() []string {
	return d.namesByType(RelDirected)
}

// Actors lists the names of everyone with an ACTED_IN credit, in credit order.
func (d *DetailRecord) Actors() []string {
	return d.namesByType(RelActedIn)
}

func (d *DetailRecord) namesByType(relType string) []string {
	var names []string
	for _, c := range d.Credits {
		if c.Relationship.Type == relType {
			names = append(names, c.Person.Name)
		}
	}
	return names
}
