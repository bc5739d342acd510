// Package export builds and writes the node/link JSON document used for
// visualizing one movie's neighborhood.
package export

import (
	"strings"

	"github.com/moviegraph/moviegraph/internal/movie"
)

// Node is one labeled entity in the exported graph. Movie nodes may carry
// released/tagline, person nodes may carry role; absent values are omitted.
type Node struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Released int    `json:"released,omitempty"`
	Tagline  string `json:"tagline,omitempty"`
	Role     string `json:"role,omitempty"`
}

// Link is one directed, typed relationship between two node ids.
type Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Type   string `json:"type"`
}

// GraphDocument is the export artifact. Every link endpoint references an
// id present in Nodes.
type GraphDocument struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// MovieID derives the deterministic node id for a movie title.
func MovieID(title string) string {
	return "movie_" + underscored(title)
}

// PersonID derives the deterministic node id for a person name.
func PersonID(name string) string {
	return "person_" + underscored(name)
}

func underscored(s string) string {
	return strings.ReplaceAll(s, " ", "_")
}

// BuildGraph folds a detail record into a graph document. The movie node
// comes first, then person nodes in credit order. A person appearing under
// several relationship types keeps one node whose role attribute is the
// last one processed; every relationship still produces its own link.
func BuildGraph(rec *movie.DetailRecord) GraphDocument {
	movieID := MovieID(rec.Movie.Title)

	doc := GraphDocument{
		Nodes: []Node{{
			ID:       movieID,
			Label:    rec.Movie.Title,
			Type:     "Movie",
			Released: rec.Movie.Released,
			Tagline:  rec.Movie.Tagline,
		}},
		Links: make([]Link, 0, len(rec.Credits)),
	}

	seen := map[string]int{movieID: 0}
	for _, c := range rec.Credits {
		personID := PersonID(c.Person.Name)
		if idx, ok := seen[personID]; ok {
			doc.Nodes[idx].Role = c.Person.Role
		} else {
			seen[personID] = len(doc.Nodes)
			doc.Nodes = append(doc.Nodes, Node{
				ID:    personID,
				Label: c.Person.Name,
				Type:  "Person",
				Role:  c.Person.Role,
			})
		}
		doc.Links = append(doc.Links, Link{
			Source: personID,
			Target: movieID,
			Type:   c.Relationship.Type,
		})
	}

	return doc
}
