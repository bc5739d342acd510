package driver

const (
	PingQuery = `RETURN 1`

	// SearchMoviesQuery matches movie titles by case-insensitive substring.
	// Result order follows the source dataset convention: newest first.
	SearchMoviesQuery = `
		MATCH (m:Movie)
		WHERE toLower(m.title) CONTAINS toLower($term)
		RETURN m.title AS title, m.released AS released, m.tagline AS tagline
		ORDER BY m.released DESC
	`

	// MovieDetailQuery pulls one movie with every ACTED_IN/DIRECTED credit.
	// The collect produces one map per relationship; a movie with no credits
	// yields a single NULL entry which the parser discards.
	MovieDetailQuery = `
		MATCH (m:Movie {title: $title})
		OPTIONAL MATCH (p:Person)-[r:ACTED_IN|DIRECTED]->(m)
		WITH m, p, r
		ORDER BY type(r), p.name
		RETURN m.title AS title,
		       m.released AS released,
		       m.tagline AS tagline,
		       collect(CASE WHEN p IS NULL THEN NULL
		               ELSE {name: p.name, type: type(r), roles: r.roles} END) AS credits
	`
)
