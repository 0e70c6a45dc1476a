package dbpedia

import (
	"fmt"
	"strings"
)

// filmQueryTemplate restricts the search to dbo:Film with a
// case-insensitive substring match on the English label. The English
// abstract is joined when present. Result set capped at 10.
const filmQueryTemplate = `PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>
PREFIX dbo: <http://dbpedia.org/ontology/>

SELECT DISTINCT ?subject ?label ?abstract
WHERE {
    ?subject rdf:type dbo:Film .
    ?subject rdfs:label ?label .
    FILTER (lang(?label) = "en")
    FILTER (contains(lcase(?label), lcase("%s")))
    OPTIONAL {
        ?subject rdfs:comment ?abstract .
        FILTER (lang(?abstract) = "en")
    }
}
LIMIT 10`

// BuildFilmQuery embeds the trimmed term into the fixed template.
// Exported so tests can assert the escaping boundary directly.
func BuildFilmQuery(term string) string {
	return fmt.Sprintf(filmQueryTemplate, escapeTerm(strings.TrimSpace(term)))
}

// escapeTerm makes term safe inside a double-quoted SPARQL string
// literal. Backslashes first, then quotes; newlines and tabs are
// replaced so a pasted multi-line term cannot break out of the literal.
func escapeTerm(term string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", " ",
		"\r", " ",
		"\t", " ",
	)
	return r.Replace(term)
}
