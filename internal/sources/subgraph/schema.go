package subgraph

import "domainsight/internal/domain"

// GraphQL documents sent to the indexing service. The shapes are
// fixed, so no query builder is involved.
const (
	queryDomain = `
      query GetDomain($name: String!) {
        name(name: $name) {
          name
          tld
          expiry
          owner
          activities {
            type
            timestamp
          }
        }
      }
    `

	queryDomains = `
      query GetDomains($first: Int!) {
        names(first: $first) {
          name
          tld
          expiry
          owner
          activities {
            type
            timestamp
          }
        }
      }
    `
)

// gqlRequest is the POST body of a GraphQL call.
type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// gqlError is a single error entry in a GraphQL response.
type gqlError struct {
	Message string `json:"message"`
}

// domainResponse is the envelope of the single-domain query.
type domainResponse struct {
	Data struct {
		Name *domain.Record `json:"name"`
	} `json:"data"`
	Errors []gqlError `json:"errors,omitempty"`
}

// domainsResponse is the envelope of the batch query.
type domainsResponse struct {
	Data struct {
		Names []domain.Record `json:"names"`
	} `json:"data"`
	Errors []gqlError `json:"errors,omitempty"`
}
