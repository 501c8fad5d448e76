package meridian

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/machinebox/graphql"
)

// graphQLClientCell lazily constructs the GraphQL client.
// The endpoint URL depends on the resolved base URL, which is only known
// after the first resolution, so construction cannot happen in NewClient.
type graphQLClientCell struct {
	once   sync.Once
	client *graphql.Client
	err    error
}

// Query runs a GraphQL query against the application's GraphQL endpoint.
// The session bearer token, when present, is attached to the request.
func (c *ClientImpl) Query(ctx context.Context, query string, variables map[string]any) (map[string]any, error) {
	client, err := c.graphQLClient(ctx)
	if err != nil {
		return nil, err
	}

	graphqlRequest := graphql.NewRequest(query)

	for key, value := range variables {
		graphqlRequest.Var(key, value)
	}

	if c.cfg.AuthToken != "" {
		graphqlRequest.Header.Set("Authorization", "Bearer "+c.cfg.AuthToken)
	}

	var graphQLResponse map[string]any
	if err = client.Run(ctx, graphqlRequest, &graphQLResponse); err != nil {
		return nil, err
	}

	return graphQLResponse, nil
}

// graphQLClient returns the lazily constructed GraphQL client.
func (c *ClientImpl) graphQLClient(ctx context.Context) (*graphql.Client, error) {
	c.graphQL.once.Do(func() {
		base, err := c.composer.BaseURL(ctx)
		if err != nil {
			c.graphQL.err = err

			return
		}

		endpoint, err := url.JoinPath(base, meridianAPIGraphQLURI)
		if err != nil {
			c.graphQL.err = fmt.Errorf("failed to build GraphQL endpoint: %w", err)

			return
		}

		c.graphQL.client = graphql.NewClient(endpoint, graphql.WithHTTPClient(c.httpClient))
	})

	if c.graphQL.err != nil {
		return nil, c.graphQL.err
	}

	return c.graphQL.client, nil
}
