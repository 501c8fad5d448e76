package meridian

const (
	// meridianAPIPingURI is the URI path for the health-check endpoint.
	meridianAPIPingURI = "api/client/v1/ping"
	// meridianAPIAppMetadataURI is the URI path for the application metadata endpoint.
	meridianAPIAppMetadataURI = "api/client/v1/app/metadata"
	// meridianAPIProfileURI is the URI path for the user profile endpoint.
	meridianAPIProfileURI = "api/client/v1/auth/profile"
	// meridianAPIFunctionsCallURI is the URI path for the function-call endpoint.
	meridianAPIFunctionsCallURI = "api/client/v1/functions/call"
	// meridianAPIGraphQLURI is the URI path for the GraphQL endpoint.
	meridianAPIGraphQLURI = "api/client/v1/graphql"
)
