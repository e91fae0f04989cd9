package http

const (
	LogPrefixDispatch = "internal.intent.delivery.http.Dispatch"

	// LegacyDispatchPath is the path the gateway has always been reachable on.
	LegacyDispatchPath = "/mcp_gateway"
)
