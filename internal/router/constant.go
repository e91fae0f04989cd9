package router

// Log prefixes
const (
	LogPrefixDispatch = "internal.router.Dispatch"
)

// Error messages
const (
	ErrMsgHandlerPanic = "An unexpected error occurred: %v"
	ErrMsgHandlerFault = "An unexpected error occurred: %s"
)
