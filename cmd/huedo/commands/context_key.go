package commands

// contextKey keys values stored in the command context. Pointer
// identity makes each key unique; the name is only for debugging.
type contextKey struct {
	name string
}

// ClientContextKey is used for storing the bridge client in context for
// commands. All command handlers and the main entry point must use this
// same key to ensure the client can be retrieved from the context.
var ClientContextKey = &contextKey{"client"}

// ConfigContextKey is used for storing the loaded config in context for
// the commands that mutate it (group management).
var ConfigContextKey = &contextKey{"config"}
