package constant

type ContextKey string

// UserIDKey carries the acting operator id extracted from the auth token.
// Movements created within the request are stamped with it.
const UserIDKey ContextKey = "user_id"
