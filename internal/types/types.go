package types

// ContextKey is the type used for values stored on a CLI context.
type ContextKey string

const (
	// DBKey holds the *sql.DB connection opened by the seed tool.
	DBKey ContextKey = "db"
)
