package config

// DefaultDatabasePath is the default path for the storefront database.
// The task queue database lives alongside it with a "-tasks" suffix.
const DefaultDatabasePath = "./storefront.db"
