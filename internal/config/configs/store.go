package configs

// Store backend names.
const (
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

// Store selects the campaign-store backend. Both backends satisfy the
// same port; the choice only affects wiring in main.
type Store struct {
	// Backend is either "postgres" (default) or "mongo".
	Backend string `env:"BACKEND" envDefault:"postgres"`
}
