package configs

// Mongo holds configuration for the MongoDB campaign store. Only used
// when STORE_BACKEND=mongo.
type Mongo struct {
	// URI is a MongoDB connection string.
	URI string `env:"URI" envDefault:"mongodb://localhost:27017"`
	// Database is the database holding the campaigns collection.
	Database string `env:"DATABASE" envDefault:"atlas_ads"`
}
