package imagestore

// Config holds configuration for the image archive store.
type Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000" env:"STORE_ENDPOINT"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin" env:"STORE_ACCESS_KEY"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin" env:"STORE_SECRET_KEY"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false" env:"STORE_USE_SSL"`
	// Bucket is the name of the bucket runtime images are archived in.
	Bucket string `mapstructure:"bucket" default:"images" env:"STORE_BUCKET"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
