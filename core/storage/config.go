package storage

// Config points the backup feature at an S3-compatible bucket. When no client can be
// built from it, backups are disabled and the rest of the catalog still serves.
type Config struct {
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket holds one JSON document per favorites backup, under backups/.
	Bucket string `mapstructure:"bucket" default:"hero-catalog"`
	Region string `mapstructure:"region" default:""`
	// BackupRetention is how many backups survive a prune, newest first. 0 keeps all.
	BackupRetention int `mapstructure:"backup_retention" default:"10"`
	// TimeoutSeconds bounds dialing and each response header wait.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
