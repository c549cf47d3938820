package config

// StorageConfig locates the blob store.
type StorageConfig struct {
	// RootDir is the filesystem root of the blob store.
	RootDir string

	// Bucket is the logical bucket name reported in upload notifications.
	Bucket string
}

// LoadStorageConfig reads storage settings from the environment.
func LoadStorageConfig() *StorageConfig {
	return &StorageConfig{
		RootDir: getEnvOrDefault("STORAGE_ROOT", "./data/blobs"),
		Bucket:  getEnvOrDefault("STORAGE_BUCKET", "plans"),
	}
}
