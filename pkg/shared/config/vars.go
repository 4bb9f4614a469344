package config

// Defaults applied by ValidateConfig when the corresponding key is unset.
const (
	DefaultWorkers            = 4
	DefaultBaseline           = 100
	DefaultPassThreshold      = 70
	DefaultMaxFileSizeBytes   = 1 << 20
	DefaultExpectedEncoding   = "utf-8"
	DefaultNamingPattern      = `^[a-zA-Z0-9._-]+$`
	DefaultMaxFindingsPerFile = 25
)

// GetFqcheckHome returns the resolved application home folder.
func GetFqcheckHome(cfg *Config) string {
	return cfg.Fqcheck.HomeFolder
}

// GetResultsHome returns the folder where run report artifacts are written.
func GetResultsHome(cfg *Config) string {
	return cfg.Fqcheck.ResultsFolder
}

// GetCacheHome returns the folder holding the persistent result cache.
func GetCacheHome(cfg *Config) string {
	return cfg.Fqcheck.CacheFolder
}
