package config

// Overrides are command-line values, applied after file and environment.
type Overrides struct {
	Debug   bool
	Tracker string
}

// LoadLayered builds the effective configuration: defaults, then the file at
// path, then the dotenv file and environment (via lookup), then o. Problems
// in any layer are returned as warnings; the result is always usable.
func LoadLayered(path, envPath string, lookup func(string) (string, bool), o Overrides) (*Config, []error) {
	var warnings []error
	if envPath != "" {
		if err := LoadDotEnv(envPath); err != nil {
			warnings = append(warnings, err)
		}
	}
	cfg, err := Load(path)
	if err != nil {
		warnings = append(warnings, err)
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		warnings = append(warnings, err)
	}
	if o.Debug {
		cfg.Debug = true
	}
	if o.Tracker != "" {
		cfg.Tracker = o.Tracker
	}
	_ = cfg.Validate()
	return cfg, warnings
}
