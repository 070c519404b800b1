package config

const (
	defaultConfigPath = "~/.config/fitframes/config.toml"
	projectConfigName = "fitframes.toml"
	defaultLogDir     = "~/.local/share/fitframes/logs"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
	defaultSourceEPSG = 4326
	defaultTargetEPSG = 3844
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Projection: Projection{
			SourceEPSG: defaultSourceEPSG,
			TargetEPSG: defaultTargetEPSG,
		},
	}
}
