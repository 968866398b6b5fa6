package cfg

type Cfg struct {
	// Input configuration
	InputFile  string
	ConfigFile string

	// Output configuration
	OutputDir string

	// HTTP server configuration
	Serve        bool
	Port         string
	APIAccessKey string

	// Application metadata
	UserAgent string
	Debug     bool
	Version   string
}
