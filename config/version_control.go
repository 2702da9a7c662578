package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executable
	Main_version = "v0.3.0"

	// Modular tools
	Benchmark     = "v1.0.0"
	Switches      = "v0.3.0"
	Align         = "v0.2.0"
	Sanity_check  = "v1.1.0"
	Chain_reader  = "v0.2.0"
	Super_aligner = "v0.3.0"
)
