package version

// At build time, the values below are replaced with the current build
// metadata using the -X linker flag.
var (
	// Version is the main version number that is being run at the moment.
	Version = "0.0.0"

	// GitCommit is the commit the executable was built from.
	GitCommit string

	// BuildDate is the date the executable was built.
	BuildDate string
)
