package version

// Version is the CLI version string, overridable at link time.
var Version = "0.1.0"
