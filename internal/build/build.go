package build

// Overridden at build time with -ldflags "-X ..."
var (
	ShortVersion = "unknown"
	LongVersion  = "unknown"
)
