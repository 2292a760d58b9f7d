// internal/version/version.go
package version

// Version is overridden at release time via -ldflags "-X seqscore/internal/version.Version=...".
var Version = "dev"
