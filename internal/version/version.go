// internal/version/version.go
package version

// Version is the released version string, overridable at build time via
// -ldflags "-X msalign/internal/version.Version=...".
var Version = "1.0.0"
