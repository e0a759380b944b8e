package scriptsync

// Version is the release version, overridden at build time with
// -ldflags "-X github.com/aretw0/scriptsync.Version=v1.2.3".
var Version = "dev"
