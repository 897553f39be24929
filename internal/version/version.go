package version

// Version is overridden at build time with -ldflags "-X fasta/internal/version.Version=...".
var Version = "dev"
