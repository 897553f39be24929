package cli

import "flag"

// NewFlagSet returns a quiet FlagSet with ContinueOnError; callers print
// usage themselves.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}
