package config

// -----------------------------------------------------------------------------
// Embedded profiles
//
// Key: profile name passed to Profile / the -profile flag
// Val: TOML overlaid on Default()
// -----------------------------------------------------------------------------

const cfgDefault = `
layout = "unshifted"
format = "both"
log_level = "info"
`

const cfgShifted = `
# Base handles are raw type tags; the encoder shifts them.
layout = "shifted"
format = "hex"
`

const cfgQuiet = `
format = "dec"
log_level = "error"
`

var embeddedProfiles = map[string][]byte{
	"default": []byte(cfgDefault),
	"shifted": []byte(cfgShifted),
	"quiet":   []byte(cfgQuiet),
}

// EmbeddedLookup allows overriding how profiles are resolved.
var EmbeddedLookup = func(name string) ([]byte, bool) {
	b, ok := embeddedProfiles[name]
	return b, ok
}
