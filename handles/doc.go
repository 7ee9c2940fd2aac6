// Package handles encodes the opaque 32-bit handles a HAL hands out for
// ports, modules and resource instances.
//
// A Handle carries no type information of its own; the meaning of each bit
// is positional. Generic resource handles are laid out as
//
//	bits 31..24  handle type (1..127)
//	bits 23..16  version
//	bits 15..0   index (0..32767)
//
// and port handles, built by NewPortHandle and NewSPIPortHandle, as
//
//	bits 31..24  TypePort
//	bits 23..16  SPI marker (1 for SPI ports, 0 otherwise)
//	bits 15..8   module
//	bits  7..0   channel
//
// The zero value is the reserved Invalid handle. CreateHandle returns it for
// out-of-range parameters and never produces it otherwise. The port
// functions perform no validation and never fail.
//
// # Port layouts
//
// Two incompatible compositions of port handles exist. LayoutBaseUnshifted
// adds module and channel to a base handle the caller has already shifted
// into place; LayoutBaseShifted shifts the base itself. The unshifted layout
// is canonical and is the one exported over the C ABI by default. Values from
// one layout must not be interpreted with the other's base.
//
// All encoders are pure and safe for concurrent use. Arithmetic is fixed-width
// 32-bit with two's-complement wraparound; no input panics.
package handles
