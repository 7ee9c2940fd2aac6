package handles

import (
	"halhandles-go/errcode"
	"halhandles-go/x/bitx"
)

// spiModule is the fixed module value that marks SPI port handles.
const spiModule = 1

func moduleBits(module uint8) int32 {
	return bitx.Field(module, 8, 8)
}

// CreatePortHandle adds module (bits 15..8) and channel (bits 7..0) to
// base. Addition is used, not OR, so bits already set in base carry.
func CreatePortHandle(base PortHandle, channel, module uint8) PortHandle {
	h := int32(base)
	h += moduleBits(module)
	h += int32(channel)
	return PortHandle(h)
}

// CreatePortHandleShifted is CreatePortHandle with base shifted left by 24
// first.
func CreatePortHandleShifted(base PortHandle, channel, module uint8) PortHandle {
	return CreatePortHandle(PortHandle(bitx.Shl32(int32(base), 24)), channel, module)
}

// CreatePortHandleForSPI adds the SPI module marker to base, shifts the
// result left by 8 and adds channel.
func CreatePortHandleForSPI(base PortHandle, channel uint8) PortHandle {
	h := int32(base)
	h += moduleBits(spiModule)
	h = bitx.Shl32(h, 8)
	h += int32(channel)
	return PortHandle(h)
}

// CreatePortHandleForSPIShifted is CreatePortHandleForSPI with base shifted
// left by 16 first. The SPI marker always lands in bits 23..16.
func CreatePortHandleForSPIShifted(base PortHandle, channel uint8) PortHandle {
	return CreatePortHandleForSPI(PortHandle(bitx.Shl32(int32(base), 16)), channel)
}

// PortFuncs is the pair of port encoders for one Layout.
type PortFuncs struct {
	Layout Layout
	Port   func(base PortHandle, channel, module uint8) PortHandle
	SPI    func(base PortHandle, channel uint8) PortHandle
}

// PortEncoder returns the port encoders for l.
func PortEncoder(l Layout) (PortFuncs, error) {
	switch l {
	case LayoutBaseUnshifted:
		return PortFuncs{Layout: l, Port: CreatePortHandle, SPI: CreatePortHandleForSPI}, nil
	case LayoutBaseShifted:
		return PortFuncs{Layout: l, Port: CreatePortHandleShifted, SPI: CreatePortHandleForSPIShifted}, nil
	}
	return PortFuncs{}, errcode.New(errcode.InvalidLayout, "port encoder", l.String())
}

// NewPortHandle builds a TypePort handle for channel on module.
func NewPortHandle(channel, module uint8) PortHandle {
	base := PortHandle(bitx.Shl32(int32(TypePort), 24))
	return CreatePortHandle(base, channel, module)
}

// NewSPIPortHandle builds a TypePort handle for SPI channel.
func NewSPIPortHandle(channel uint8) PortHandle {
	base := PortHandle(bitx.Shl32(int32(TypePort), 16))
	return CreatePortHandleForSPI(base, channel)
}
