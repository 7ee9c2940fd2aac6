package handles

import (
	"strconv"

	"halhandles-go/errcode"
	"halhandles-go/x/bitx"
)

// Encode packs index, type and version into a Handle, reporting why the
// parameters are rejected instead of returning the sentinel.
//
// Checks run in order: a negative index fails with errcode.InvalidIndex
// before the type is looked at; a type of 0 or above MaxType fails with
// errcode.InvalidType. The version is not range checked, but a negative
// version can cancel the type bits; when the packed value would equal
// Invalid, Encode fails with errcode.InvalidVersion so that a nil error
// always comes with a usable handle.
func Encode(index int16, t Type, version int16) (Handle, error) {
	switch check(index, t) {
	case errcode.InvalidIndex:
		return Invalid, errcode.New(errcode.InvalidIndex, "encode", strconv.Itoa(int(index)))
	case errcode.InvalidType:
		return Invalid, errcode.New(errcode.InvalidType, "encode", t.String())
	}
	h := pack(index, t, version)
	if h == Invalid {
		return Invalid, errcode.New(errcode.InvalidVersion, "encode", strconv.Itoa(int(version)))
	}
	return h, nil
}

// CreateHandle packs index, handle type and version into a Handle, or
// returns Invalid when index < 0 or handleType is 0 or greater than 127.
// It does not allocate.
func CreateHandle(index int16, handleType uint8, version int16) Handle {
	t := Type(handleType)
	if check(index, t) != errcode.OK {
		return Invalid
	}
	return pack(index, t, version)
}

// check validates index then type, returning a bare Code.
func check(index int16, t Type) errcode.Code {
	if index < 0 {
		return errcode.InvalidIndex
	}
	if !bitx.Between(t, 1, MaxType) {
		return errcode.InvalidType
	}
	return errcode.OK
}

// pack computes ((t << 8) + version) << 16 + index in wrapping int32
// arithmetic.
func pack(index int16, t Type, version int16) Handle {
	h := bitx.Shl32(int32(t), 8)
	h += int32(version)
	h = bitx.Shl32(h, 16)
	h += int32(index)
	return Handle(h)
}
