package handles

import (
	"strconv"
	"strings"

	"halhandles-go/errcode"
)

// Handle is an opaque 32-bit HAL handle.
type Handle int32

// PortHandle is a Handle produced by port composition.
type PortHandle = Handle

// Invalid is the reserved "invalid handle" sentinel.
const Invalid Handle = 0

// Valid reports whether h is not the Invalid sentinel.
func (h Handle) Valid() bool { return h != Invalid }

// Type is the 8-bit handle type tag. Any value may be passed to the
// encoder; only 1..127 produce a handle.
type Type uint8

const (
	TypeUndefined Type = iota
	TypeDIO
	TypePort
	TypeNotifier
	TypeInterrupt
	TypeAnalogOutput
	TypeAnalogInput
	TypeAnalogTrigger
	TypeRelay
	TypePWM
	TypeDigitalPWM
	TypeCounter
	TypeFPGAEncoder
	TypeEncoder
	TypeCompressor
	TypeSolenoid
	TypeAnalogGyro
	TypeVendor
	TypeSimulationJni
	TypeCAN
	TypeSerialPort
	TypeDutyCycle
	TypeDMA
)

// MaxType is the largest tag accepted by CreateHandle.
const MaxType Type = 127

var typeNames = [...]string{
	TypeUndefined:     "undefined",
	TypeDIO:           "dio",
	TypePort:          "port",
	TypeNotifier:      "notifier",
	TypeInterrupt:     "interrupt",
	TypeAnalogOutput:  "analog_output",
	TypeAnalogInput:   "analog_input",
	TypeAnalogTrigger: "analog_trigger",
	TypeRelay:         "relay",
	TypePWM:           "pwm",
	TypeDigitalPWM:    "digital_pwm",
	TypeCounter:       "counter",
	TypeFPGAEncoder:   "fpga_encoder",
	TypeEncoder:       "encoder",
	TypeCompressor:    "compressor",
	TypeSolenoid:      "solenoid",
	TypeAnalogGyro:    "analog_gyro",
	TypeVendor:        "vendor",
	TypeSimulationJni: "simulation_jni",
	TypeCAN:           "can",
	TypeSerialPort:    "serial_port",
	TypeDutyCycle:     "duty_cycle",
	TypeDMA:           "dma",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "type(" + strconv.Itoa(int(t)) + ")"
}

// Types returns the named handle types in tag order.
func Types() []Type {
	out := make([]Type, 0, len(typeNames))
	for i := range typeNames {
		out = append(out, Type(i))
	}
	return out
}

// ParseType accepts a type name ("dio", "analog_input", case-insensitive,
// '-' treated as '_') or a decimal tag 0..255.
func ParseType(s string) (Type, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for i, n := range typeNames {
		if n == name {
			return Type(i), nil
		}
	}
	n, err := strconv.ParseUint(name, 10, 8)
	if err != nil {
		return 0, errcode.New(errcode.InvalidType, "parse type", strconv.Quote(s))
	}
	return Type(n), nil
}

// Layout selects one of the two port handle compositions.
type Layout uint8

const (
	// LayoutBaseUnshifted adds module/channel to a pre-shifted base.
	LayoutBaseUnshifted Layout = iota
	// LayoutBaseShifted shifts the base into the top byte(s) first.
	LayoutBaseShifted
)

// CanonicalLayout is the layout used by NewPortHandle/NewSPIPortHandle and
// exported over the C ABI without a suffix.
const CanonicalLayout = LayoutBaseUnshifted

func (l Layout) String() string {
	switch l {
	case LayoutBaseUnshifted:
		return "unshifted"
	case LayoutBaseShifted:
		return "shifted"
	default:
		return "layout(" + strconv.Itoa(int(l)) + ")"
	}
}

// ParseLayout maps "unshifted"/"a" and "shifted"/"b" to a Layout.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unshifted", "a", "":
		return LayoutBaseUnshifted, nil
	case "shifted", "b":
		return LayoutBaseShifted, nil
	}
	return 0, errcode.New(errcode.InvalidLayout, "parse layout", strconv.Quote(s))
}
