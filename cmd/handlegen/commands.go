// cmd/handlegen/commands.go
package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"go.uber.org/zap"

	"halhandles-go/config"
	"halhandles-go/errcode"
	"halhandles-go/handles"
	"halhandles-go/x/bitx"
)

type encoder struct {
	cfg   config.Config
	ports handles.PortFuncs
	out   io.Writer
	log   *zap.Logger
}

func newEncoder(cfg config.Config, out io.Writer, log *zap.Logger) (*encoder, error) {
	ports, err := handles.PortEncoder(cfg.PortLayout())
	if err != nil {
		return nil, err
	}
	return &encoder{cfg: cfg, ports: ports, out: out, log: log}, nil
}

// exec runs one command. args[0] is the command name.
func (e *encoder) exec(args []string) error {
	if len(args) == 0 {
		return errcode.New(errcode.InvalidArgs, "exec", "empty command")
	}
	cmd, rest := strings.ToLower(args[0]), args[1:]
	switch cmd {
	case "handle":
		return e.handle(rest)
	case "port":
		return e.port(rest)
	case "spi":
		return e.spi(rest)
	case "rawport":
		return e.rawPort(rest)
	case "rawspi":
		return e.rawSPI(rest)
	case "versioned":
		return e.versioned(rest)
	case "reset":
		return e.reset(rest)
	case "types":
		return e.types()
	}
	return errcode.New(errcode.UnknownCommand, "exec", cmd)
}

// runBatch executes one command per line and returns the number of lines
// that failed. Blank lines and '#' comments are skipped.
func (e *encoder) runBatch(r io.Reader) int {
	failed := 0
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		args, err := shlex.Split(text)
		if err == nil {
			err = e.exec(args)
		}
		if err != nil {
			failed++
			e.log.Warn("batch line failed", zap.Int("line", line), zap.String("text", text), zap.Error(err))
		}
	}
	if err := sc.Err(); err != nil {
		failed++
		e.log.Error("batch read failed", zap.Error(err))
	}
	return failed
}

func (e *encoder) handle(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return errcode.New(errcode.InvalidArgs, "handle", "want <index> <type> [version]")
	}
	index, err := parseInt16("index", args[0])
	if err != nil {
		return err
	}
	t, err := handles.ParseType(args[1])
	if err != nil {
		return err
	}
	version := int16(e.cfg.Version)
	if len(args) == 3 {
		if version, err = parseInt16("version", args[2]); err != nil {
			return err
		}
	}

	h, err := handles.Encode(index, t, version)
	if err != nil {
		e.log.Debug("handle rejected", zap.Int16("index", index), zap.Stringer("type", t), zap.Int16("version", version), zap.Error(err))
		return err
	}
	e.emit("handle", h)
	return nil
}

func (e *encoder) versioned(args []string) error {
	if len(args) != 2 {
		return errcode.New(errcode.InvalidArgs, "versioned", "want <index> <type>")
	}
	index, err := parseInt16("index", args[0])
	if err != nil {
		return err
	}
	t, err := handles.ParseType(args[1])
	if err != nil {
		return err
	}
	h := handles.CreateVersioned(index, t)
	if !h.Valid() {
		_, err := handles.Encode(index, t, 0)
		return err
	}
	e.emit("versioned", h)
	return nil
}

func (e *encoder) reset(args []string) error {
	if len(args) != 0 {
		return errcode.New(errcode.InvalidArgs, "reset", "takes no arguments")
	}
	handles.DefaultGenerations.ResetAll()
	return nil
}

func (e *encoder) port(args []string) error {
	if len(args) != 2 {
		return errcode.New(errcode.InvalidArgs, "port", "want <channel> <module>")
	}
	channel, err := parseUint8("channel", args[0])
	if err != nil {
		return err
	}
	module, err := parseUint8("module", args[1])
	if err != nil {
		return err
	}
	e.emit("port", e.ports.Port(e.portBase(24), channel, module))
	return nil
}

func (e *encoder) spi(args []string) error {
	if len(args) != 1 {
		return errcode.New(errcode.InvalidArgs, "spi", "want <channel>")
	}
	channel, err := parseUint8("channel", args[0])
	if err != nil {
		return err
	}
	e.emit("spi", e.ports.SPI(e.portBase(16), channel))
	return nil
}

func (e *encoder) rawPort(args []string) error {
	if len(args) != 3 {
		return errcode.New(errcode.InvalidArgs, "rawport", "want <base> <channel> <module>")
	}
	base, err := parseInt32("base", args[0])
	if err != nil {
		return err
	}
	channel, err := parseUint8("channel", args[1])
	if err != nil {
		return err
	}
	module, err := parseUint8("module", args[2])
	if err != nil {
		return err
	}
	e.emit("rawport", e.ports.Port(handles.PortHandle(base), channel, module))
	return nil
}

func (e *encoder) rawSPI(args []string) error {
	if len(args) != 2 {
		return errcode.New(errcode.InvalidArgs, "rawspi", "want <base> <channel>")
	}
	base, err := parseInt32("base", args[0])
	if err != nil {
		return err
	}
	channel, err := parseUint8("channel", args[1])
	if err != nil {
		return err
	}
	e.emit("rawspi", e.ports.SPI(handles.PortHandle(base), channel))
	return nil
}

func (e *encoder) types() error {
	for _, t := range handles.Types() {
		fmt.Fprintf(e.out, "%3d %s\n", uint8(t), t)
	}
	return nil
}

// portBase is the TypePort base the configured layout expects: pre-shifted
// by shift bits for the unshifted layout, the bare tag otherwise.
func (e *encoder) portBase(shift uint) handles.PortHandle {
	if e.ports.Layout == handles.LayoutBaseShifted {
		return handles.PortHandle(handles.TypePort)
	}
	return handles.PortHandle(bitx.Shl32(int32(handles.TypePort), shift))
}

func (e *encoder) emit(kind string, h handles.Handle) {
	switch e.cfg.Format {
	case config.FormatDec:
		fmt.Fprintf(e.out, "%s %d\n", kind, int32(h))
	case config.FormatHex:
		fmt.Fprintf(e.out, "%s 0x%08x\n", kind, uint32(h))
	default:
		b := bitx.Bytes(int32(h))
		fmt.Fprintf(e.out, "%s %d 0x%08x [% x]\n", kind, int32(h), uint32(h), b[:])
	}
}

func parseInt16(name, s string) (int16, error) {
	v, err := strconv.ParseInt(s, 0, 16)
	if err != nil {
		return 0, errcode.Wrap(errcode.InvalidArgs, "parse "+name, err)
	}
	return int16(v), nil
}

func parseInt32(name, s string) (int32, error) {
	v, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, errcode.Wrap(errcode.InvalidArgs, "parse "+name, err)
	}
	return int32(v), nil
}

func parseUint8(name, s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, errcode.Wrap(errcode.InvalidArgs, "parse "+name, err)
	}
	return uint8(v), nil
}
