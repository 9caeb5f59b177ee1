package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-h5t/h5t"
	"github.com/robert-malhotra/go-h5t/internal/dtmsg"
	"github.com/robert-malhotra/go-h5t/native"
)

var predefinedName string

// predefined holds encodings for the common standard types.
var predefined = map[string]func() (*dtmsg.Message, error){
	"std_i8le":   integer(1, native.OrderLE, true),
	"std_i16le":  integer(2, native.OrderLE, true),
	"std_i32le":  integer(4, native.OrderLE, true),
	"std_i64le":  integer(8, native.OrderLE, true),
	"std_u8le":   integer(1, native.OrderLE, false),
	"std_u16le":  integer(2, native.OrderLE, false),
	"std_u32le":  integer(4, native.OrderLE, false),
	"std_u64le":  integer(8, native.OrderLE, false),
	"std_i32be":  integer(4, native.OrderBE, true),
	"std_i64be":  integer(8, native.OrderBE, true),
	"std_u32be":  integer(4, native.OrderBE, false),
	"std_u64be":  integer(8, native.OrderBE, false),
	"ieee_f16le": float(2, native.OrderLE),
	"ieee_f32le": float(4, native.OrderLE),
	"ieee_f64le": float(8, native.OrderLE),
	"ieee_f32be": float(4, native.OrderBE),
	"ieee_f64be": float(8, native.OrderBE),
	"c_s1":       str(dtmsg.String(1, native.StrNullTerm, native.CsetASCII)),
	"fortran_s1": str(dtmsg.String(1, native.StrSpacePad, native.CsetASCII)),
	"vlen_utf8":  str(dtmsg.VarString(native.StrNullTerm, native.CsetUTF8)),
	"vlen_ascii": str(dtmsg.VarString(native.StrNullTerm, native.CsetASCII)),
}

func integer(size uint32, order native.Order, signed bool) func() (*dtmsg.Message, error) {
	return func() (*dtmsg.Message, error) { return dtmsg.Integer(size, order, signed), nil }
}

func float(size uint32, order native.Order) func() (*dtmsg.Message, error) {
	return func() (*dtmsg.Message, error) { return dtmsg.Float(size, order) }
}

func str(m *dtmsg.Message) func() (*dtmsg.Message, error) {
	return func() (*dtmsg.Message, error) { return m.Clone(), nil }
}

func predefinedNames() []string {
	names := make([]string, 0, len(predefined))
	for name := range predefined {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var describeCmd = &cobra.Command{
	Use:   "describe [hex-encoded datatype message]",
	Short: "Decode a datatype message and print its properties",
	Long: "Decode a datatype message given in hex, or a predefined type named with\n" +
		"--predefined, and print the tag of every property that applies to it.\n\n" +
		"Predefined types: " + strings.Join(predefinedNames(), ", "),
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := messageBytes(args)
		if err != nil {
			return err
		}

		dt, err := h5t.Decode(buf, h5t.WithLibrary(h5t.NewLibrary()))
		if err != nil {
			return err
		}
		defer dt.Close()

		return describe(cmd.OutOrStdout(), dt)
	},
}

func init() {
	describeCmd.Flags().StringVarP(&predefinedName, "predefined", "p", "", "describe a predefined type instead of a hex message")
}

func messageBytes(args []string) ([]byte, error) {
	switch {
	case predefinedName != "" && len(args) > 0:
		return nil, errors.New("give either a hex message or --predefined, not both")
	case predefinedName != "":
		build, ok := predefined[predefinedName]
		if !ok {
			return nil, fmt.Errorf("unknown predefined type %q", predefinedName)
		}
		m, err := build()
		if err != nil {
			return nil, err
		}
		return m.Encode(), nil
	case len(args) == 1:
		buf, err := hex.DecodeString(strings.ReplaceAll(args[0], " ", ""))
		if err != nil {
			return nil, fmt.Errorf("parsing hex message: %w", err)
		}
		return buf, nil
	default:
		return nil, errors.New("no datatype message given")
	}
}

func describe(w io.Writer, dt *h5t.Datatype) error {
	class, err := dt.Class()
	if err != nil {
		return err
	}
	size, err := dt.Size()
	if err != nil {
		return err
	}

	color.New(color.Bold, color.FgCyan).Fprintf(w, "%s\n", dt)
	fmt.Fprintf(w, "  %-10s %s\n", "class", class)
	fmt.Fprintf(w, "  %-10s %d\n", "size", size)

	props := []struct {
		name string
		get  func() (fmt.Stringer, error)
	}{
		{"order", func() (fmt.Stringer, error) { return dt.Order() }},
		{"sign", func() (fmt.Stringer, error) { return dt.Sign() }},
		{"norm", func() (fmt.Stringer, error) { return dt.Norm() }},
		{"cset", func() (fmt.Stringer, error) { return dt.Cset() }},
		{"strpad", func() (fmt.Stringer, error) { return dt.StrPad() }},
	}
	for _, p := range props {
		v, err := p.get()
		switch {
		case errors.Is(err, h5t.ErrNotApplicable):
			continue
		case err != nil:
			fmt.Fprintf(w, "  %-10s %s (%v)\n", p.name, v, err)
		default:
			fmt.Fprintf(w, "  %-10s %s\n", p.name, v)
		}
	}

	if lsb, msb, err := dt.Pad(); err == nil {
		fmt.Fprintf(w, "  %-10s lsb=%s msb=%s\n", "pad", lsb, msb)
	}
	return nil
}
