package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-h5t/h5t"
)

// row is one tag of a family: its ordinal, name and native value.
type row struct {
	ordinal int
	name    string
	native  int32
}

func rows[T interface {
	~int
	String() string
}, N ~int32](tags []T, toNative func(T) N) []row {
	out := make([]row, len(tags))
	for i, t := range tags {
		out[i] = row{ordinal: int(t), name: t.String(), native: int32(toNative(t))}
	}
	return out
}

var families = map[string]func() []row{
	"class":       func() []row { return rows(h5t.Classes, h5t.Class.Native) },
	"order":       func() []row { return rows(h5t.Orders, h5t.Order.Native) },
	"sign":        func() []row { return rows(h5t.Signs, h5t.Sign.Native) },
	"norm":        func() []row { return rows(h5t.Norms, h5t.Norm.Native) },
	"cset":        func() []row { return rows(h5t.Csets, h5t.Cset.Native) },
	"str":         func() []row { return rows(h5t.Strs, h5t.Str.Native) },
	"pad":         func() []row { return rows(h5t.Pads, h5t.Pad.Native) },
	"cmd":         func() []row { return rows(h5t.Cmds, h5t.Cmd.Native) },
	"bkg":         func() []row { return rows(h5t.Bkgs, h5t.Bkg.Native) },
	"pers":        func() []row { return rows(h5t.Persistences, h5t.Pers.Native) },
	"direction":   func() []row { return rows(h5t.Directions, h5t.Direction.Native) },
	"conv_except": func() []row { return rows(h5t.ConvExcepts, h5t.ConvExcept.Native) },
	"conv_ret":    func() []row { return rows(h5t.ConvRets, h5t.ConvRet.Native) },
}

func familyNames() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var tablesCmd = &cobra.Command{
	Use:   "tables [family...]",
	Short: "Print tag ordinals and native values for each enumeration",
	Long: "Print, for every tag of the named families (all by default), its\n" +
		"ordinal and the native enumerator it maps to.\n\n" +
		"Families: " + strings.Join(familyNames(), ", "),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = familyNames()
		}
		for _, name := range args {
			if _, ok := families[name]; !ok {
				return fmt.Errorf("unknown family %q", name)
			}
		}
		for i, name := range args {
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			printTable(cmd.OutOrStdout(), name, families[name]())
		}
		return nil
	},
}

func printTable(w io.Writer, family string, rs []row) {
	heading := color.New(color.Bold, color.FgCyan)
	heading.Fprintf(w, "%s (%d tags)\n", family, len(rs))
	fmt.Fprintf(w, "  %-8s %-14s %s\n", "ordinal", "tag", "native")
	for _, r := range rs {
		fmt.Fprintf(w, "  %-8d %-14s %d\n", r.ordinal, r.name, r.native)
	}
}
