package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/js-bridge/adapter"
	"github.com/wippyai/js-bridge/binding"
)

var witCandidates = []wit.Type{
	wit.Bool{}, wit.S8{}, wit.S16{}, wit.S32{}, wit.S64{},
	wit.F32{}, wit.F64{}, wit.Char{}, wit.String{},
}

// witFor names the WIT type that binds to ht, or "-".
func witFor(ht adapter.HostType) string {
	for _, t := range witCandidates {
		got, ok := binding.HostTypeOf(t)
		if !ok {
			continue
		}
		name := witTypeStr(t)
		if got == ht {
			return name
		}
		if opt, ok := binding.HostTypeOf(&wit.TypeDef{Kind: &wit.Option{Type: t}}); ok && opt == ht {
			return "option<" + name + ">"
		}
	}
	return "-"
}

func witTypeStr(t wit.Type) string {
	switch t.(type) {
	case wit.Bool:
		return "bool"
	case wit.S8:
		return "s8"
	case wit.S16:
		return "s16"
	case wit.S32:
		return "s32"
	case wit.S64:
		return "s64"
	case wit.F32:
		return "f32"
	case wit.F64:
		return "f64"
	case wit.Char:
		return "char"
	case wit.String:
		return "string"
	}
	return fmt.Sprintf("%T", t)
}

// scriptKinds lists the script variants a host type decodes from.
func scriptKinds(ht adapter.HostType) string {
	var k string
	switch ht.Kind {
	case adapter.KindVoid:
		return "null, undefined"
	case adapter.KindBool:
		k = "boolean"
	case adapter.KindChar, adapter.KindString:
		k = "string"
	default:
		k = "number"
	}
	if ht.Boxed {
		return k + ", null, undefined"
	}
	return k
}

func adapterName(a adapter.Adapter) string {
	if n, ok := a.(interface{ Mode() adapter.NullableEncoding }); ok {
		return "nullable (encode " + n.Mode().String() + ")"
	}
	return "standard"
}

func typeRows(f *adapter.Factory) ([][]string, error) {
	var rows [][]string
	for _, ht := range adapter.StandardHostTypes() {
		a, err := f.Resolve(ht)
		if err != nil {
			return nil, err
		}
		rows = append(rows, []string{ht.String(), a.GoType().String(), scriptKinds(ht), witFor(ht), adapterName(a)})
	}
	return rows, nil
}

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List host types and the adapters that serve them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := typeRows(a.factory)
			if err != nil {
				return err
			}

			t := table.New().
				Headers("HOST TYPE", "GO TYPE", "SCRIPT", "WIT", "ADAPTER").
				Rows(rows...)
			if a.styled {
				t = t.Border(lipgloss.RoundedBorder()).
					BorderStyle(helpStyle).
					StyleFunc(func(row, col int) lipgloss.Style {
						switch {
						case row == table.HeaderRow:
							return titleStyle
						case col == 0:
							return typeStyle.Padding(0, 1)
						}
						return lipgloss.NewStyle().Padding(0, 1)
					})
			} else {
				t = t.Border(lipgloss.HiddenBorder()).
					StyleFunc(func(int, int) lipgloss.Style {
						return lipgloss.NewStyle().PaddingRight(2)
					})
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}
