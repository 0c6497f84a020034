package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wippyai/js-bridge/adapter"
	"github.com/wippyai/js-bridge/binding"
	"github.com/wippyai/js-bridge/value"
	"github.com/wippyai/js-bridge/wire"
)

// encoded is one host literal carried through the factory and the wire.
type encoded struct {
	adapter adapter.Adapter
	host    any
	script  value.Value
	wire    []byte
	ht      adapter.HostType
}

// encodeLiteral resolves ht, parses literal and produces both the
// script value and the wire encoding. buf is reset first and holds the
// encoding on return.
func encodeLiteral(f *adapter.Factory, buf *wire.Buffer, ht adapter.HostType, literal string) (encoded, error) {
	a, err := f.Resolve(ht)
	if err != nil {
		return encoded{}, err
	}
	host, err := parseLiteral(a, literal)
	if err != nil {
		return encoded{}, err
	}
	script, err := a.EncodeAny(value.Plain{}, host)
	if err != nil {
		return encoded{}, err
	}

	buf.Reset()
	if err := binding.WriteValue(buf, a, host); err != nil {
		return encoded{}, err
	}
	return encoded{
		adapter: a,
		host:    host,
		script:  script,
		wire:    append([]byte(nil), buf.Bytes()...),
		ht:      a.HostType(),
	}, nil
}

func newEncodeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <type> [literal]",
		Short: "Encode a host literal to a script value and wire bytes",
		Example: `  jsbridge encode int 42
  jsbridge encode char? null
  jsbridge encode long -1
  jsbridge encode -- long -1
  jsbridge --nullable-encoding delegate encode "*string" hello`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ht, err := adapter.ParseHostType(args[0])
			if err != nil {
				return err
			}
			literal := ""
			if len(args) > 1 {
				literal = args[1]
			}

			enc, err := encodeLiteral(a.factory, a.cfg.NewBuffer(), ht, literal)
			if err != nil {
				return fmt.Errorf("encode %s: %w", ht, err)
			}

			p := printer{w: cmd.OutOrStdout(), styled: a.styled}
			p.field("host", fmt.Sprintf("%T", enc.host), formatHost(enc.ht, enc.host))
			p.field("script", enc.script.Kind().String(), enc.script.String())
			p.field("wire", fmt.Sprintf("[%d]", len(enc.wire)), hexBytes(enc.wire))
			return nil
		},
	}
	// Literals such as -1 follow the type and must not parse as flags.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
