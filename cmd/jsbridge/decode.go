package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wippyai/js-bridge/adapter"
	"github.com/wippyai/js-bridge/value"
)

func newDecodeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <type> <kind> [payload]",
		Short: "Decode a script value to a host value",
		Example: `  jsbridge decode int number 42
  jsbridge decode char string x
  jsbridge decode -- long number -7.9
  jsbridge decode "long?" undefined`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ht, err := adapter.ParseHostType(args[0])
			if err != nil {
				return err
			}
			script, err := parseScriptValue(args[1], args[2:])
			if err != nil {
				return err
			}

			ad, err := a.factory.Resolve(ht)
			if err != nil {
				return fmt.Errorf("decode %s: %w", ht, err)
			}
			host, err := ad.DecodeAny(value.Plain{}, script)
			if err != nil {
				return fmt.Errorf("decode %s: %w", ht, err)
			}

			p := printer{w: cmd.OutOrStdout(), styled: a.styled}
			p.field("script", script.Kind().String(), script.String())
			p.field("host", fmt.Sprintf("%T", host), formatHost(ad.HostType(), host))
			return nil
		},
	}
	// Literals such as -1 follow the type and must not parse as flags.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
