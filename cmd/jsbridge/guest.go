package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wippyai/js-bridge/adapter"
	"github.com/wippyai/js-bridge/binding"
	"github.com/wippyai/js-bridge/guest"
)

func newGuestCmd(a *app) *cobra.Command {
	var modulePath string

	cmd := &cobra.Command{
		Use:   "guest <type> [literal]",
		Short: "Transfer a wire encoding into WebAssembly guest memory and read it back",
		Example: `  jsbridge guest string "hello guest"
  jsbridge guest --module alloc.wasm long 9007199254740993`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ht, err := adapter.ParseHostType(args[0])
			if err != nil {
				return err
			}
			literal := ""
			if len(args) > 1 {
				literal = args[1]
			}

			wasmBytes := guest.BumpAllocatorModule
			if modulePath != "" {
				if wasmBytes, err = os.ReadFile(modulePath); err != nil {
					return fmt.Errorf("read module: %w", err)
				}
			}

			buf := a.cfg.NewBuffer()
			enc, err := encodeLiteral(a.factory, buf, ht, literal)
			if err != nil {
				return fmt.Errorf("encode %s: %w", ht, err)
			}

			h, err := guest.Start(ctx, wasmBytes, a.cfg.Guest)
			if err != nil {
				return fmt.Errorf("start guest: %w", err)
			}
			defer h.Close(ctx)

			region, err := h.Transfer(ctx, buf)
			if err != nil {
				return fmt.Errorf("transfer: %w", err)
			}
			r, err := h.Load(region)
			if err != nil {
				return fmt.Errorf("load: %w", err)
			}
			raw, err := h.Memory().Read(region.Ptr, region.Len)
			if err != nil {
				return fmt.Errorf("load: %w", err)
			}
			back, err := binding.ReadValue(r, enc.adapter)
			if err != nil {
				return fmt.Errorf("read back: %w", err)
			}

			p := printer{w: cmd.OutOrStdout(), styled: a.styled}
			p.field("host", fmt.Sprintf("%T", enc.host), formatHost(enc.ht, enc.host))
			p.field("region", "", fmt.Sprintf("ptr=%d len=%d", region.Ptr, region.Len))
			p.field("memory", fmt.Sprintf("[%d]", len(raw)), hexBytes(raw))
			p.field("read", fmt.Sprintf("%T", back), formatHost(enc.ht, back))
			return nil
		},
	}
	cmd.Flags().StringVarP(&modulePath, "module", "m", "", "Guest module exporting memory and an allocator (default: built-in bump allocator)")
	return cmd
}
