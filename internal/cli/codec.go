package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newCodecCommand(st *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codec",
		Short: "Encrypt and decrypt request parameters",
	}

	var copyOut, urlSafe bool
	encrypt := &cobra.Command{
		Use:   "encrypt <text>",
		Short: "Encrypt a value the way request parameters are encrypted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := st.codec()
			if err != nil {
				return err
			}
			out := codec.Encrypt(args[0])
			if urlSafe {
				out = url.QueryEscape(out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)

			if copyOut {
				if err = st.opts.CopyToClipboard(out); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard")
			}
			return nil
		},
	}
	encrypt.Flags().BoolVar(&copyOut, "copy", false, "Copy the result to the clipboard")
	encrypt.Flags().BoolVar(&urlSafe, "url", false, "Percent-encode the result for use in a query string")

	decrypt := &cobra.Command{
		Use:   "decrypt <ciphertext>",
		Short: "Decrypt a Base64 ciphertext",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := st.codec()
			if err != nil {
				return err
			}
			in := args[0]
			if unescaped, err := url.PathUnescape(in); err == nil {
				in = unescaped
			}
			plain, err := codec.Decrypt(in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), plain)
			return nil
		},
	}

	cmd.AddCommand(encrypt, decrypt)
	return cmd
}

func newVersionCommand(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), st.opts.BuildInfo.String())
			return nil
		},
	}
}
