package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ristretto-elgamal/elgamal"
)

const flagBytes = "bytes"

func newMessageCmd(ctx *cliContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "message",
		Short: "Encode a message as a group element",
		Long: `Encode a message as a group element.

Without flags a random element is drawn. --hash-input maps the digest of the
input to an element, --seed draws a reproducible element and --bytes wraps a
32-byte encoding verbatim and reports whether it is a valid element.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				msg elgamal.Message
				err error
			)
			switch {
			case cmd.Flags().Changed(flagHashInput):
				input, _ := cmd.Flags().GetString(flagHashInput)
				h, herr := digestOf(ctx.hashName(), []byte(input))
				if herr != nil {
					return herr
				}
				msg, err = elgamal.MessageFromHash(h)
			case cmd.Flags().Changed(flagSeed):
				seed, _ := cmd.Flags().GetString(flagSeed)
				r, rerr := seededSource(seed)
				if rerr != nil {
					return rerr
				}
				msg, err = elgamal.MessageFromRandomSource(r)
			case cmd.Flags().Changed(flagBytes):
				s, _ := cmd.Flags().GetString(flagBytes)
				b, derr := decodeArray(flagBytes, s)
				if derr != nil {
					return derr
				}
				msg = elgamal.NewMessage(b)
			default:
				msg, err = elgamal.RandomMessage()
			}
			if err != nil {
				return err
			}

			valid := msg.ToPoint().IsValid()
			ctx.logger.Debug("encoded message", "message", msg.String(), "valid", valid)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "message: %s\n", msg.String())
			fmt.Fprintf(out, "valid: %t\n", valid)
			return nil
		},
	}

	cmd.Flags().String(flagHashInput, "", "map the digest of this input to a message")
	cmd.Flags().String(flagSeed, "", "draw a reproducible message from this seed")
	cmd.Flags().String(flagBytes, "", "32-byte message encoding (hex)")
	cmd.MarkFlagsMutuallyExclusive(flagHashInput, flagSeed, flagBytes)
	return cmd
}
