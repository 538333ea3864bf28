package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ristretto-elgamal/elgamal"
	"ristretto-elgamal/internal/hexutil"
)

const flagScalar = "scalar"

func newKeygenCmd(ctx *cliContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an ElGamal key pair",
		Long: `Generate an ElGamal key pair.

Without flags the private key is drawn from the OS random source. --seed expands
a seed deterministically, --hash-input hashes the input with --hash and reduces
the digest, --scalar takes a canonical 32-byte little-endian private key.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			seed, _ := cmd.Flags().GetString(flagSeed)
			input, _ := cmd.Flags().GetString(flagHashInput)
			scalarHex, _ := cmd.Flags().GetString(flagScalar)

			var (
				kp     elgamal.KeyPair
				source string
				err    error
			)
			switch {
			case cmd.Flags().Changed(flagSeed):
				source = "seed"
				r, rerr := seededSource(seed)
				if rerr != nil {
					return rerr
				}
				kp, err = elgamal.KeyPairFromRandomSource(r)
			case cmd.Flags().Changed(flagHashInput):
				source = "hash:" + ctx.hashName()
				h, herr := digestOf(ctx.hashName(), []byte(input))
				if herr != nil {
					return herr
				}
				kp, err = elgamal.KeyPairFromHash(h)
			case cmd.Flags().Changed(flagScalar):
				source = "scalar"
				b, derr := decodeArray(flagScalar, scalarHex)
				if derr != nil {
					return derr
				}
				kp, err = elgamal.KeyPairFromBytes(b)
			default:
				source = "random"
				kp, err = elgamal.NewKeyPair()
			}
			if err != nil {
				return err
			}

			ctx.logger.Debug("generated key pair", "source", source, "public_key", kp.PublicKey.String())

			priv := kp.PrivateKey.Bytes()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "private_key: %s\n", hexutil.Encode(priv[:]))
			fmt.Fprintf(out, "public_key: %s\n", kp.PublicKey.String())
			return nil
		},
	}

	cmd.Flags().String(flagSeed, "", "derive the key pair from this seed")
	cmd.Flags().String(flagHashInput, "", "derive the key pair from the digest of this input")
	cmd.Flags().String(flagScalar, "", "canonical 32-byte private key (hex)")
	cmd.MarkFlagsMutuallyExclusive(flagSeed, flagHashInput, flagScalar)
	return cmd
}

func newPubkeyCmd(ctx *cliContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pubkey",
		Short: "Derive a public key",
		Long: `Derive a public key from --privkey, or map the digest of --hash-input
directly to a group element (no private key is known for the result).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var pk elgamal.PublicKey
			switch {
			case cmd.Flags().Changed(flagPrivKey):
				s, _ := cmd.Flags().GetString(flagPrivKey)
				sk, err := decodePrivateKey(flagPrivKey, s)
				if err != nil {
					return err
				}
				pk = elgamal.NewPublicKey(sk)
			case cmd.Flags().Changed(flagHashInput):
				input, _ := cmd.Flags().GetString(flagHashInput)
				h, err := digestOf(ctx.hashName(), []byte(input))
				if err != nil {
					return err
				}
				if pk, err = elgamal.PublicKeyFromHash(h); err != nil {
					return err
				}
			default:
				return fmt.Errorf("one of --%s or --%s is required", flagPrivKey, flagHashInput)
			}

			ctx.logger.Debug("derived public key", "public_key", pk.String())
			fmt.Fprintf(cmd.OutOrStdout(), "public_key: %s\n", pk.String())
			return nil
		},
	}

	cmd.Flags().String(flagPrivKey, "", "private key (hex)")
	cmd.Flags().String(flagHashInput, "", "map the digest of this input to a public key")
	cmd.MarkFlagsMutuallyExclusive(flagPrivKey, flagHashInput)
	return cmd
}
