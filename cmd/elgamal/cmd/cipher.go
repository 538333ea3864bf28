package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ristretto-elgamal/elgamal"
	"ristretto-elgamal/internal/hexutil"
)

const (
	flagMessage    = "message"
	flagPubKey     = "pubkey"
	flagPrivKey    = "privkey"
	flagEphemeral  = "ephemeral"
	flagCypherText = "cyphertext"
)

func newEncryptCmd(ctx *cliContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a message to a public key",
		Long: `Encrypt a 32-byte message encoding to a public key and print the 64-byte
cyphertext (gamma || delta). The ephemeral key is random unless --ephemeral or
--seed is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			msgHex, _ := cmd.Flags().GetString(flagMessage)
			pkHex, _ := cmd.Flags().GetString(flagPubKey)

			mb, err := decodeArray(flagMessage, msgHex)
			if err != nil {
				return err
			}
			pb, err := decodeArray(flagPubKey, pkHex)
			if err != nil {
				return err
			}

			var eph elgamal.PrivateKey
			switch {
			case cmd.Flags().Changed(flagEphemeral):
				s, _ := cmd.Flags().GetString(flagEphemeral)
				eph, err = decodePrivateKey(flagEphemeral, s)
			case cmd.Flags().Changed(flagSeed):
				seed, _ := cmd.Flags().GetString(flagSeed)
				r, rerr := seededSource(seed)
				if rerr != nil {
					return rerr
				}
				eph, err = elgamal.PrivateKeyFromRandomSource(r)
			default:
				eph, err = elgamal.NewPrivateKey()
			}
			if err != nil {
				return err
			}

			ct, err := elgamal.Encrypt(elgamal.NewMessage(mb), elgamal.PublicKeyFromBytes(pb), eph)
			if err != nil {
				return err
			}

			ctx.logger.Debug("encrypted message", "recipient", hexutil.Encode(pb[:]), "gamma", ct.Gamma.String())
			fmt.Fprintf(cmd.OutOrStdout(), "cyphertext: %s\n", ct.String())
			return nil
		},
	}

	cmd.Flags().String(flagMessage, "", "32-byte message encoding (hex)")
	cmd.Flags().String(flagPubKey, "", "recipient public key (hex)")
	cmd.Flags().String(flagEphemeral, "", "ephemeral private key (hex)")
	cmd.Flags().String(flagSeed, "", "derive the ephemeral key from this seed")
	_ = cmd.MarkFlagRequired(flagMessage)
	_ = cmd.MarkFlagRequired(flagPubKey)
	cmd.MarkFlagsMutuallyExclusive(flagEphemeral, flagSeed)
	return cmd
}

func newDecryptCmd(ctx *cliContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a cyphertext with a private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctHex, _ := cmd.Flags().GetString(flagCypherText)
			skHex, _ := cmd.Flags().GetString(flagPrivKey)

			cb, err := hexutil.DecodeFixed(ctHex, elgamal.CypherTextSize)
			if err != nil {
				return fmt.Errorf("--%s: %w", flagCypherText, err)
			}
			ct, err := elgamal.CypherTextFromSlice(cb)
			if err != nil {
				return err
			}
			sk, err := decodePrivateKey(flagPrivKey, skHex)
			if err != nil {
				return err
			}

			msg, err := elgamal.Decrypt(ct, sk)
			if err != nil {
				return err
			}

			ctx.logger.Debug("decrypted cyphertext", "gamma", ct.Gamma.String())
			fmt.Fprintf(cmd.OutOrStdout(), "message: %s\n", msg.String())
			return nil
		},
	}

	cmd.Flags().String(flagCypherText, "", "64-byte cyphertext (hex)")
	cmd.Flags().String(flagPrivKey, "", "recipient private key (hex)")
	_ = cmd.MarkFlagRequired(flagCypherText)
	_ = cmd.MarkFlagRequired(flagPrivKey)
	return cmd
}
