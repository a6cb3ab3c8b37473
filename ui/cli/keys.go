// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/quantumpki/qpki/core/keys"
	"github.com/quantumpki/qpki/core/mockcrypto"
	"github.com/quantumpki/qpki/internal/i18n"
	"github.com/quantumpki/qpki/internal/logging"
)

var ErrUnknownOutput = errors.New("unknown output format")

// newGenerator is replaced by tests for deterministic keys.
var newGenerator = func() *keys.Generator { return keys.NewGenerator() }

func (a *app) newKeygenCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a mock post-quantum key pair",
		Long: `Prints a simulated CRYSTALS-Dilithium key pair. The keys are random
strings and provide no security.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp := newGenerator().Generate()
			logging.Debugf("generated key pair %s", kp.Fingerprint())

			out := cmd.OutOrStdout()
			switch output {
			case "yaml":
				data, err := yaml.Marshal(kp)
				if err != nil {
					return fmt.Errorf("encoding key pair: %w", err)
				}
				_, err = out.Write(data)
				return err
			case "text":
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintf(w, "%s:\t%s\n", i18n.T("keygen.meta.algorithm"), kp.Algorithm)
				fmt.Fprintf(w, "%s:\t%s\n", i18n.T("keygen.meta.keysize"), i18n.T("keygen.meta.keysize.value", kp.KeySize))
				fmt.Fprintf(w, "%s:\t%s\n", i18n.T("keygen.fingerprint"), kp.Fingerprint())
				fmt.Fprintf(w, "%s:\t%s\n", i18n.T("keygen.created"), kp.CreatedAt.Format(time.RFC3339))
				fmt.Fprintf(w, "%s:\t%s\n", i18n.T("keygen.public"), kp.PublicKey)
				fmt.Fprintf(w, "%s:\t%s\n", i18n.T("keygen.private"), kp.PrivateKey)
				return w.Flush()
			}
			return fmt.Errorf("%w %q, use text or yaml", ErrUnknownOutput, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, yaml)")
	return cmd
}

func (a *app) newEncryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt <message>",
		Short: "Encrypt a message with the mock scheme",
		Long:  `Encrypts message with a key pair generated for this invocation and prints the ciphertext.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kp := newGenerator().Generate()
			ciphertext, err := mockcrypto.Encrypt(args[0], &kp, time.Now())
			if err != nil {
				return fmt.Errorf("encrypt: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ciphertext)
			return nil
		},
	}
}

func (a *app) newDecryptCmd() *cobra.Command {
	var showTime bool

	cmd := &cobra.Command{
		Use:   "decrypt <ciphertext>",
		Short: "Decrypt a ciphertext produced by encrypt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kp := newGenerator().Generate()
			plain, err := mockcrypto.Decrypt(args[0], &kp)
			if err != nil {
				return fmt.Errorf("%s: %w", i18n.T("toast.decrypt_failed.description"), err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), plain)
			if showTime {
				at, err := mockcrypto.Timestamp(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.decrypt.time", at.UTC().Format(time.RFC3339)))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showTime, "time", false, "also print when the ciphertext was created")
	return cmd
}
