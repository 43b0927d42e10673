package main

import (
	"classical-cipher-backend/crypto"
	"classical-cipher-backend/models"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// newRootCmd creates the root command for cipherctl
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cipherctl",
		Short: "Encrypt and decrypt text with classical ciphers",
		Long: `cipherctl applies the Caesar, Vigenère, Rail Fence, Playfair and
columnar Transposition ciphers to text given as arguments or on stdin.

Example:
  cipherctl encrypt --cipher caesar --key 3 HELLO
  echo "ATTACK AT DAWN" | cipherctl encrypt -c vigenere -k LEMON`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newOperationCmd("encrypt", "Encrypt text"),
		newOperationCmd("decrypt", "Decrypt text"),
		newListCmd(),
	)
	return rootCmd
}

func newOperationCmd(direction, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   direction + " [text...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, direction, args)
		},
	}

	cmd.Flags().StringP("cipher", "c", "", "Cipher name (see 'cipherctl list')")
	cmd.Flags().StringP("key", "k", "", "Cipher key")
	_ = cmd.MarkFlagRequired("cipher")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available ciphers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range crypto.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s key\n", c.Name(), c.KeyKind())
			}
			return nil
		},
	}
}

func runOperation(cmd *cobra.Command, direction string, args []string) error {
	name, err := cmd.Flags().GetString("cipher")
	if err != nil {
		return fmt.Errorf("failed to get cipher flag: %w", err)
	}
	rawKey, err := cmd.Flags().GetString("key")
	if err != nil {
		return fmt.Errorf("failed to get key flag: %w", err)
	}

	c, ok := crypto.Lookup(strings.ToLower(name))
	if !ok {
		return fmt.Errorf("unknown cipher %q", name)
	}

	key, err := models.CoerceKey(c.KeyKind(), rawKey)
	if err != nil {
		return fmt.Errorf("invalid key: %w", err)
	}

	text, err := readText(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	op := c.Encrypt
	if direction == "decrypt" {
		op = c.Decrypt
	}
	result, err := op(text, key)
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidKey) {
			return fmt.Errorf("%s %s: %w", c.Name(), direction, err)
		}
		return fmt.Errorf("%s %s failed: %w", c.Name(), direction, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

// readText joins the arguments, or reads stdin without its trailing newline.
func readText(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
