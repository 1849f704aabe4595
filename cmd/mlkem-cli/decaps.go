package main

import (
	"fmt"
	"time"

	"github.com/shadowmesh/mlkem-core"
	"github.com/shadowmesh/mlkem-core/pkg/logging"
	"github.com/spf13/cobra"
)

func newDecapsCmd() *cobra.Command {
	var dkIn, ctIn string
	cmd := &cobra.Command{
		Use:   "decaps",
		Short: "Recover the shared secret from a ciphertext",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dkIn == "" || ctIn == "" {
				return fmt.Errorf("--dk and --ct are required")
			}
			s, err := mlkem.New(paramSetFlag)
			if err != nil {
				return err
			}
			dk, err := readEncodedFile(dkIn)
			if err != nil {
				return fmt.Errorf("reading decapsulation key: %w", err)
			}
			ct, err := readEncodedFile(ctIn)
			if err != nil {
				return fmt.Errorf("reading ciphertext: %w", err)
			}

			start := time.Now()
			secret, err := s.Decaps(dk, ct)
			elapsed := time.Since(start)
			if err != nil {
				logger.OperationEvent("decaps", paramSetFlag, elapsed, "error", nil)
				return err
			}
			logger.OperationEvent("decaps", paramSetFlag, elapsed, "ok", logging.Fields{})

			secretEnc, err := encodeBytes(secret)
			if err != nil {
				return err
			}
			fmt.Println("shared_secret:", secretEnc)
			return nil
		},
	}
	cmd.Flags().StringVar(&dkIn, "dk", "", "path to an encoded decapsulation key")
	cmd.Flags().StringVar(&ctIn, "ct", "", "path to an encoded ciphertext")
	return cmd
}
