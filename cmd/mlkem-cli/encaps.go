package main

import (
	"fmt"
	"time"

	"github.com/shadowmesh/mlkem-core"
	"github.com/shadowmesh/mlkem-core/pkg/logging"
	"github.com/spf13/cobra"
)

func newEncapsCmd() *cobra.Command {
	var ekIn string
	cmd := &cobra.Command{
		Use:   "encaps",
		Short: "Encapsulate a fresh shared secret against an encapsulation key",
		RunE: func(cmd *cobra.Command, args []string) error {
			if ekIn == "" {
				return fmt.Errorf("--ek is required")
			}
			s, err := mlkem.New(paramSetFlag)
			if err != nil {
				return err
			}
			ek, err := readEncodedFile(ekIn)
			if err != nil {
				return fmt.Errorf("reading encapsulation key: %w", err)
			}

			start := time.Now()
			secret, ct, err := s.Encaps(ek)
			elapsed := time.Since(start)
			if err != nil {
				logger.OperationEvent("encaps", paramSetFlag, elapsed, "error", nil)
				return err
			}
			logger.OperationEvent("encaps", paramSetFlag, elapsed, "ok", logging.Fields{
				"ciphertext_bytes": len(ct),
			})

			ctEnc, err := encodeBytes(ct)
			if err != nil {
				return err
			}
			secretEnc, err := encodeBytes(secret)
			if err != nil {
				return err
			}
			fmt.Println("ciphertext:", ctEnc)
			fmt.Println("shared_secret:", secretEnc)
			return nil
		},
	}
	cmd.Flags().StringVar(&ekIn, "ek", "", "path to an encoded encapsulation key")
	return cmd
}
