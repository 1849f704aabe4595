package main

import (
	"fmt"
	"time"

	"github.com/shadowmesh/mlkem-core"
	"github.com/shadowmesh/mlkem-core/pkg/logging"
	"github.com/spf13/cobra"
)

func newKeyGenCmd() *cobra.Command {
	var ekOut, dkOut string
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an encapsulation/decapsulation key pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := mlkem.New(paramSetFlag)
			if err != nil {
				return err
			}
			start := time.Now()
			ek, dk, err := s.KeyGen()
			elapsed := time.Since(start)
			if err != nil {
				logger.OperationEvent("keygen", paramSetFlag, elapsed, "error", nil)
				return err
			}
			logger.OperationEvent("keygen", paramSetFlag, elapsed, "ok", logging.Fields{
				"ek_bytes": len(ek),
				"dk_bytes": len(dk),
			})

			ekEnc, err := encodeBytes(ek)
			if err != nil {
				return err
			}
			dkEnc, err := encodeBytes(dk)
			if err != nil {
				return err
			}

			if ekOut != "" {
				if err := writeFile(ekOut, ekEnc); err != nil {
					return fmt.Errorf("writing encapsulation key: %w", err)
				}
			} else {
				fmt.Println("ek:", ekEnc)
			}
			if dkOut != "" {
				if err := writeFile(dkOut, dkEnc); err != nil {
					return fmt.Errorf("writing decapsulation key: %w", err)
				}
			} else {
				fmt.Println("dk:", dkEnc)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&ekOut, "ek-out", "", "write the encapsulation key to this file instead of stdout")
	cmd.Flags().StringVar(&dkOut, "dk-out", "", "write the decapsulation key to this file instead of stdout")
	return cmd
}
