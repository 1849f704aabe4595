package main

import (
	"fmt"
	"time"

	"github.com/shadowmesh/mlkem-core"
	"github.com/shadowmesh/mlkem-core/pkg/aead"
	"github.com/shadowmesh/mlkem-core/pkg/logging"
	"github.com/shadowmesh/mlkem-core/pkg/sign/mldsa"
	"github.com/spf13/cobra"
)

// newSealCmd demonstrates an authenticated capsule: encapsulate against
// ek, ML-DSA-sign the ciphertext (bound to the active parameter set) so a
// recipient holding the signer's ML-DSA public key can confirm which
// party produced it, and optionally derive an XChaCha20-Poly1305 key from
// the shared secret to seal a payload.
func newSealCmd() *cobra.Command {
	var ekIn, payload string
	cmd := &cobra.Command{
		Use:   "seal",
		Short: "Encapsulate and sign the ciphertext with a fresh ML-DSA-87 identity",
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
			if err != nil {
				return err
			}

			signer, err := mldsa.GenerateKeypair()
			if err != nil {
				return fmt.Errorf("generating capsule signing identity: %w", err)
			}
			sig, err := mldsa.SignCapsule(paramSetFlag, ct, signer.PrivateKey)
			if err != nil {
				return fmt.Errorf("signing capsule: %w", err)
			}
			elapsed := time.Since(start)
			logger.OperationEvent("seal", paramSetFlag, elapsed, "ok", logging.Fields{
				"ciphertext_bytes": len(ct),
				"signature_bytes":  len(sig),
			})

			ctEnc, err := encodeBytes(ct)
			if err != nil {
				return err
			}
			sigEnc, err := encodeBytes(sig)
			if err != nil {
				return err
			}
			pubEnc, err := encodeBytes(signer.PublicKey)
			if err != nil {
				return err
			}
			secretEnc, err := encodeBytes(secret)
			if err != nil {
				return err
			}
			fmt.Println("ciphertext:", ctEnc)
			fmt.Println("signature:", sigEnc)
			fmt.Println("signer_public_key:", pubEnc)
			fmt.Println("shared_secret:", secretEnc)

			if payload != "" {
				box, err := aead.New(secret, "mlkem-cli/seal/"+paramSetFlag)
				if err != nil {
					return fmt.Errorf("keying payload cipher from the shared secret: %w", err)
				}
				sealed, err := box.Seal([]byte(payload))
				if err != nil {
					return fmt.Errorf("sealing payload: %w", err)
				}
				sealedEnc, err := encodeBytes(sealed)
				if err != nil {
					return err
				}
				fmt.Println("sealed_payload:", sealedEnc)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&ekIn, "ek", "", "path to an encoded encapsulation key")
	cmd.Flags().StringVar(&payload, "payload", "", "optional plaintext to seal under the derived shared secret")
	return cmd
}
