package main

import (
	"fmt"
	"time"

	"github.com/shadowmesh/mlkem-core"
	"github.com/spf13/cobra"
)

func newBenchCmd() *cobra.Command {
	var iterations int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time repeated keygen/encaps/decaps cycles",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := mlkem.New(paramSetFlag)
			if err != nil {
				return err
			}

			var keygenTotal, encapsTotal, decapsTotal time.Duration
			for i := 0; i < iterations; i++ {
				t0 := time.Now()
				ek, dk, err := s.KeyGen()
				if err != nil {
					return err
				}
				keygenTotal += time.Since(t0)

				t1 := time.Now()
				secret, ct, err := s.Encaps(ek)
				if err != nil {
					return err
				}
				encapsTotal += time.Since(t1)

				t2 := time.Now()
				got, err := s.Decaps(dk, ct)
				if err != nil {
					return err
				}
				decapsTotal += time.Since(t2)

				if string(secret) != string(got) {
					return fmt.Errorf("round trip %d produced mismatched shared secrets", i)
				}
			}

			fmt.Printf("parameter set: %s, iterations: %d\n", paramSetFlag, iterations)
			fmt.Printf("keygen:  avg %v\n", keygenTotal/time.Duration(iterations))
			fmt.Printf("encaps:  avg %v\n", encapsTotal/time.Duration(iterations))
			fmt.Printf("decaps:  avg %v\n", decapsTotal/time.Duration(iterations))
			return nil
		},
	}
	cmd.Flags().IntVar(&iterations, "iterations", 100, "number of keygen/encaps/decaps cycles to run")
	return cmd
}
