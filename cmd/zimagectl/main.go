package main

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"zimaged/pkg/types"
)

func buildRootCmd() *cobra.Command {
	var server string

	root := &cobra.Command{
		Use:           "zimagectl",
		Short:         "Client for the zimaged text-to-image daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&server, "server", "http://127.0.0.1:8090", "Base URL of the zimaged server")

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Print the server health status",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := newAPIClient(server).Health(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("status=%s model_loaded=%t mock=%t\n", h.Status, h.ModelLoaded, h.Mock)
			return nil
		},
	}

	var (
		width    int
		height   int
		steps    int
		guidance float64
		seed     int64
		out      string
	)
	generateCmd := &cobra.Command{
		Use:   "generate <prompt>",
		Short: "Generate an image and write it to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newAPIClient(server).Generate(cmd.Context(), types.GenerateRequest{
				Prompt:        args[0],
				Width:         width,
				Height:        height,
				Steps:         steps,
				GuidanceScale: guidance,
				Seed:          seed,
			})
			if err != nil {
				return err
			}
			data, err := base64.StdEncoding.DecodeString(resp.Image)
			if err != nil {
				return fmt.Errorf("decode image: %w", err)
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}
			fmt.Printf("wrote %s (%d bytes)", out, len(data))
			if resp.FilePath != "" {
				fmt.Printf(" server copy: %s", resp.FilePath)
			}
			fmt.Println()
			return nil
		},
	}
	generateCmd.Flags().IntVar(&width, "width", 0, "Image width (server default when 0)")
	generateCmd.Flags().IntVar(&height, "height", 0, "Image height (server default when 0)")
	generateCmd.Flags().IntVar(&steps, "steps", 0, "Denoising steps (server default when 0)")
	generateCmd.Flags().Float64Var(&guidance, "guidance", 0, "Guidance scale (server default when 0)")
	generateCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (server picks when 0)")
	generateCmd.Flags().StringVarP(&out, "output", "o", "out.png", "Output file")

	root.AddCommand(healthCmd, generateCmd)
	return root
}

func main() {
	if err := buildRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
