package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mossyhq/binminder/config"
	"github.com/mossyhq/binminder/core/waste"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode a schedule offline and print the entries",
	Long:  "Reads raw schedule text from a file or stdin, decodes the configured address line and prints the collection entries. No notification is sent.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  decodeSchedule,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func decodeSchedule(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var raw []byte
	if len(args) == 1 {
		raw, err = os.ReadFile(args[0])
	} else {
		raw, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("read schedule: %w", err)
	}

	schedule, err := waste.DecodeAll(string(raw), cfg.Source.AddressCode)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, e := range schedule {
		fmt.Fprintf(out, "%s  %s\n", e.Date.Format("2006-01-02"), e.Bin.Label())
	}
	return nil
}
