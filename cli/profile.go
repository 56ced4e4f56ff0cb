package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge"
)

var profileFormat string

func init() {
	cmdProfile.Flags().StringVar(&profileFormat, "format", "csv", "output format: csv or json")
}

var cmdProfile = &cobra.Command{
	Use:   "profile <metadata.json>",
	Short: "print the (r, z) polycone vertices and surface labels",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		readConfig()
		detector, err := hpge.NewFromFile(args[0], "", nil)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		if err := writeProfile(detector); err != nil {
			log.Error(err)
			os.Exit(1)
		}
	},
}

func writeProfile(detector *hpge.Detector) error {
	r, z := detector.Profile()
	surfaces := detector.Surfaces()

	switch profileFormat {
	case "json":
		doc := struct {
			Name     string         `json:"name"`
			R        []float64      `json:"r_in_mm"`
			Z        []float64      `json:"z_in_mm"`
			Surfaces []hpge.Surface `json:"surfaces"`
		}{detector.Name(), r, z, surfaces}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(doc)

	case "csv":
		writer := csv.NewWriter(os.Stdout)
		if err := writer.Write([]string{"r_in_mm", "z_in_mm", "surface"}); err != nil {
			return err
		}
		for i := range r {
			// The surface label belongs to the segment ending here.
			surface := ""
			if i > 0 {
				surface = surfaces[i-1].String()
			}
			record := []string{
				strconv.FormatFloat(r[i], 'g', -1, 64),
				strconv.FormatFloat(z[i], 'g', -1, 64),
				surface,
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
		writer.Flush()
		return writer.Error()

	default:
		return fmt.Errorf("unknown profile format %q, expected csv or json", profileFormat)
	}
}
