package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge"
	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge/material"
	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge/solid"
)

var exportOutput string
var exportMaterial bool

func init() {
	cmdExport.Flags().StringVarP(&exportOutput, "output", "o", "", "output STL path (default <name>.stl)")
	cmdExport.Flags().BoolVar(&exportMaterial, "material", false, "also write the material card next to the STL")
}

var cmdExport = &cobra.Command{
	Use:   "export <metadata.json>",
	Short: "materialize the detector solid and export it as STL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		conf := readConfig()

		registry := solid.NewRegistry()
		detector, err := hpge.NewFromFile(args[0], "", registry)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}

		output := exportOutput
		if output == "" {
			output = conf.Output
		}
		if output == "" {
			output = detector.Name() + ".stl"
		}

		detectorSolid, err := detector.Solid()
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		detectorSolid.ExportSTL(output, conf.MeshCells)
		log.Infof("wrote %s", output)

		if exportMaterial {
			materialPath := strings.TrimSuffix(output, ".stl") + ".mat"
			card := material.Serialize(detector.Material())
			if err := os.WriteFile(materialPath, []byte(card), 0o644); err != nil {
				log.Error(err)
				os.Exit(1)
			}
			log.Infof("wrote %s", materialPath)
		}
	},
}
