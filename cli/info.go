package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge"
	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge/material"
)

var cmdInfo = &cobra.Command{
	Use:   "info <metadata.json>",
	Short: "print derived quantities of a detector",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		readConfig()
		detector, err := hpge.NewFromFile(args[0], "", nil)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}

		meta := detector.Metadata()
		total, _ := detector.SurfaceArea()

		fmt.Printf("name:         %s\n", detector.Name())
		fmt.Printf("type:         %s\n", meta.Type)
		fmt.Printf("volume:       %.2f mm^3\n", detector.Volume())
		fmt.Printf("mass:         %.2f g\n", detector.Mass())
		fmt.Printf("surface area: %.2f mm^2\n", total)
		for _, surface := range []hpge.Surface{hpge.SurfacePPlus, hpge.SurfaceNPlus, hpge.SurfacePassive} {
			indices := detector.SurfaceIndices(surface)
			if len(indices) == 0 {
				continue
			}
			area, _ := detector.SurfaceArea(indices...)
			fmt.Printf("  %-8s    %.2f mm^2 over %d segments\n", surface, area, len(indices))
		}
		fmt.Printf("material:\n%s", material.Serialize(detector.Material()))
	},
}
