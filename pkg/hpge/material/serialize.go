package material

import (
	"bytes"
	"fmt"
	"io"
)

// Serialize writes the material description in the plain card format
// consumed by the simulation toolchain.
func Serialize(ge Germanium) string {
	writer := &bytes.Buffer{}
	serializeGermanium(writer, ge)
	return writer.String()
}

func serializeGermanium(writer io.Writer, ge Germanium) {
	fmt.Fprintf(writer, "MATERIAL %s\n", ge.Name)
	fmt.Fprintf(writer, "RHO %f\n", ge.Density)

	for _, iso := range ge.Isotopes {
		fmt.Fprintf(writer, "ISOTOPE Ge%d %f\n", iso.A, iso.Fraction)
	}

	fmt.Fprintln(writer, "END")
}
