package registers

import (
	"strings"

	"github.com/Manu343726/mipsdecode/pkg/utils"
)

// Returns the documentation of the register table, one register per line
func Documentation() string {
	var builder strings.Builder

	builder.WriteString("MIPS general purpose registers\n\n")
	builder.WriteString(strings.Join(utils.Map(All(), func(r *RegisterDescriptor) string { return "  " + r.Documentation() }), "\n"))
	builder.WriteString("\n")

	return builder.String()
}
