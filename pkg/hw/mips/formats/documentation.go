package formats

import (
	"fmt"
	"strings"

	"github.com/Manu343726/mipsdecode/pkg/hw/mips/bits"
	"github.com/Manu343726/mipsdecode/pkg/utils"
)

// Returns the documentation of the format: its memory layout and fields
func (s *Schema) Documentation(leftpad int) string {
	var builder strings.Builder
	leftpad_str := strings.Repeat(" ", leftpad)

	builder.WriteString(fmt.Sprintf("%v%v (%v) format\n\n", leftpad_str, s.Format, s.Format.Description()))

	leftpad_str += "  "
	leftpad += 2

	builder.WriteString(leftpad_str)
	builder.WriteString("Memory layout:\n\n")

	if err := s.Validate(); err != nil {
		builder.WriteString(fmt.Sprintf("%v  (cannot be drawn: %v)\n", leftpad_str, err))
	} else {
		layout := s.Layout()
		fields := make([]utils.AsciiFrameField, len(layout))

		for i, field := range layout {
			fields[len(layout)-i-1] = utils.AsciiFrameField{
				Name:  field.Name,
				Begin: field.Offset,
				Width: field.Width,
			}
		}

		frame, err := utils.AsciiFrame(fields, bits.Width, "bits", utils.AsciiFrameUnitLayout_RightToLeft, leftpad+2)
		if err != nil {
			builder.WriteString(fmt.Sprintf("%v  (cannot be drawn: %v)\n", leftpad_str, err))
		} else {
			builder.WriteString(frame)
		}
	}

	builder.WriteString("\n")
	builder.WriteString(leftpad_str)
	builder.WriteString("Fields:\n\n")

	for i, field := range s.Fields {
		builder.WriteString(fmt.Sprintf("%v [%v] %-7v %2v bits  %v\n", leftpad_str, i, field.Name, field.Width, field.Description))
	}

	return builder.String()
}

// Returns the documentation of all the instruction formats
func Documentation() string {
	return strings.Join(utils.Map(All(), func(s *Schema) string { return s.Documentation(0) }), "\n")
}
