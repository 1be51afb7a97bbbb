package mips

import (
	"errors"
	"fmt"
	"io"

	"github.com/Manu343726/mipsdecode/pkg/hw/mips/bits"
	"github.com/Manu343726/mipsdecode/pkg/hw/mips/decoder"
	"github.com/Manu343726/mipsdecode/pkg/hw/mips/formats"
	"github.com/Manu343726/mipsdecode/pkg/utils"
	"gopkg.in/yaml.v3"
)

var ErrUnknownOutput = errors.New("unknown output format")

// Output formats supported by the decode command
var renderers = map[string]func(w io.Writer, r *decodeResult, h utils.Highlighter) error{
	"text":  renderText,
	"yaml":  renderYAML,
	"frame": renderFrame,
}

// Everything known about a decoded instruction
type decodeResult struct {
	Format formats.Format
	Word   bits.BitVector
	Fields []decoder.DecodedField
}

func render(w io.Writer, output string, r *decodeResult, h utils.Highlighter) error {
	renderer, ok := renderers[output]
	if !ok {
		return utils.MakeError(ErrUnknownOutput, "'%v', expected one of %v", output, utils.FormatSlice(utils.Keys(renderers), ", "))
	}

	return renderer(w, r, h)
}

// Writes one "<field> <value>" line per field
func renderText(w io.Writer, r *decodeResult, h utils.Highlighter) error {
	for _, field := range r.Fields {
		value := h.Raw(field.Value)
		if field.Resolved {
			value = h.Register(field.Value)
		}

		if _, err := fmt.Fprintf(w, "%v %v\n", h.FieldName(field.Name), value); err != nil {
			return err
		}
	}

	return nil
}

type yamlField struct {
	Name     string `yaml:"name"`
	Value    string `yaml:"value"`
	Bits     string `yaml:"bits"`
	Raw      uint64 `yaml:"raw"`
	Offset   int    `yaml:"offset"`
	Width    int    `yaml:"width"`
	Register bool   `yaml:"register"`
}

type yamlInstruction struct {
	Format string      `yaml:"format"`
	Word   string      `yaml:"word"`
	Value  uint32      `yaml:"value"`
	Hex    string      `yaml:"hex"`
	Fields []yamlField `yaml:"fields"`
}

// Writes the instruction as a YAML document. Colors are never applied
func renderYAML(w io.Writer, r *decodeResult, _ utils.Highlighter) error {
	value := r.Word.Uint32()
	doc := yamlInstruction{
		Format: r.Format.String(),
		Word:   r.Word.String(),
		Value:  value,
		Hex:    utils.FormatUintHex(uint64(value), 8),
		Fields: utils.Map(r.Fields, func(f decoder.DecodedField) yamlField {
			return yamlField{
				Name:     f.Name,
				Value:    f.Value,
				Bits:     f.Binary(),
				Raw:      f.Raw,
				Offset:   f.Offset,
				Width:    f.Width,
				Register: f.Resolved,
			}
		}),
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(doc); err != nil {
		return err
	}

	return encoder.Close()
}

// Writes the ASCII frame of the instruction followed by the text output
func renderFrame(w io.Writer, r *decodeResult, h utils.Highlighter) error {
	frame, err := decoder.PrettyPrint(r.Fields, 0)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%v (%v): %v\n\n%v\n", r.Format, r.Format.Description(), h.Binary(r.Word.String()), frame); err != nil {
		return err
	}

	return renderText(w, r, h)
}
