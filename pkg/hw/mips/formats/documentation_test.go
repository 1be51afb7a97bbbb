package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_Documentation(t *testing.T) {
	schema, err := SchemaFor(Format_I)
	require.NoError(t, err)

	assert.Equal(t, ""+
		`I (immediate-type) format

  Memory layout:

    31           25           20           15            0
    +------------+------------+------------+-------------+
    |     op     |     rs     |     rt     |   offset    |
    +------------+------------+------------+-------------+
     <- 6 bits -> <- 5 bits -> <- 5 bits -> <- 16 bits -> 

  Fields:

   [0] op       6 bits  Operation code
   [1] rs       5 bits  First source register
   [2] rt       5 bits  Second source register (destination of immediate instructions)
   [3] offset  16 bits  Immediate value or branch/memory offset
`,
		schema.Documentation(0))
}

func TestSchema_DocumentationOfInvalidSchema(t *testing.T) {
	schema, err := SchemaFor(Format_J)
	require.NoError(t, err)

	doc := schema.Documentation(0)

	assert.Contains(t, doc, "cannot be drawn")
	assert.Contains(t, doc, "[3] address")
}

func TestDocumentation_AllFormats(t *testing.T) {
	doc := Documentation()

	assert.Contains(t, doc, "R (register-type) format")
	assert.Contains(t, doc, "I (immediate-type) format")
	assert.Contains(t, doc, "J (jump-type) format")
}
