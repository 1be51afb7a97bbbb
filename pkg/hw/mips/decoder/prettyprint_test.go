package decoder

import (
	"testing"

	"github.com/Manu343726/mipsdecode/pkg/hw/mips/formats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyPrint(t *testing.T) {
	// beq $t0, $t1, 3
	fields, err := New().DecodeWord(0x11090003, formats.Format_I)
	require.NoError(t, err)

	actual, err := PrettyPrint(fields.Items(), 0)
	require.NoError(t, err)

	assert.Equal(t, ""+
		`31                25               20               15                              0
+-----------------+----------------+----------------+-------------------------------+
| op=$a0 (000100) | rs=$t0 (01000) | rt=$t1 (01001) | offset=$v1 (0000000000000011) |
+-----------------+----------------+----------------+-------------------------------+
 <--- 6 bits ----> <--- 5 bits ---> <--- 5 bits ---> <---------- 16 bits ----------> 
`,
		actual)
}
