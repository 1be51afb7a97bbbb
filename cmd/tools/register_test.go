package tools

import (
	"bytes"
	"testing"

	"github.com/Manu343726/mipsdecode/pkg/hw/mips/registers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupRegisters(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, lookupRegisters(&out, []string{"$t0", "31", "s8"}))

	t0, err := registers.Register(8)
	require.NoError(t, err)
	ra, err := registers.Register(31)
	require.NoError(t, err)
	fp, err := registers.Register(30)
	require.NoError(t, err)

	assert.Equal(t, t0.Documentation()+"\n"+ra.Documentation()+"\n"+fp.Documentation()+"\n", out.String())
}

func TestLookupRegisters_Unknown(t *testing.T) {
	var out bytes.Buffer

	err := lookupRegisters(&out, []string{"$zero", "$t10"})

	assert.ErrorIs(t, err, registers.ErrUnknownRegister)
	assert.Equal(t, "$zero $0   00000  Constant zero\n", out.String())
}

func TestRegisterCmd(t *testing.T) {
	var out bytes.Buffer
	ToolsCmd.SetArgs([]string{"register", "$sp"})
	ToolsCmd.SetOut(&out)
	ToolsCmd.SetErr(&bytes.Buffer{})

	require.NoError(t, ToolsCmd.Execute())
	assert.Contains(t, out.String(), "$sp   $29  11101")
}
