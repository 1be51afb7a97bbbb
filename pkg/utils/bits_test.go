package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllOnes(t *testing.T) {
	assert.Equal(t, uint32(0), AllOnes[uint32](0))
	assert.Equal(t, uint32(0x1f), AllOnes[uint32](5))
	assert.Equal(t, uint32(0xffffffff), AllOnes[uint32](32))
	assert.Equal(t, uint8(0xff), AllOnes[uint8](12))
}

func TestBitView_ReadWrite(t *testing.T) {
	var word uint32 = 0
	view := CreateBitView(&word)

	view.Write(0x3f, 26, 6)
	view.Write(0x1f, 0, 5)

	assert.Equal(t, uint32(0xfc00001f), word)
	assert.Equal(t, uint32(0x3f), view.Read(26, 6))
	assert.Equal(t, uint32(0x1f), view.Read(0, 5))
}

func TestBitView_WriteOverwritesRange(t *testing.T) {
	var word uint32 = 0xffffffff
	view := CreateBitView(&word)

	view.Write(0, 8, 8)

	assert.Equal(t, uint32(0xffff00ff), word)
}

func TestBitView_WriteTruncatesValue(t *testing.T) {
	var word uint32 = 0
	view := CreateBitView(&word)

	view.Write(0xff, 4, 2)

	assert.Equal(t, uint32(0x30), word)
}
