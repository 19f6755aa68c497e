package abi

import (
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/osx-upgrade/internal/domain/config"
)

func TestCalldataDescriber(t *testing.T) {
	describer, err := NewCalldataDescriber()
	require.NoError(t, err)

	t.Run("initializeFrom payload", func(t *testing.T) {
		desc, err := describer.Describe(config.ExpectedInitializeFromCalldata)
		require.NoError(t, err)

		assert.Equal(t, "0x42d8e99e", desc.Selector)
		assert.Equal(t, "initializeFrom(uint8[3],bytes)", desc.Method)
		require.Len(t, desc.Args, 2)

		assert.Equal(t, "_previousProtocolVersion", desc.Args[0].Name)
		assert.Equal(t, "uint8[3]", desc.Args[0].Type)
		assert.Equal(t, [3]uint8{1, 3, 0}, desc.Args[0].Value)

		assert.Equal(t, "_initData", desc.Args[1].Name)
		assert.Equal(t, "bytes", desc.Args[1].Type)
		initData, ok := desc.Args[1].Value.(hexutil.Bytes)
		require.True(t, ok)
		assert.Empty(t, initData)
	})

	t.Run("unknown selector keeps raw selector", func(t *testing.T) {
		desc, err := describer.Describe("0xa9059cbb0000")
		require.NoError(t, err)
		assert.Equal(t, "0xa9059cbb", desc.Selector)
		assert.Empty(t, desc.Method)
		assert.Empty(t, desc.Args)
	})

	t.Run("missing prefix", func(t *testing.T) {
		desc, err := describer.Describe("a9059cbb")
		require.NoError(t, err)
		assert.Equal(t, "0xa9059cbb", desc.Selector)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := describer.Describe("0x42d8")
		assert.ErrorContains(t, err, "too short")
	})

	t.Run("not hex", func(t *testing.T) {
		_, err := describer.Describe("0xzz")
		assert.Error(t, err)
	})

	t.Run("truncated arguments", func(t *testing.T) {
		_, err := describer.Describe("0x42d8e99e0000")
		assert.ErrorContains(t, err, "failed to unpack initializeFrom")
	})
}
