package fs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/osx-upgrade/internal/domain"
)

func TestActionsReaderAdapter(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	reader := NewActionsReaderAdapter()

	t.Run("reads decoded entries", func(t *testing.T) {
		path := writeFile(t, dir, "decoded.json", `[
  {"decoded": "1) \"upgradeTo(address)\"\n0x96E54098317631641703404C06A5afAD89da7373"},
  {"decoded": "second"}
]`)

		entries, err := reader.ReadEntries(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, []domain.DecodedEntry{
			{Decoded: "1) \"upgradeTo(address)\"\n0x96E54098317631641703404C06A5afAD89da7373"},
			{Decoded: "second"},
		}, entries)
	})

	t.Run("object instead of array", func(t *testing.T) {
		path := writeFile(t, dir, "object.json", `{"decoded": "x"}`)
		_, err := reader.ReadEntries(ctx, path)
		assert.ErrorIs(t, err, domain.ErrSchema)
	})

	t.Run("null", func(t *testing.T) {
		path := writeFile(t, dir, "null.json", `null`)
		_, err := reader.ReadEntries(ctx, path)
		assert.ErrorIs(t, err, domain.ErrSchema)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := reader.ReadEntries(ctx, dir+"/missing.json")
		assert.ErrorContains(t, err, "error reading file")
	})

	t.Run("reads raw proposal fields", func(t *testing.T) {
		path := writeFile(t, dir, "proposal.json", `[false, 1, [1, 2], "[(0x0, 0, 0x)]", 0]`)
		fields, err := reader.ReadProposal(ctx, path)
		require.NoError(t, err)
		require.Len(t, fields, 5)
		assert.JSONEq(t, `"[(0x0, 0, 0x)]"`, string(fields[3]))
	})

	t.Run("proposal is not an array", func(t *testing.T) {
		path := writeFile(t, dir, "proposal-object.json", `{}`)
		_, err := reader.ReadProposal(ctx, path)
		assert.ErrorIs(t, err, domain.ErrSchema)
	})
}
