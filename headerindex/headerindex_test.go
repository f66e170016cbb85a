package headerindex

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alembic-ogawa/ogawadecode/errs"
)

func TestBuild_ByNameLookup(t *testing.T) {
	idx, err := Build([]string{"translate", "rotate", "scale"})
	require.NoError(t, err)
	require.Equal(t, 3, idx.Len())

	i, ok := idx.ByName("rotate")
	require.True(t, ok)
	require.Equal(t, 1, i)

	_, ok = idx.ByName("visibility")
	require.False(t, ok)
}

func TestBuild_EmptyNameRejected(t *testing.T) {
	_, err := Build([]string{"translate", ""})
	require.ErrorIs(t, err, errs.ErrEmptyName)
}

func TestBuild_DuplicateNameRejected(t *testing.T) {
	_, err := Build([]string{"translate", "translate"})
	require.ErrorIs(t, err, errs.ErrDuplicateName)
}

func TestBuild_Empty(t *testing.T) {
	idx, err := Build(nil)
	require.NoError(t, err)
	require.Equal(t, 0, idx.Len())
	_, ok := idx.ByName("anything")
	require.False(t, ok)
}
