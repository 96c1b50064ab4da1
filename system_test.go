package ndastro

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystems(t *testing.T) {
	systems := Systems()
	require.Len(t, systems, 16)
	assert.Equal(t, Lahiri, systems[0])
	assert.Equal(t, TruePusya, systems[15])

	names := make(map[string]bool)
	slugs := make(map[string]bool)
	anchors := make(map[float64]bool)
	for _, s := range systems {
		assert.True(t, s.Valid())
		a, err := s.Anchor()
		require.NoError(t, err)
		assert.False(t, names[s.String()], "duplicate name %s", s)
		assert.False(t, slugs[s.Slug()], "duplicate slug %s", s.Slug())
		assert.False(t, anchors[a], "duplicate anchor %v", a)
		names[s.String()], slugs[s.Slug()], anchors[a] = true, true, true
	}
}

func TestSystemsReturnsCopy(t *testing.T) {
	a := Systems()
	a[0] = TruePusya
	assert.Equal(t, Lahiri, Systems()[0])
}

func TestSystemString(t *testing.T) {
	assert.Equal(t, "Lahiri", Lahiri.String())
	assert.Equal(t, "Krishnamurti (new)", KrishnamurtiNew.String())
	assert.Equal(t, "Fagan-Bradley", FaganBradley.String())
	assert.Equal(t, "True Pusya", TruePusya.String())
	assert.Equal(t, "System(0)", System(0).String())
	assert.Equal(t, "System(-3)", System(-3).String())
	assert.Equal(t, "", System(42).Slug())
}

func TestAnchorUnknown(t *testing.T) {
	_, err := System(17).Anchor()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownSystem))
	assert.EqualError(t, err, "unknown ayanamsa system: 17")
}
