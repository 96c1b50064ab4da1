package ndastro

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSystem(t *testing.T) {
	cases := []struct {
		in   string
		want System
	}{
		{"Lahiri", Lahiri},
		{"LAHIRI", Lahiri},
		{"  lahiri ", Lahiri},
		{"Chitrapaksha", Lahiri},
		{"Krishnamurti (new)", KrishnamurtiNew},
		{"krishnamurti", KrishnamurtiNew},
		{"KP", KrishnamurtiNew},
		{"Fagan-Bradley", FaganBradley},
		{"fagan_bradley", FaganBradley},
		{"fagan bradley ayanamsa", FaganBradley},
		{"True", True},
		{"true ayanamsa", True},
		{"True Citra", TrueCitra},
		{"true_chitra", TrueCitra},
		{"True Revati", TrueRevati},
		{"true-pushya", TruePusya},
		{"Sūryasiddhānta", Suryasiddhanta},
		{"Āryabhaṭa", Aryabhatta},
		{"Yukteshwar", Yukteshwar},
	}
	for _, c := range cases {
		have, err := ParseSystem(c.in)
		if assert.NoError(t, err, c.in) {
			assert.Equal(t, c.want, have, c.in)
		}
	}
}

func TestParseSystemRoundTrip(t *testing.T) {
	for _, s := range Systems() {
		byName, err := ParseSystem(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, byName)

		bySlug, err := ParseSystem(s.Slug())
		require.NoError(t, err)
		assert.Equal(t, s, bySlug)
	}
}

func TestParseSystemUnknown(t *testing.T) {
	for _, in := range []string{"", "ayanamsa", "sassanian", "lahiri2", "true citra revati"} {
		_, err := ParseSystem(in)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, ErrUnknownSystem), in)
		var ue *UnknownSystemError
		require.True(t, errors.As(err, &ue))
		assert.Equal(t, in, ue.Name)
	}
}
