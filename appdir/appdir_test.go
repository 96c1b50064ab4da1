package appdir

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolver(goos string, env map[string]string) Resolver {
	return Resolver{
		GOOS:   goos,
		Home:   func() (string, error) { return "/home/testuser", nil },
		Getenv: func(k string) string { return env[k] },
	}
}

func TestOSConstants(t *testing.T) {
	assert.Equal(t, "windows", OSWindows)
	assert.Equal(t, "darwin", OSMac)
	assert.Equal(t, "linux", OSLinux)
}

func TestPathFor(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)

	have, err := PathFor(OSWindows, "testapp")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "AppData", "Local", "testapp"), have)

	have, err = PathFor(OSMac, "testapp")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Library", "Application Support", "testapp"), have)

	_, err = PathFor(OSLinux, " ")
	assert.ErrorIs(t, err, ErrEmptyAppName)

	native, err := Path("testapp")
	require.NoError(t, err)
	fromGOOS, err := PathFor(runtime.GOOS, "testapp")
	require.NoError(t, err)
	assert.Equal(t, native, fromGOOS)
}

func TestResolverPlatforms(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{OSWindows, filepath.Join("/home/testuser", "AppData", "Local", "testapp")},
		{OSMac, filepath.Join("/home/testuser", "Library", "Application Support", "testapp")},
		{OSLinux, filepath.Join("/home/testuser", ".local", "share", "testapp")},
		{"freebsd", filepath.Join("/home/testuser", ".local", "share", "testapp")},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			have, err := resolver(tt.goos, nil).Path("testapp")
			require.NoError(t, err)
			assert.Equal(t, tt.want, have)
			assert.Equal(t, "testapp", filepath.Base(have))
		})
	}
}

func TestResolverXDGDataHome(t *testing.T) {
	have, err := resolver(OSLinux, map[string]string{"XDG_DATA_HOME": "/custom/data/path"}).Path("myapp")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/custom/data/path", "myapp"), have)

	have, err = resolver(OSLinux, map[string]string{"XDG_DATA_HOME": "~/data"}).Path("myapp")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/testuser", "data", "myapp"), have)

	have, err = resolver(OSMac, map[string]string{"XDG_DATA_HOME": "/custom"}).Path("myapp")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/testuser", "Library", "Application Support", "myapp"), have, "XDG only applies on linux")
}

func TestResolverSpecialCharacters(t *testing.T) {
	have, err := resolver(OSLinux, nil).Path("my-app_2024")
	require.NoError(t, err)
	assert.Equal(t, "my-app_2024", filepath.Base(have))
}

func TestResolverErrors(t *testing.T) {
	_, err := resolver(OSLinux, nil).Path("  ")
	assert.True(t, errors.Is(err, ErrEmptyAppName))

	boom := errors.New("no home")
	r := resolver(OSLinux, nil)
	r.Home = func() (string, error) { return "", boom }
	_, err = r.Path("app")
	assert.True(t, errors.Is(err, boom))
}

func TestPathUsesHomeDirectory(t *testing.T) {
	if runtime.GOOS == OSWindows {
		t.Skip("HOME is not authoritative on windows")
	}
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", "")
	homedir.DisableCache = true
	defer func() { homedir.DisableCache = false }()

	have, err := Path("ndastro")
	require.NoError(t, err)
	assert.Contains(t, have, home)
	assert.Equal(t, "ndastro", filepath.Base(have))

	file, err := File("ndastro", "config.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(have, "config.yaml"), file)

	expanded, err := Expand("~/x")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "x"), expanded)
}
