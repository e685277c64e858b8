package commands_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/dispatch/cmd/dispatch/commands"
	"github.com/fivetwenty-io/dispatch/internal/constants"
	"github.com/fivetwenty-io/dispatch/pkg/dispatch"
)

func readConfigFile(t *testing.T, path string) commands.Config {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var config commands.Config

	require.NoError(t, yaml.Unmarshal(data, &config))

	return config
}

func TestNewConfigCommand(t *testing.T) {
	cmd := commands.NewConfigCommand()
	assert.Equal(t, "config", cmd.Use)
	assert.NotNil(t, findSubcommand(cmd, "show"))
	assert.NotNil(t, findSubcommand(cmd, "set"))
}

func TestConfigSetAndShow(t *testing.T) {
	configFile := newConfigFile(t)

	_, err := runCommand(t, configFile, "config", "set", "api", "https://api.example.com")
	require.NoError(t, err)

	_, err = runCommand(t, configFile, "config", "set", "token", "super-secret")
	require.NoError(t, err)

	_, err = runCommand(t, configFile, "config", "set", "timeout", "45s")
	require.NoError(t, err)

	saved := readConfigFile(t, configFile)
	assert.Equal(t, "https://api.example.com", saved.API)
	assert.Equal(t, "super-secret", saved.Token)
	assert.Equal(t, "45s", saved.Timeout)

	out, err := runCommand(t, configFile, "config", "show", "--output", "json")
	require.NoError(t, err)

	var shown commands.Config

	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, "https://api.example.com", shown.API)
	assert.Equal(t, constants.MaskedValue, shown.Token)
	assert.Equal(t, "45s", shown.Timeout)
}

func TestConfigSet_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr error
	}{
		{name: "unknown key", key: "colour", value: "blue", wantErr: constants.ErrUnknownConfigKey},
		{name: "bad output", key: "output", value: "xml", wantErr: constants.ErrInvalidOutputFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCommand(t, newConfigFile(t), "config", "set", tt.key, tt.value)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := runCommand(t, newConfigFile(t), "config", "set", "timeout", "soon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid timeout")
}

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/users/me", request.URL.Path)

		if request.Header.Get("Authorization") != "Bearer good-token" {
			writer.WriteHeader(http.StatusUnauthorized)

			return
		}

		writeJSON(writer, http.StatusOK, dispatch.User{ID: "user-1", Username: "ada"})
	}))
	defer server.Close()

	t.Run("token flag", func(t *testing.T) {
		configFile := newConfigFile(t)

		out, err := runCommand(t, configFile, "--api", server.URL, "--insecure", "--token", "good-token", "login")
		require.NoError(t, err)
		assert.Contains(t, out, "as ada")

		saved := readConfigFile(t, configFile)
		assert.Equal(t, server.URL, saved.API)
		assert.Equal(t, "good-token", saved.Token)
		assert.True(t, saved.Insecure)
	})

	t.Run("rejected token is not saved", func(t *testing.T) {
		configFile := newConfigFile(t)

		_, err := runCommand(t, configFile, "--api", server.URL, "--insecure", "--token", "bad-token", "login")
		require.Error(t, err)
		assert.True(t, dispatch.IsUnauthorized(err))

		_, statErr := os.Stat(configFile)
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestLogin_TokenFromInput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "Bearer piped-token", request.Header.Get("Authorization"))
		writeJSON(writer, http.StatusOK, dispatch.User{ID: "user-1", Username: "ada"})
	}))
	defer server.Close()

	configFile := newConfigFile(t)

	out, err := runCommandWithInput(t, configFile, strings.NewReader("piped-token\n"), "--api", server.URL, "--insecure", "login")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in")
	assert.Equal(t, "piped-token", readConfigFile(t, configFile).Token)
}

func TestLogin_RequiresAPI(t *testing.T) {
	t.Setenv("DISPATCH_API", "")

	_, err := runCommand(t, newConfigFile(t), "--token", "x", "login")
	require.ErrorIs(t, err, constants.ErrNoAPIConfigured)
}
