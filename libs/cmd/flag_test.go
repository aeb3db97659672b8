package cmd

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagBuilder(t *testing.T) {
	first := &cobra.Command{Use: "first"}
	second := &cobra.Command{Use: "second"}

	NewFlagBuilder(first, second).
		Flag().String("flagbuilder-server", "http://localhost:8080", "server").
		Bind().
		Env("FLAGBUILDER_SERVER").
		Flag().Duration("flagbuilder-timeout", 0, "timeout").
		Bind().
		Flag().Bool("flagbuilder-interactive", true, "interactive")

	for _, command := range []*cobra.Command{first, second} {
		require.NotNil(t, command.Flags().Lookup("flagbuilder-server"))
		require.NotNil(t, command.Flags().Lookup("flagbuilder-timeout"))
		require.NotNil(t, command.Flags().Lookup("flagbuilder-interactive"))
	}

	assert.Equal(t, "http://localhost:8080", viper.GetString("flagbuilder-server"))

	t.Setenv("FLAGBUILDER_SERVER", "http://pacs008.internal")
	assert.Equal(t, "http://pacs008.internal", viper.GetString("flagbuilder-server"))

	require.NoError(t, second.Flags().Set("flagbuilder-timeout", "3s"))
	assert.Equal(t, 3*time.Second, viper.GetDuration("flagbuilder-timeout"))
}

func TestFlagBuilder_RequireKey(t *testing.T) {
	fb := NewFlagBuilder()
	assert.ErrorIs(t, fb.requireKey(), errNoKey)
	fb.Flag().String("flagbuilder-unbound", "", "")
	assert.NoError(t, fb.requireKey())
}
