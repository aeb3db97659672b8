package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errNoKey = errors.New("no flag defined, call a flag type method first")

// FlagBuilder defines flags on a set of commands and binds them into viper
//
//	NewFlagBuilder(command).
//		Flag().String("server", "http://localhost:8080", "server address").
//		Bind().
//		Env("PACS008_SERVER")
type FlagBuilder struct {
	commands []*cobra.Command
	key      string
}

// NewFlagBuilder creates a new FlagBuilder for the given commands
func NewFlagBuilder(commands ...*cobra.Command) *FlagBuilder {
	return &FlagBuilder{commands: commands}
}

// Flag resets the builder to allow for chaining
func (fb *FlagBuilder) Flag() *FlagBuilder {
	fb.key = ""
	return fb
}

// String attaches a string flag to the commands
func (fb *FlagBuilder) String(key string, defaultValue string, description string) *FlagBuilder {
	return fb.setKey(key).
		each(func(command *cobra.Command) {
			command.Flags().String(key, defaultValue, description)
		})
}

// Bool attaches a bool flag to the commands
func (fb *FlagBuilder) Bool(key string, defaultValue bool, description string) *FlagBuilder {
	return fb.setKey(key).
		each(func(command *cobra.Command) {
			command.Flags().Bool(key, defaultValue, description)
		})
}

// Duration attaches a duration flag to the commands
func (fb *FlagBuilder) Duration(key string, defaultValue time.Duration, description string) *FlagBuilder {
	return fb.setKey(key).
		each(func(command *cobra.Command) {
			command.Flags().Duration(key, defaultValue, description)
		})
}

// Bind binds the current flag to the viper key of the same name
func (fb *FlagBuilder) Bind() *FlagBuilder {
	Must(fb.requireKey())
	return fb.each(func(command *cobra.Command) {
		Must(viper.BindPFlag(fb.key, command.Flags().Lookup(fb.key)))
	})
}

// Env lets the environment variable env supply the current flag. Only
// explicitly bound variables are read, there is no automatic env lookup.
func (fb *FlagBuilder) Env(env string) *FlagBuilder {
	Must(fb.requireKey())
	Must(viper.BindEnv(fb.key, env))
	return fb
}

func (fb *FlagBuilder) setKey(key string) *FlagBuilder {
	if fb.key != "" {
		Must(fmt.Errorf("key has already been set to '%s' cannot set to '%s' try calling .Flag() before starting to define a new flag", fb.key, key))
	}
	fb.key = key
	return fb
}

func (fb *FlagBuilder) requireKey() error {
	if fb.key == "" {
		return errNoKey
	}
	return nil
}

func (fb *FlagBuilder) each(fn func(*cobra.Command)) *FlagBuilder {
	for _, command := range fb.commands {
		fn(command)
	}
	return fb
}

// Must helper to make sure there is no errors
func Must(err error) {
	if err != nil {
		log.Printf("failed to initialize: %s\n", err.Error())
		// exit with failure
		os.Exit(1)
	}
}
