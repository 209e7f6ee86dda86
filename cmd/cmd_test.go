package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/dealtone/internal/card"
	"github.com/arcanaland/dealtone/internal/config"
	"github.com/arcanaland/dealtone/internal/hand"
)

// execute runs the root command with fresh XDG dirs and flag values
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(t.TempDir(), "data"))
	return run(t, stdin, args...)
}

// run executes the root command in the current XDG dirs
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	colorize.NoColor = true
	resetFlags(RootCmd)

	var stdout, stderr bytes.Buffer
	RootCmd.SetOut(&stdout)
	RootCmd.SetErr(&stderr)
	RootCmd.SetIn(strings.NewReader(stdin))
	RootCmd.SetArgs(args)

	err := RootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

// resetFlags restores flag defaults, which cobra keeps between executions
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestDealSingleCard(t *testing.T) {
	out, _, err := execute(t, "", "deal", "-n", "1", "--seed", "42")
	require.NoError(t, err)
	assert.Regexp(t, `^\S+ for \d+ points\.\n$`, out)
}

func TestDealIsDeterministicForSeed(t *testing.T) {
	first, _, err := execute(t, "", "deal", "-n", "1", "--seed", "7")
	require.NoError(t, err)
	second, _, err := execute(t, "", "deal", "-n", "1", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDealFullDeckBusts(t *testing.T) {
	out, _, err := execute(t, "", "deal", "-n", "52")
	assert.ErrorIs(t, err, hand.ErrBusted)
	assert.Equal(t, "Busted!\n", out)
}

func TestDealInvalidCount(t *testing.T) {
	out, _, err := execute(t, "", "deal", "-n", "53")
	assert.ErrorIs(t, err, hand.ErrInvalidCount)
	assert.Empty(t, out)
}

func TestDealUsesConfiguredCount(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(t.TempDir(), "data"))

	cfg := config.Default()
	cfg.Dealer.Count = 0
	require.NoError(t, config.Save(config.GetConfigFilePath(), cfg))

	out, _, err := run(t, "", "deal")
	require.NoError(t, err)
	assert.Equal(t, " for 0 points.\n", out)
}

func TestDealDebugLogging(t *testing.T) {
	_, logs, err := execute(t, "", "--log-level", "debug", "deal", "-n", "1")
	require.NoError(t, err)
	assert.Contains(t, logs, "Hand dealt")

	_, logs, err = execute(t, "", "deal", "-n", "1")
	require.NoError(t, err)
	assert.NotContains(t, logs, "Hand dealt")
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "", "--log-level", "loud", "deal")
	assert.ErrorContains(t, err, "unknown log level")
}

func TestScore(t *testing.T) {
	out, _, err := execute(t, "", "score", "K♠", "A♥")
	require.NoError(t, err)
	assert.Equal(t, "K♠ A♥ for 21 points.\n", out)

	out, _, err = execute(t, "", "score", "ks", "qh", "5c")
	require.NoError(t, err)
	assert.Equal(t, "K♠ Q♥ 5♣ for 25 points.\nBusted!\n", out)

	_, _, err = execute(t, "", "score", "1x")
	assert.ErrorIs(t, err, card.ErrInvalidCard)
}

func TestDialArguments(t *testing.T) {
	out, _, err := execute(t, "", "dial", "4085554321", "m03JKL1234")
	require.NoError(t, err)
	assert.Equal(t, "Dialing Marin (408-555-4321)...\nDialing Florent (603-555-1234)...\n", out)
}

func TestDialStdin(t *testing.T) {
	out, _, err := execute(t, "2175551212\n\n❤️234567890\n", "dial")
	require.NoError(t, err)
	assert.Equal(t, "Dialing Scott (217-555-1212)...\nContact not found for 023-456-7890\n", out)
}

func TestDialFill(t *testing.T) {
	out, _, err := execute(t, "", "dial", "--fill", "5", "408!!!4321")
	require.NoError(t, err)
	assert.Equal(t, "Dialing Marin (408-555-4321)...\n", out)

	_, _, err = execute(t, "", "dial", "--fill", "12", "408!!!4321")
	assert.Error(t, err)
}

func TestDialIncompleteNumber(t *testing.T) {
	out, _, err := execute(t, "", "dial", "408", "2125553434")
	assert.ErrorContains(t, err, "1 of 2 inputs could not be dialed")
	assert.Contains(t, out, `Cannot dial "408"`)
	assert.Contains(t, out, "Dialing Shai (212-555-3434)...")
}

func TestContactsListBuiltIn(t *testing.T) {
	out, _, err := execute(t, "", "contacts", "ls")
	require.NoError(t, err)
	assert.Equal(t, "Contacts (built-in):\n"+
		"  212-555-3434  Shai\n"+
		"  217-555-1212  Scott\n"+
		"  408-555-4321  Marin\n"+
		"  603-555-1234  Florent\n", out)
}

func TestInitThenUseContactsFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(t.TempDir(), "data"))

	out, _, err := run(t, "", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Contacts file initialized at: "+config.GetContactsFilePath())
	assert.FileExists(t, config.GetConfigFilePath())
	assert.FileExists(t, config.GetContactsFilePath())

	out, _, err = run(t, "", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Contacts file already exists")

	contacts := "[contacts]\n\"555-010-9999\" = \"Robin\"\n"
	require.NoError(t, os.WriteFile(config.GetContactsFilePath(), []byte(contacts), 0644))

	out, _, err = run(t, "", "contacts", "ls")
	require.NoError(t, err)
	assert.Equal(t, "Contacts ("+config.GetContactsFilePath()+"):\n  555-010-9999  Robin\n", out)

	out, _, err = run(t, "", "dial", "5550109999")
	require.NoError(t, err)
	assert.Equal(t, "Dialing Robin (555-010-9999)...\n", out)

	out, _, err = run(t, "", "contacts", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "✅")
}

func TestContactsValidateReportsErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.toml")
	content := "[contacts]\n\"4085554321\" = \"Marin\"\n\"217-555-1212\" = \"\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	out, _, err := execute(t, "", "contacts", "validate", path)
	assert.EqualError(t, err, "validation failed")
	assert.Contains(t, out, "has 2 validation errors:")
	assert.Contains(t, out, `1. invalid number "4085554321": expected NNN-NNN-NNNN`)
	assert.Contains(t, out, "2. contact 217-555-1212 has an empty name")
}

func TestContactsValidateMissingFile(t *testing.T) {
	_, _, err := execute(t, "", "contacts", "validate", filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "contacts file not found")
}

func TestExamples(t *testing.T) {
	out, _, err := execute(t, "", "examples", "--seed", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "\n---Example of Create a Blackjack card dealer---\n")
	assert.Contains(t, out, "\n---Example of Challenge: Transforming & Filtering operators---\n"+
		"Contact not found for 023-456-7890\n"+
		"Dialing Marin (408-555-4321)...\n"+
		"Dialing Scott (217-555-1212)...\n")
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, []string{""}, wrapText("", 20))
	assert.Equal(t, []string{"alpha beta", "gamma"}, wrapText("alpha beta gamma", 10))
	assert.Equal(t, []string{"supercalifragilistic"}, wrapText("supercalifragilistic", 10))
}
