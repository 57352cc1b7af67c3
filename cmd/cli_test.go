package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuiListShowsCatalogue(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeServerFixture(home))

	stdout, _, err := executeCLI(t, home, "gui", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "guis: 2")
	assert.Contains(t, stdout, "forge")
	assert.Contains(t, stdout, "rows=3 mapped=5 special=3 buttons=1")
	assert.Contains(t, stdout, "EnderLink")
}

func TestGuiListWithoutCatalogue(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "gui", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No GUIs configured.")
}

func TestGuiShowRendersLayout(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeServerFixture(home))

	stdout, _, err := executeCLI(t, home, "gui", "show", "FORGE")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Gem Forge")
	assert.Contains(t, stdout, "[B]")
	assert.Contains(t, stdout, "[#]")
	assert.Contains(t, stdout, "ruby_slot")
	assert.Contains(t, stdout, "0/32")
}

func TestGuiShowUnknownGui(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeServerFixture(home))

	_, _, err := executeCLI(t, home, "gui", "show", "anvil")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gui not found")
}

func TestLedgerDepositThenBalance(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "ledger", "deposit", "steve", "40")
	require.NoError(t, err)
	assert.Contains(t, stdout, "steve: 40.00")

	_, _, err = executeCLI(t, home, "ledger", "deposit", "alex", "2.5")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "ledger", "balance")
	require.NoError(t, err)
	assert.Contains(t, stdout, "alex: 2.50")
	assert.Contains(t, stdout, "steve: 40.00")

	stdout, _, err = executeCLI(t, home, "ledger", "balance", "nobody")
	require.NoError(t, err)
	assert.Contains(t, stdout, "nobody: 0.00")
}

func TestLedgerDepositRejectsBadAmounts(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "ledger", "deposit", "steve", "lots")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parse amount "lots"`)

	_, _, err = executeCLI(t, home, "ledger", "deposit", "steve", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount must be positive")
}

func TestLedgerBalanceEmpty(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "ledger", "balance")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No accounts.")
}

func TestSimulateUsesScratchLedgerByDefault(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeServerFixture(home))
	path := writeScenario(t, home, "offering.yaml", offeringScenario)

	stdout, _, err := executeCLI(t, home, "simulate", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "scenario: offering")
	assert.Contains(t, stdout, "result: passed")
	assert.Contains(t, stdout, "balance: 15.00")
	assert.Contains(t, stdout, "has been consumed from the slot")

	stdout, _, err = executeCLI(t, home, "ledger", "balance")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No accounts.")
}

func TestSimulatePersistWritesLedger(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeServerFixture(home))
	path := writeScenario(t, home, "offering.yaml", offeringScenario)

	_, _, err := executeCLI(t, home, "simulate", "--persist", path)
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "ledger", "balance", "steve")
	require.NoError(t, err)
	assert.Contains(t, stdout, "steve: 15.00")
}

func TestSimulateReportsFailures(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeServerFixture(home))
	path := writeScenario(t, home, "broken.yaml", `
name: broken
user: steve
gui: forge
inventory:
  - slot: 0
    item: ruby
    amount: 3
steps:
  - shift: {slot: 0}
    expect:
      slots:
        10: {item: ruby, amount: 4}
`)

	stdout, _, err := executeCLI(t, home, "simulate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `scenario "broken" failed`)
	assert.Contains(t, stdout, "FAIL")
	assert.Contains(t, stdout, "slot 10: want ruby x4, got ruby x3")
}

func TestSimulateRejectsInvalidScenario(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeServerFixture(home))
	path := writeScenario(t, home, "invalid.yaml", "gui: forge\n")

	_, _, err := executeCLI(t, home, "simulate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenario user is empty")
}

func TestPagesShowAfterEnderlinkClose(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeServerFixture(home))
	path := writeScenario(t, home, "stash.yaml", `
name: stash
user: steve
gui: EnderLink
cursor: {item: ruby, amount: 5}
steps:
  - click: {slot: 0, action: place_all}
  - click: {slot: 53, action: pickup_all}
    expect:
      invoked: [next_page]
  - close: true
`)

	_, _, err := executeCLI(t, home, "simulate", "--persist", path)
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "pages", "show", "steve")
	require.NoError(t, err)
	assert.Contains(t, stdout, "page: 0")
	assert.Contains(t, stdout, "stored: 0")
	assert.Contains(t, stdout, "slot  0: Ruby x5")
	assert.NotContains(t, stdout, "slot 53")
}

func TestPagesShowUnknownUser(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "pages", "show", "steve", "--page", "2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "page: 2")
	assert.Contains(t, stdout, "stored: none")
	assert.Contains(t, stdout, "No items stored.")
}

func TestVersionCommand(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestBrokenConfigSurfacesOnEveryCommand(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".slotguard")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "guis.toml"), []byte("version = 9\n"), 0o644))

	_, _, err := executeCLI(t, home)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported catalogue schema version 9")
}

const offeringScenario = `
name: offering
user: steve
gui: forge
balance: 25
cursor: {item: sapphire, amount: 1}
steps:
  - click: {slot: 13, action: place_all}
    expect:
      balance: 15
      slots:
        13: ~
  - tick: 1
    expect:
      cursor: {item: sapphire, amount: 0}
`

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeScenario(t *testing.T, home, name, content string) string {
	t.Helper()

	path := filepath.Join(home, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeServerFixture(home string) error {
	configDir := filepath.Join(home, ".slotguard")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	guis := `version = 1

[[guis]]
key = "forge"
title = "Gem Forge"
rows = 3

[[guis.slots]]
slot = 10
role = "ruby_slot"
item = "ruby"
max_amount = 16

[[guis.slots]]
slot = 11
role = "ruby_slot"
item = "ruby"
max_amount = 16

[[guis.slots]]
slot = 13
role = "offering_slot"
item = "sapphire"
consume_on_place = true
cost = 10

[[guis.slots]]
slot = 26
role = "craft"

[[guis.slots]]
slot = 0
role = "filler"

[[guis]]
key = "EnderLink"

[[guis.slots]]
slot = 53
role = "next_page"
`

	items := `items:
  - id: ruby
    material: RED_DYE
    name: Ruby
  - id: sapphire
    material: BLUE_DYE
    name: Sapphire
`

	if err := os.WriteFile(filepath.Join(configDir, "guis.toml"), []byte(guis), 0o644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(configDir, "items.yaml"), []byte(items), 0o644)
}
