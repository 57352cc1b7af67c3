package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	require.NoError(t, writeServerFixture(home))

	stdout, stderr, err := runSlotguard(t, binaryPath, home, "gui", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "forge")

	_, stderr, err = runSlotguard(t, binaryPath, home, "ledger", "deposit", "steve", "30")
	require.NoError(t, err, "stderr: %s", stderr)

	scenario := filepath.Join(home, "forge.yaml")
	require.NoError(t, os.WriteFile(scenario, []byte(`
name: forge smoke
user: steve
gui: forge
inventory:
  - slot: 4
    item: ruby
    amount: 40
steps:
  - shift: {slot: 4}
    expect:
      slots:
        10: {item: ruby, amount: 16}
        11: {item: ruby, amount: 16}
      inventory:
        4: {item: ruby, amount: 8}
  - shift: {slot: 4}
    expect:
      rejected: capacity
      notice: already full
`), 0o644))

	stdout, stderr, err = runSlotguard(t, binaryPath, home, "simulate", "--persist", scenario)
	require.NoError(t, err, "stdout: %s\nstderr: %s", stdout, stderr)
	assert.Contains(t, stdout, "result: passed")

	stdout, stderr, err = runSlotguard(t, binaryPath, home, "ledger", "balance", "steve")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "steve: 30.00")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "slotguard-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/slotguard")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build slotguard binary: %s", string(output))
	return binaryPath
}

func runSlotguard(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeServerFixture(home string) error {
	configDir := filepath.Join(home, ".slotguard")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	guis := `version = 1

[[guis]]
key = "forge"
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
`

	items := `items:
  - id: ruby
    material: RED_DYE
    name: Ruby
`

	if err := os.WriteFile(filepath.Join(configDir, "guis.toml"), []byte(guis), 0o644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(configDir, "items.yaml"), []byte(items), 0o644)
}
