package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/chainscript-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	vaultAddress     = "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
	vaultChecksummed = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
)

func TestVersionPrintsBuildVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestAddressAddRequiresAddressFlag(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "address", "add", "--name", "Vault")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"address\" not set")
}

func TestAddressAddListAndRemove(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "address", "add", "--id", "vault", "--name", "Vault", "--address", vaultAddress)
	require.NoError(t, err)
	assert.Equal(t, "saved vault\n", stdout)

	stdout, _, err = executeCLI(t, home, "address", "list")
	require.NoError(t, err)
	assert.Equal(t, "vault\tVault\t"+vaultAddress+"\n", stdout)

	_, err = os.Stat(filepath.Join(home, ".chainscript", "addressbook.toml"))
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "address", "remove", "vault")
	require.NoError(t, err)
	assert.Equal(t, "removed vault\n", stdout)

	stdout, _, err = executeCLI(t, home, "address", "list")
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestAddressRemoveUnknownEntryFails(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "address", "remove", "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAddressNotFound)
}

func TestAddressAddGeneratesIDWhenMissing(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "address", "add", "--address", vaultAddress)
	require.NoError(t, err)
	assert.Regexp(t, `^saved [0-9a-f-]{36}\n$`, stdout)
}

func TestIdentifiersListPlainWithAndWithoutPrefix(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home))

	_, _, err := executeCLI(t, home, "address", "add", "--id", "vault", "--name", "Vault", "--address", vaultAddress)
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "address", "add", "--id", "treasury", "--address", vaultAddress)
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "contract", "add",
		"--id", "voting",
		"--name", "voting",
		"--kind", "app",
		"--namespace", "aragonpm",
		"--address", vaultAddress,
	)
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "identifiers", "list", "--plain")
	require.NoError(t, err)
	assert.Equal(t,
		"$ops\talias\tOps\n"+
			"treasury\taddress\t"+vaultChecksummed+"\n"+
			"vault\taddress\tVault\n"+
			"voting\tapp\tvoting\n",
		stdout,
	)

	stdout, _, err = executeCLI(t, home, "identifiers", "list", "--plain", "--prefix")
	require.NoError(t, err)
	assert.Equal(t,
		"$ops\talias\t$Ops\n"+
			"treasury\taddress\t@"+vaultChecksummed+"\n"+
			"vault\taddress\t@Vault\n"+
			"voting\tapp\taragonpm:voting\n",
		stdout,
	)
}

func TestIdentifiersAliasSharingAddressIDIsKept(t *testing.T) {
	home := t.TempDir()
	configDir := filepath.Join(home, ".chainscript")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("[aliases]\nvault = \"Ops vault\"\n"), 0o644))

	_, _, err := executeCLI(t, home, "address", "add", "--id", "vault", "--name", "Vault", "--address", vaultAddress)
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "identifiers", "list", "--plain", "--prefix")
	require.NoError(t, err)
	assert.Equal(t, "$vault\talias\t$Ops vault\nvault\taddress\t@Vault\n", stdout)

	stdout, _, err = executeCLI(t, home, "identifiers", "resolve", "$vault")
	require.NoError(t, err)
	assert.Equal(t, "alias\tOps vault\n", stdout)
}

func TestIdentifiersListJSONOutput(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "address", "add", "--id", "vault", "--name", "Vault", "--address", vaultAddress)
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "identifiers", "list", "--json", "--prefix")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"ProviderID\": \"vault\"")
	assert.Contains(t, stdout, "\"Label\": \"@Vault\"")
}

func TestIdentifiersListRendersTable(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "address", "add", "--id", "vault", "--name", "Vault", "--address", vaultAddress)
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "identifiers", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "vault")
	assert.Contains(t, stdout, "Vault")
}

func TestIdentifiersListRejectsJSONWithPlain(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "identifiers", "list", "--json", "--plain")
	require.Error(t, err)
}

func TestIdentifiersResolveContractSharingIDWithAddress(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "address", "add", "--id", "token", "--name", "Token holder", "--address", vaultAddress)
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "contract", "add",
		"--id", "token",
		"--name", "ant",
		"--kind", "erc20",
		"--address", vaultAddress,
	)
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "identifiers", "resolve", "token", "--prefix")
	require.NoError(t, err)
	assert.Equal(t, "erc20\tlocal:ant\n", stdout)
}

func TestIdentifiersResolveUnknownProvider(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "identifiers", "resolve", "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProviderNotFound)
}

func TestContractList(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "contract", "add",
		"--id", "finance",
		"--name", "finance",
		"--kind", "app",
		"--address", vaultAddress,
	)
	require.NoError(t, err)
	assert.Equal(t, "registered finance (local:finance)\n", stdout)

	stdout, _, err = executeCLI(t, home, "contract", "list")
	require.NoError(t, err)
	assert.Equal(t, "finance\tlocal:finance\tapp\t"+vaultAddress+"\n", stdout)
}

func TestUnitsListAndConvert(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "units", "list")
	require.NoError(t, err)
	assert.Equal(t, "s\t1\nm\t60\nh\t3600\nd\t86400\nw\t604800\nmo\t2592000\ny\t31536000\n", stdout)

	stdout, _, err = executeCLI(t, home, "units", "convert", "3d")
	require.NoError(t, err)
	assert.Equal(t, "259200\n", stdout)

	_, _, err = executeCLI(t, home, "units", "convert", "3x")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownUnit)
	assert.Contains(t, err.Error(), "\"x\"")
}

func TestScriptAppendThenInspect(t *testing.T) {
	home := t.TempDir()
	script := filepath.Join(t.TempDir(), "vote.yaml")

	stdout, _, err := executeCLI(t, home, "script", "append", script, "--to", vaultAddress, "--data", "0xa9059cbb0000")
	require.NoError(t, err)
	assert.Equal(t, "appended call to "+vaultAddress+"\n", stdout)

	_, _, err = executeCLI(t, home, "script", "append", script, "--to", "not-an-address", "--data", "0x")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "script", "inspect", script)
	require.NoError(t, err)
	assert.Equal(t,
		"0\t"+vaultChecksummed+"\t6 bytes\t0xa9059cbb\n"+
			"1\tnot-an-address\t0 bytes\t\n",
		stdout,
	)

	stdout, _, err = executeCLI(t, home, "script", "inspect", script, "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"Selector\": \"0xa9059cbb\"")
}

func TestScriptInspectRejectsNonHexPayload(t *testing.T) {
	script := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(script, []byte(`{"version":1,"actions":[{"to":"0x01","data":"0xzz"}]}`), 0o600))

	_, _, err := executeCLI(t, t.TempDir(), "script", "inspect", script)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
	assert.Contains(t, err.Error(), "action 0")
}

func TestInvalidLogLevelFailsWiring(t *testing.T) {
	t.Setenv("CHAINSCRIPT_LOG_LEVEL", "loud")

	_, _, err := executeCLI(t, t.TempDir(), "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wire logger")
}

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

func writeConfigFixture(home string) error {
	configDir := filepath.Join(home, ".chainscript")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	config := `[aliases]
ops = "Ops"
`

	return os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(config), 0o644)
}
