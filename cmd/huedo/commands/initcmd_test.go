package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wsmith/huedo/internal/errors"
)

func TestInitCommand(t *testing.T) {
	mock := newMockClient()
	mock.pairedUser = "abc"
	ctx, _ := testContext(t, mock)

	cmd := newInitCommand()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"192.168.1.2"})

	out := captureStdout(func() {
		require.NoError(t, cmd.Execute())
	})

	assert.Equal(t, []string{"192.168.1.2"}, mock.pairedHubs)
	assert.Contains(t, out, "Paired with bridge 192.168.1.2 as abc")
}

func TestInitCommandPairingRejected(t *testing.T) {
	mock := newMockClient()
	mock.failWith = errors.Pairingf("link button not pressed")
	ctx, _ := testContext(t, mock)

	cmd := newInitCommand()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"192.168.1.2"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorContains(t, err, "link button not pressed")
	assert.True(t, errors.IsPairing(err))
}

func TestInitCommandRequiresHubIP(t *testing.T) {
	mock := newMockClient()
	ctx, _ := testContext(t, mock)

	cmd := newInitCommand()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Empty(t, mock.pairedHubs)
}
