package commands

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wsmith/huedo/internal/config"
	"github.com/wsmith/huedo/pkg/hue"
)

// rawCall records one Call invocation on the mock
type rawCall struct {
	method   string
	fragment string
	body     any
}

// mockClient is a recording hue.ClientInterface for command tests
type mockClient struct {
	lights map[string]hue.Light

	failWith error

	pairedUser    string
	pairedHubs    []string
	toggledLights []int
	toggledGroups []string
	stateUpdates  map[int]hue.StateUpdate
	rawCalls      []rawCall
	rawResponse   json.RawMessage
}

var _ hue.ClientInterface = (*mockClient)(nil)

func newMockClient() *mockClient {
	return &mockClient{
		lights:       make(map[string]hue.Light),
		stateUpdates: make(map[int]hue.StateUpdate),
		pairedUser:   "mockuser",
		rawResponse:  json.RawMessage(`{}`),
	}
}

func (m *mockClient) CreateUser(ctx context.Context, hubAddr string) (string, error) {
	if m.failWith != nil {
		return "", m.failWith
	}
	m.pairedHubs = append(m.pairedHubs, hubAddr)
	return m.pairedUser, nil
}

func (m *mockClient) GetLights(ctx context.Context) (map[string]hue.Light, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	return m.lights, nil
}

func (m *mockClient) GetLight(ctx context.Context, id int) (hue.Light, error) {
	if m.failWith != nil {
		return hue.Light{}, m.failWith
	}
	light, ok := m.lights[strconv.Itoa(id)]
	if !ok {
		return hue.Light{}, errors.New("light not found")
	}
	return light, nil
}

func (m *mockClient) LightIsOn(ctx context.Context, id int) (bool, error) {
	light, err := m.GetLight(ctx, id)
	return light.State.On, err
}

func (m *mockClient) ToggleLight(ctx context.Context, id int) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.toggledLights = append(m.toggledLights, id)
	return nil
}

func (m *mockClient) ToggleGroup(ctx context.Context, name string) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.toggledGroups = append(m.toggledGroups, name)
	return nil
}

func (m *mockClient) SetLightState(ctx context.Context, id int, update hue.StateUpdate) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.stateUpdates[id] = update
	return nil
}

func (m *mockClient) Call(ctx context.Context, method, fragment string, body any) (json.RawMessage, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.rawCalls = append(m.rawCalls, rawCall{method: method, fragment: fragment, body: body})
	return m.rawResponse, nil
}

// testContext builds a command context holding the mock client and a
// config backed by a throwaway file.
func testContext(t *testing.T, mock *mockClient) (context.Context, *config.Config) {
	t.Helper()
	cfg, err := config.Load(filepath.Join(t.TempDir(), config.ConfigFilename))
	require.NoError(t, err)

	ctx := context.WithValue(context.Background(), ClientContextKey, mock)
	ctx = context.WithValue(ctx, ConfigContextKey, cfg)
	return ctx, cfg
}
