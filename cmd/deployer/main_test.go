package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"synthetics_deployer/internal/infrastructure/restapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPlanPrintsJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runPlan([]string{"-network", "mantleSepolia", "-tags", "WNT"}, &out))

	var plan restapi.PlanResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &plan))
	assert.Equal(t, "mantleSepolia", plan.Network)
	require.Len(t, plan.Steps, 1)
	assert.Equal(t, "WNT_mantleSepolia", plan.Steps[0].ID)
	assert.False(t, plan.Steps[0].Skipped)
}

func TestRunPlanWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	cfg := "logging:\n  level: error\nnetworks:\n  - name: localhost\n    chainID: 31337\n    endpoint: http://127.0.0.1:8545\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))

	var out bytes.Buffer
	require.NoError(t, runPlan([]string{"-config", path, "-network", "localhost"}, &out))

	var plan restapi.PlanResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &plan))
	require.Len(t, plan.Steps, 1)
	assert.True(t, plan.Steps[0].Skipped)
}

func TestRunPlanErrors(t *testing.T) {
	t.Setenv("DEPLOYER_NETWORK", "")
	var out bytes.Buffer
	assert.ErrorContains(t, runPlan(nil, &out), "-network is required")
	assert.Error(t, runPlan([]string{"-network", "ethereum"}, &out))
	assert.Error(t, runPlan([]string{"-config", "/does/not/exist.yml", "-network", "mantle"}, &out))
}
