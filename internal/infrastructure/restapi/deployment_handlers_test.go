package restapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"synthetics_deployer/internal/app/port"
	"synthetics_deployer/internal/app/service"
	"synthetics_deployer/internal/config"
	"synthetics_deployer/internal/deploy"
	"synthetics_deployer/internal/domain/entity"
	networkdefinition "synthetics_deployer/internal/infrastructure/network/definition"
	"synthetics_deployer/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type failingResolver struct{ err error }

func (r failingResolver) Environment(context.Context, string) (port.RuntimeEnvironment, error) {
	return nil, r.err
}

func newTestRouter(t *testing.T, envs EnvironmentResolver) *gin.Engine {
	t.Helper()
	log := logger.NewNop()
	netDefs := networkdefinition.NewNetworkDefinitionProvider(log, nil)
	if envs == nil {
		envs = service.NewEnvironmentService(netDefs, nil, log, false)
	}
	reg := prometheus.NewRegistry()
	planner, err := service.NewPlanService(deploy.DefaultRegistry, log, 2, reg)
	require.NoError(t, err)

	handler := NewDeploymentHandler(netDefs, envs, planner, log)
	return SetupRouter(handler, config.Default().Server, reg)
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListNetworks(t *testing.T) {
	rec := get(t, newTestRouter(t, nil), "/api/v1/networks")
	require.Equal(t, http.StatusOK, rec.Code)

	var networks []NetworkResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &networks))
	require.Len(t, networks, 5)

	flags := map[string]bool{}
	for _, n := range networks {
		flags[n.Identifier] = n.ExistingMainnetDeployment
	}
	assert.Equal(t, map[string]bool{
		"arbitrum":      true,
		"avalanche":     true,
		"botanix":       true,
		"mantle":        true,
		"mantleSepolia": false,
	}, flags)
}

func TestGetNetwork(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := get(t, router, "/api/v1/networks/mantle")
	require.Equal(t, http.StatusOK, rec.Code)
	var network NetworkResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &network))
	assert.Equal(t, uint64(5000), network.ChainID)
	assert.True(t, network.ExistingMainnetDeployment)

	rec = get(t, router, "/api/v1/networks/ethereum")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPlan(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := get(t, router, "/api/v1/networks/mantleSepolia/plan?tags=WNT")
	require.Equal(t, http.StatusOK, rec.Code)

	var plan PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
	assert.Equal(t, "mantleSepolia", plan.Network)
	assert.Equal(t, []string{"WNT"}, plan.Tags)
	require.Len(t, plan.Steps, 1)
	assert.Equal(t, entity.StepPlan{
		ID:           "WNT_mantleSepolia",
		ContractName: "WNT",
		Network:      "mantleSepolia",
		Tags:         []string{"WNT"},
		Dependencies: []string{"DataStore"},
		EncodedArgs:  "0x",
	}, plan.Steps[0])

	rec = get(t, router, "/api/v1/networks/mantle/plan")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
	require.Len(t, plan.Steps, 1)
	assert.True(t, plan.Steps[0].Skipped)
	assert.True(t, plan.Steps[0].ExistingMainnetDeployment)

	rec = get(t, router, "/api/v1/networks/mantle/plan?tags=Nothing")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
	assert.Empty(t, plan.Steps)
}

func TestGetPlanErrorStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: x", service.ErrUnknownNetwork), http.StatusNotFound},
		{fmt.Errorf("%w: x", service.ErrChainIDMismatch), http.StatusBadGateway},
		{fmt.Errorf("dial tcp: refused"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec := get(t, newTestRouter(t, failingResolver{err: tc.err}), "/api/v1/networks/mantle/plan")
		assert.Equal(t, tc.status, rec.Code, tc.err.Error())
	}

	rec := get(t, newTestRouter(t, nil), "/api/v1/networks/ethereum/plan")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := get(t, router, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)

	get(t, router, "/api/v1/networks/mantleSepolia/plan")
	rec = get(t, router, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "deployer_steps_evaluated_total")
}
