package restapi

import (
	"context"
	"errors"
	"net/http"

	"synthetics_deployer/internal/app/port"
	"synthetics_deployer/internal/app/service"
	"synthetics_deployer/internal/config"
	"synthetics_deployer/internal/domain/entity"
	"synthetics_deployer/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// EnvironmentResolver resolves a network name into a runtime environment.
type EnvironmentResolver interface {
	Environment(ctx context.Context, networkName string) (port.RuntimeEnvironment, error)
}

// Planner evaluates deployment steps for an environment.
type Planner interface {
	Plan(ctx context.Context, env port.RuntimeEnvironment, tags []string) ([]entity.StepPlan, error)
}

// DeploymentHandler serves network and deployment plan endpoints.
type DeploymentHandler struct {
	netDefs port.NetworkDefinitionProvider
	envs    EnvironmentResolver
	planner Planner
	logger  port.Logger
}

// NetworkResponse is a network definition annotated with its production deployment status.
type NetworkResponse struct {
	entity.NetworkDefinition
	ExistingMainnetDeployment bool `json:"existingMainnetDeployment"`
}

// PlanResponse lists the evaluated steps for one network.
type PlanResponse struct {
	Network string            `json:"network"`
	Tags    []string          `json:"tags"`
	Steps   []entity.StepPlan `json:"steps"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewDeploymentHandler creates a new DeploymentHandler.
func NewDeploymentHandler(netDefs port.NetworkDefinitionProvider, envs EnvironmentResolver, planner Planner, logger port.Logger) *DeploymentHandler {
	return &DeploymentHandler{
		netDefs: netDefs,
		envs:    envs,
		planner: planner,
		logger:  logger,
	}
}

func toNetworkResponse(def entity.NetworkDefinition) NetworkResponse {
	return NetworkResponse{
		NetworkDefinition:         def,
		ExistingMainnetDeployment: config.IsExistingMainnetNetwork(def.Identifier),
	}
}

// ListNetworksHandler handles GET /api/v1/networks.
func (h *DeploymentHandler) ListNetworksHandler(c *gin.Context) {
	defs := h.netDefs.GetAllNetworkDefinitions()
	resp := make([]NetworkResponse, 0, len(defs))
	for _, def := range defs {
		resp = append(resp, toNetworkResponse(def))
	}
	c.JSON(http.StatusOK, resp)
}

// GetNetworkHandler handles GET /api/v1/networks/:network.
func (h *DeploymentHandler) GetNetworkHandler(c *gin.Context) {
	name := c.Param("network")
	def, ok := h.netDefs.GetNetworkDefinitionByName(name)
	if !ok {
		c.JSON(http.StatusNotFound, errorResponse{Error: "unknown network: " + name})
		return
	}
	c.JSON(http.StatusOK, toNetworkResponse(def))
}

// GetPlanHandler handles GET /api/v1/networks/:network/plan?tags=WNT,DataStore.
func (h *DeploymentHandler) GetPlanHandler(c *gin.Context) {
	name := c.Param("network")
	tags := utils.SplitTags(c.QueryArray("tags")...)

	env, err := h.envs.Environment(c.Request.Context(), name)
	if err != nil {
		h.writeError(c, name, err)
		return
	}

	steps, err := h.planner.Plan(c.Request.Context(), env, tags)
	if err != nil {
		h.writeError(c, name, err)
		return
	}

	c.JSON(http.StatusOK, PlanResponse{Network: env.NetworkName(), Tags: tags, Steps: steps})
}

func (h *DeploymentHandler) writeError(c *gin.Context, network string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrUnknownNetwork):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrChainIDMismatch):
		status = http.StatusBadGateway
	}
	if status == http.StatusInternalServerError {
		h.logger.Error("Plan request failed", "network", network, "error", err)
	}
	c.JSON(status, errorResponse{Error: err.Error()})
}
