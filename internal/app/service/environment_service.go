package service

import (
	"context"
	"fmt"

	"synthetics_deployer/internal/app/port"
	"synthetics_deployer/internal/domain/entity"
)

type runtimeEnvironment struct {
	def entity.NetworkDefinition
}

// NewRuntimeEnvironment wraps a network definition as the environment handed to deployment steps.
func NewRuntimeEnvironment(def entity.NetworkDefinition) port.RuntimeEnvironment {
	return runtimeEnvironment{def: def}
}

func (e runtimeEnvironment) NetworkName() string { return e.def.Identifier }

func (e runtimeEnvironment) Network() entity.NetworkDefinition { return e.def }

// EnvironmentService resolves network names into runtime environments.
type EnvironmentService struct {
	netDefs       port.NetworkDefinitionProvider
	clients       port.ChainClientProvider
	logger        port.Logger
	verifyChainID bool
}

// NewEnvironmentService creates an EnvironmentService. clients may be nil when verifyChainID is false.
func NewEnvironmentService(
	netDefs port.NetworkDefinitionProvider,
	clients port.ChainClientProvider,
	logger port.Logger,
	verifyChainID bool,
) *EnvironmentService {
	return &EnvironmentService{
		netDefs:       netDefs,
		clients:       clients,
		logger:        logger,
		verifyChainID: verifyChainID,
	}
}

// Environment returns the runtime environment for networkName.
// With chain id verification on, the node behind the network's RPC must report the configured chain id.
func (s *EnvironmentService) Environment(ctx context.Context, networkName string) (port.RuntimeEnvironment, error) {
	def, ok := s.netDefs.GetNetworkDefinitionByName(networkName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNetwork, networkName)
	}

	if s.verifyChainID && s.clients != nil {
		nodeChainID, err := s.clients.VerifiedChainID(ctx, def)
		if err != nil {
			s.logger.Error("Chain id verification failed", "network", networkName, "error", err)
			return nil, fmt.Errorf("verify chain id of %s: %w", networkName, err)
		}
		if nodeChainID != def.ChainID {
			return nil, fmt.Errorf("%w: network %s expects %d, node reports %d", ErrChainIDMismatch, networkName, def.ChainID, nodeChainID)
		}
	}

	s.logger.Debug("Runtime environment ready", "network", networkName, "chainId", def.ChainID)
	return NewRuntimeEnvironment(def), nil
}
