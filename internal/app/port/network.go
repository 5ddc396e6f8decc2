package port

import (
	"context"

	"synthetics_deployer/internal/domain/entity"
)

// RuntimeEnvironment is what deployment steps see of the network they are run against.
type RuntimeEnvironment interface {
	// NetworkName returns the identifier of the active network, e.g. "mantleSepolia".
	NetworkName() string

	// Network returns the full definition of the active network.
	Network() entity.NetworkDefinition
}

// ChainClient defines the interface for reading chain identity from a network node.
type ChainClient interface {
	// ChainID returns the chain id reported by the node.
	ChainID(ctx context.Context) (uint64, error)

	// Definition returns the network definition associated with this client.
	Definition() entity.NetworkDefinition
}

// NetworkDefinitionProvider defines the interface for providing network definitions.
type NetworkDefinitionProvider interface {
	// GetAllNetworkDefinitions returns all available network definitions sorted by identifier.
	GetAllNetworkDefinitions() []entity.NetworkDefinition

	// GetNetworkDefinitionByName returns a specific network definition by its identifier.
	GetNetworkDefinitionByName(identifier string) (entity.NetworkDefinition, bool)
}

// ChainClientProvider defines the interface for providing chain clients.
type ChainClientProvider interface {
	GetClient(networkDefinition entity.NetworkDefinition) (ChainClient, error)

	// VerifiedChainID returns the node chain id, served from cache when it was read recently.
	VerifiedChainID(ctx context.Context, networkDefinition entity.NetworkDefinition) (uint64, error)
}
