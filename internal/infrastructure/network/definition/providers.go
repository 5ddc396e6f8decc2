package networkdefinition

import (
	"fmt"
	"sort"

	"synthetics_deployer/internal/app/port"
	"synthetics_deployer/internal/config"
	"synthetics_deployer/internal/domain/entity"
)

// NetworkDefinitionProvider provides network definitions.
type NetworkDefinitionProvider struct {
	logger         port.Logger
	allNetworkDefs map[string]entity.NetworkDefinition
}

// Predefined network definitions
var ( //nolint:gochecknoglobals // Global for definitions
	Arbitrum = entity.NetworkDefinition{
		ChainID:          42161,
		Name:             "Arbitrum One",
		Identifier:       "arbitrum",
		NativeSymbol:     "ETH",
		PrimaryRPCURL:    "https://arb1.arbitrum.io/rpc",
		FallbackRPCURLs:  []string{"https://arbitrum.llamarpc.com", "https://arbitrum.publicnode.com"},
		BlockExplorerURL: "https://arbiscan.io",
	}
	Avalanche = entity.NetworkDefinition{
		ChainID:          43114,
		Name:             "Avalanche C-Chain",
		Identifier:       "avalanche",
		NativeSymbol:     "AVAX",
		PrimaryRPCURL:    "https://api.avax.network/ext/bc/C/rpc",
		FallbackRPCURLs:  []string{"https://avalanche.public-rpc.com", "https://rpc.ankr.com/avalanche"},
		BlockExplorerURL: "https://snowtrace.io",
	}
	Botanix = entity.NetworkDefinition{
		ChainID:          3637,
		Name:             "Botanix Mainnet",
		Identifier:       "botanix",
		NativeSymbol:     "BTC",
		PrimaryRPCURL:    "https://rpc.botanixlabs.com",
		BlockExplorerURL: "https://botanixscan.io",
	}
	Mantle = entity.NetworkDefinition{
		ChainID:          5000,
		Name:             "Mantle",
		Identifier:       "mantle",
		NativeSymbol:     "MNT",
		PrimaryRPCURL:    "https://rpc.mantle.xyz",
		FallbackRPCURLs:  []string{"https://mantle.publicnode.com"},
		BlockExplorerURL: "https://mantlescan.xyz",
	}
	MantleSepolia = entity.NetworkDefinition{
		ChainID:          5003,
		Name:             "Mantle Sepolia",
		Identifier:       "mantleSepolia",
		NativeSymbol:     "MNT",
		PrimaryRPCURL:    "https://rpc.sepolia.mantle.xyz",
		BlockExplorerURL: "https://sepolia.mantlescan.xyz",
		Testnet:          true,
	}
)

// knownDefinitions returns a fresh map of the hardcoded definitions.
func knownDefinitions() map[string]entity.NetworkDefinition {
	defs := map[string]entity.NetworkDefinition{}
	for _, def := range []entity.NetworkDefinition{Arbitrum, Avalanche, Botanix, Mantle, MantleSepolia} {
		def.FallbackRPCURLs = append([]string(nil), def.FallbackRPCURLs...)
		defs[def.Identifier] = def
	}
	return defs
}

// NewNetworkDefinitionProvider creates a provider from the predefined networks, with config entries
// overriding fields of known networks or adding new ones.
func NewNetworkDefinitionProvider(log port.Logger, nodes []config.NetworkNode) *NetworkDefinitionProvider {
	p := &NetworkDefinitionProvider{
		logger:         log,
		allNetworkDefs: knownDefinitions(),
	}

	for _, node := range nodes {
		def, known := p.allNetworkDefs[node.Name]
		if !known {
			def = entity.NetworkDefinition{Identifier: node.Name, Name: node.Name}
			p.logger.Debug("Adding network from config", "network", node.Name)
		} else {
			p.logger.Debug("Overriding predefined network from config", "network", node.Name)
		}
		p.allNetworkDefs[node.Name] = mergeNode(def, node)
	}

	for identifier, def := range p.allNetworkDefs {
		if def.ChainID == 0 {
			p.logger.Warn(fmt.Sprintf("Network '%s' has no chain id; chain id verification will fail for it.", identifier))
		}
		if len(def.RPCURLs()) == 0 {
			p.logger.Warn(fmt.Sprintf("Network '%s' has no RPC URL configured.", identifier))
		}
	}

	p.logger.Info("NetworkDefinitionProvider initialized", "networks", len(p.allNetworkDefs))
	return p
}

func mergeNode(def entity.NetworkDefinition, node config.NetworkNode) entity.NetworkDefinition {
	if node.DisplayName != "" {
		def.Name = node.DisplayName
	}
	if node.ChainID != 0 {
		def.ChainID = node.ChainID
	}
	if node.NativeSymbol != "" {
		def.NativeSymbol = node.NativeSymbol
	}
	if node.Endpoint != "" {
		def.PrimaryRPCURL = node.Endpoint
	}
	if len(node.Fallbacks) > 0 {
		def.FallbackRPCURLs = append([]string(nil), node.Fallbacks...)
	}
	if node.Explorer != "" {
		def.BlockExplorerURL = node.Explorer
	}
	if node.Testnet {
		def.Testnet = true
	}
	return def
}

// GetAllNetworkDefinitions returns every known network definition sorted by identifier.
func (p *NetworkDefinitionProvider) GetAllNetworkDefinitions() []entity.NetworkDefinition {
	if p == nil {
		return []entity.NetworkDefinition{}
	}
	defs := make([]entity.NetworkDefinition, 0, len(p.allNetworkDefs))
	for _, def := range p.allNetworkDefs {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Identifier < defs[j].Identifier })
	return defs
}

// GetNetworkDefinitionByName returns a specific network definition by its identifier.
func (p *NetworkDefinitionProvider) GetNetworkDefinitionByName(identifier string) (entity.NetworkDefinition, bool) {
	if p == nil {
		return entity.NetworkDefinition{}, false
	}
	def, ok := p.allNetworkDefs[identifier]
	return def, ok
}

// GetNetworkDefinitionByChainID returns a specific network definition by its chain ID.
func (p *NetworkDefinitionProvider) GetNetworkDefinitionByChainID(chainID uint64) (entity.NetworkDefinition, bool) {
	if p == nil {
		return entity.NetworkDefinition{}, false
	}
	for _, def := range p.GetAllNetworkDefinitions() {
		if def.ChainID == chainID {
			return def, true
		}
	}
	return entity.NetworkDefinition{}, false
}
