package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"synthetics_deployer/internal/app/port"
	"synthetics_deployer/internal/config"
	"synthetics_deployer/internal/domain/entity"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// DialFunc creates a chain client for a network definition.
type DialFunc func(netDef entity.NetworkDefinition, connectionTimeout, rpcCallTimeout time.Duration) (port.ChainClient, error)

// evmClientProvider implements the port.ChainClientProvider interface.
type evmClientProvider struct {
	clients           map[string]port.ChainClient
	mu                sync.Mutex
	logger            port.Logger
	dial              DialFunc
	chainIDs          *cache.Cache
	limiter           *rate.Limiter
	connectionTimeout time.Duration
	rpcCallTimeout    time.Duration
}

// NewEVMClientProvider creates a new EVMClientProvider dialing with NewEVMClient.
func NewEVMClientProvider(cfg *config.Config, logger port.Logger) port.ChainClientProvider {
	return NewEVMClientProviderWithDialer(cfg, logger, NewEVMClient)
}

// NewEVMClientProviderWithDialer is NewEVMClientProvider with a custom dialer.
func NewEVMClientProviderWithDialer(cfg *config.Config, logger port.Logger, dial DialFunc) port.ChainClientProvider {
	return &evmClientProvider{
		clients: make(map[string]port.ChainClient),
		logger:  logger,
		dial:    dial,
		chainIDs: cache.New(
			time.Duration(cfg.Cache.DefaultExpirationMinutes)*time.Minute,
			time.Duration(cfg.Cache.CleanupIntervalMinutes)*time.Minute,
		),
		limiter:           rate.NewLimiter(rate.Limit(cfg.RpcClient.RateLimit), cfg.RpcClient.BurstLimit),
		connectionTimeout: time.Duration(cfg.RpcClient.DialTimeoutMs) * time.Millisecond,
		rpcCallTimeout:    time.Duration(cfg.RpcClient.DefaultTimeoutMs) * time.Millisecond,
	}
}

// GetClient retrieves a chain client for the given network definition.
// It caches clients to avoid reconnecting repeatedly.
func (p *evmClientProvider) GetClient(netDef entity.NetworkDefinition) (port.ChainClient, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	clientKey := netDef.Identifier
	if client, exists := p.clients[clientKey]; exists {
		p.logger.Debug("Returning cached EVM client", "network", netDef.Identifier)
		return client, nil
	}

	p.logger.Info("Creating new EVM client", "network", netDef.Identifier, "rpc_primary", netDef.PrimaryRPCURL)
	newClient, err := p.dial(netDef, p.connectionTimeout, p.rpcCallTimeout)
	if err != nil {
		p.logger.Error("Failed to create EVM client", "network", netDef.Identifier, "error", err)
		return nil, fmt.Errorf("failed to create EVM client for %s: %w", netDef.Identifier, err)
	}

	p.clients[clientKey] = newClient
	return newClient, nil
}

// VerifiedChainID returns the node chain id, reading it at most once per cache expiration window.
func (p *evmClientProvider) VerifiedChainID(ctx context.Context, netDef entity.NetworkDefinition) (uint64, error) {
	if cached, found := p.chainIDs.Get(netDef.Identifier); found {
		if id, ok := cached.(uint64); ok {
			return id, nil
		}
	}

	client, err := p.GetClient(netDef)
	if err != nil {
		return 0, err
	}
	if err := p.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("rate limiter wait for %s: %w", netDef.Identifier, err)
	}

	id, err := client.ChainID(ctx)
	if err != nil {
		return 0, err
	}
	p.chainIDs.Set(netDef.Identifier, id, cache.DefaultExpiration)
	p.logger.Debug("Chain id read from node", "network", netDef.Identifier, "chainId", id)
	return id, nil
}
