package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"synthetics_deployer/internal/app/port"
	"synthetics_deployer/internal/domain/entity"

	"github.com/ethereum/go-ethereum/ethclient"
)

// ErrNoRPCURL is returned when a network definition has no RPC endpoint to dial.
var ErrNoRPCURL = errors.New("no RPC URL configured")

// EVMClient implements the port.ChainClient interface for EVM-compatible chains.
type EVMClient struct {
	ethClient      *ethclient.Client
	netDef         entity.NetworkDefinition
	rpcCallTimeout time.Duration
}

// NewEVMClient dials the primary RPC URL of netDef, then each fallback in order, returning the first that connects.
func NewEVMClient(netDef entity.NetworkDefinition, connectionTimeout time.Duration, rpcCallTimeout time.Duration) (port.ChainClient, error) {
	rpcURLs := netDef.RPCURLs()
	if len(rpcURLs) == 0 {
		return nil, fmt.Errorf("network %s: %w", netDef.Identifier, ErrNoRPCURL)
	}

	var lastErr error
	for _, rpcURL := range rpcURLs {
		ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
		client, err := ethclient.DialContext(ctx, rpcURL)
		cancel()

		if err == nil {
			return &EVMClient{ethClient: client, netDef: netDef, rpcCallTimeout: rpcCallTimeout}, nil
		}
		lastErr = fmt.Errorf("failed to connect to RPC %s: %w", rpcURL, err)
	}

	return nil, fmt.Errorf("all RPC connection attempts failed for network %s: %w", netDef.Name, lastErr)
}

// ChainID returns the chain id reported by the node.
func (c *EVMClient) ChainID(ctx context.Context) (uint64, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.rpcCallTimeout)
	defer cancel()

	id, err := c.ethClient.ChainID(callCtx)
	if err != nil {
		return 0, fmt.Errorf("eth_chainId failed for %s: %w", c.netDef.Identifier, err)
	}
	if !id.IsUint64() {
		return 0, fmt.Errorf("chain id %s reported by %s does not fit uint64", id, c.netDef.Identifier)
	}
	return id.Uint64(), nil
}

// Definition returns the network definition for this client.
func (c *EVMClient) Definition() entity.NetworkDefinition {
	return c.netDef
}
