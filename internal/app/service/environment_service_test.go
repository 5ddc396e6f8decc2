package service

import (
	"context"
	"errors"
	"testing"

	"synthetics_deployer/internal/app/port"
	"synthetics_deployer/internal/domain/entity"
	networkdefinition "synthetics_deployer/internal/infrastructure/network/definition"
	"synthetics_deployer/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClientProvider struct {
	chainID uint64
	err     error
	calls   int
}

func (p *fakeClientProvider) GetClient(entity.NetworkDefinition) (port.ChainClient, error) {
	return nil, errors.New("not used")
}

func (p *fakeClientProvider) VerifiedChainID(context.Context, entity.NetworkDefinition) (uint64, error) {
	p.calls++
	return p.chainID, p.err
}

func TestEnvironmentResolvesKnownNetwork(t *testing.T) {
	netDefs := networkdefinition.NewNetworkDefinitionProvider(logger.NewNop(), nil)
	svc := NewEnvironmentService(netDefs, nil, logger.NewNop(), false)

	env, err := svc.Environment(context.Background(), "mantleSepolia")
	require.NoError(t, err)
	assert.Equal(t, "mantleSepolia", env.NetworkName())
	assert.Equal(t, uint64(5003), env.Network().ChainID)

	_, err = svc.Environment(context.Background(), "ethereum")
	assert.ErrorIs(t, err, ErrUnknownNetwork)
}

func TestEnvironmentVerifiesChainID(t *testing.T) {
	netDefs := networkdefinition.NewNetworkDefinitionProvider(logger.NewNop(), nil)

	clients := &fakeClientProvider{chainID: 5000}
	svc := NewEnvironmentService(netDefs, clients, logger.NewNop(), true)
	env, err := svc.Environment(context.Background(), "mantle")
	require.NoError(t, err)
	assert.Equal(t, "mantle", env.NetworkName())
	assert.Equal(t, 1, clients.calls)

	_, err = svc.Environment(context.Background(), "mantleSepolia")
	assert.ErrorIs(t, err, ErrChainIDMismatch)

	clients.err = errors.New("dial failed")
	_, err = svc.Environment(context.Background(), "mantle")
	assert.ErrorContains(t, err, "dial failed")
}

func TestEnvironmentSkipsVerificationWhenDisabled(t *testing.T) {
	netDefs := networkdefinition.NewNetworkDefinitionProvider(logger.NewNop(), nil)
	clients := &fakeClientProvider{chainID: 1}
	svc := NewEnvironmentService(netDefs, clients, logger.NewNop(), false)

	_, err := svc.Environment(context.Background(), "arbitrum")
	require.NoError(t, err)
	assert.Zero(t, clients.calls)
}
