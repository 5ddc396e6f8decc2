package config

import (
	"testing"

	"synthetics_deployer/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

type fakeEnv string

func (e fakeEnv) NetworkName() string { return string(e) }

func (e fakeEnv) Network() entity.NetworkDefinition {
	return entity.NetworkDefinition{Identifier: string(e)}
}

func TestIsExistingMainnetDeployment(t *testing.T) {
	for _, name := range []string{"arbitrum", "avalanche", "botanix", "mantle"} {
		assert.True(t, IsExistingMainnetDeployment(fakeEnv(name)), name)
	}
	for _, name := range []string{"mantleSepolia", "ethereum", "", "Arbitrum", " mantle", "arbitrumSepolia"} {
		assert.False(t, IsExistingMainnetDeployment(fakeEnv(name)), name)
	}
}

func TestExistingMainnetDeploymentsIsACopy(t *testing.T) {
	list := ExistingMainnetDeployments()
	assert.Equal(t, []string{"arbitrum", "avalanche", "botanix", "mantle"}, list)

	list[0] = "ethereum"
	assert.False(t, IsExistingMainnetNetwork("ethereum"))
	assert.True(t, IsExistingMainnetNetwork("arbitrum"))
	assert.Equal(t, "arbitrum", ExistingMainnetDeployments()[0])
}
