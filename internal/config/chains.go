package config

import (
	"slices"

	"synthetics_deployer/internal/app/port"
)

// Networks that already carry a production deployment.
var existingMainnetDeployments = []string{"arbitrum", "avalanche", "botanix", "mantle"} //nolint:gochecknoglobals // fixed allowlist

// ExistingMainnetDeployments returns the allowlist of networks with production deployments, in declaration order.
func ExistingMainnetDeployments() []string {
	return slices.Clone(existingMainnetDeployments)
}

// IsExistingMainnetDeployment reports whether the environment's network already has a production deployment.
func IsExistingMainnetDeployment(env port.RuntimeEnvironment) bool {
	return IsExistingMainnetNetwork(env.NetworkName())
}

// IsExistingMainnetNetwork is IsExistingMainnetDeployment for a bare network name.
func IsExistingMainnetNetwork(networkName string) bool {
	return slices.Contains(existingMainnetDeployments, networkName)
}
