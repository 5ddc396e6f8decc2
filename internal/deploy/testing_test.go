package deploy

import "synthetics_deployer/internal/domain/entity"

type fakeEnv string

func (e fakeEnv) NetworkName() string { return string(e) }

func (e fakeEnv) Network() entity.NetworkDefinition {
	return entity.NetworkDefinition{Identifier: string(e)}
}
