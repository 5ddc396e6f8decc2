// Package deploy declares deployment steps in the shape consumed by the external deployment runner:
// a contract name, a stable id, an argument producer, a skip predicate, tags and dependencies.
package deploy

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"synthetics_deployer/internal/app/port"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ArgsFunc produces constructor arguments for the active network.
type ArgsFunc func(ctx context.Context, env port.RuntimeEnvironment) ([]any, error)

// SkipFunc decides whether a step is bypassed on the active network.
type SkipFunc func(ctx context.Context, env port.RuntimeEnvironment) (bool, error)

// Options configures CreateDeployFunction.
type Options struct {
	ContractName  string
	ID            string // defaults to ContractName
	GetDeployArgs ArgsFunc
	ABI           string // contract ABI JSON, used to encode constructor arguments
}

// DeployFunction is a declarative deployment step.
type DeployFunction struct {
	ContractName  string
	ID            string
	GetDeployArgs ArgsFunc
	Skip          SkipFunc
	Tags          []string
	Dependencies  []string

	abi *abi.ABI
}

// CreateDeployFunction builds a deploy function with no tags, no dependencies and a skip predicate that never skips.
func CreateDeployFunction(opts Options) (*DeployFunction, error) {
	if strings.TrimSpace(opts.ContractName) == "" {
		return nil, fmt.Errorf("%w: contract name is required", ErrInvalidDescriptor)
	}

	fn := &DeployFunction{
		ContractName:  opts.ContractName,
		ID:            opts.ID,
		GetDeployArgs: opts.GetDeployArgs,
		Tags:          []string{},
		Dependencies:  []string{},
	}
	if fn.ID == "" {
		fn.ID = opts.ContractName
	}
	if fn.GetDeployArgs == nil {
		fn.GetDeployArgs = NoArgs
	}

	if opts.ABI != "" {
		parsed, err := abi.JSON(strings.NewReader(opts.ABI))
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse %s abi: %v", ErrInvalidDescriptor, opts.ContractName, err)
		}
		fn.abi = &parsed
	}

	return fn, nil
}

// NoArgs is the argument producer of a contract whose constructor takes no inputs.
func NoArgs(context.Context, port.RuntimeEnvironment) ([]any, error) {
	return []any{}, nil
}

// OnlyOn returns a skip predicate that runs the step on the named network and skips it everywhere else.
func OnlyOn(networkName string) SkipFunc {
	return func(_ context.Context, env port.RuntimeEnvironment) (bool, error) {
		return env.NetworkName() != networkName, nil
	}
}

// ShouldSkip evaluates the skip predicate. A nil predicate never skips.
func (f *DeployFunction) ShouldSkip(ctx context.Context, env port.RuntimeEnvironment) (bool, error) {
	if f.Skip == nil {
		return false, nil
	}
	skip, err := f.Skip(ctx, env)
	if err != nil {
		return false, fmt.Errorf("skip predicate of %s: %w", f.ID, err)
	}
	return skip, nil
}

// DeployArgs evaluates the argument producer, never returning a nil slice on success.
func (f *DeployFunction) DeployArgs(ctx context.Context, env port.RuntimeEnvironment) ([]any, error) {
	producer := f.GetDeployArgs
	if producer == nil {
		producer = NoArgs
	}
	args, err := producer(ctx, env)
	if err != nil {
		return nil, fmt.Errorf("deploy args of %s: %w", f.ID, err)
	}
	if args == nil {
		args = []any{}
	}
	return args, nil
}

// PackConstructorArgs ABI-encodes the constructor arguments for the active network.
func (f *DeployFunction) PackConstructorArgs(ctx context.Context, env port.RuntimeEnvironment) ([]byte, error) {
	args, err := f.DeployArgs(ctx, env)
	if err != nil {
		return nil, err
	}
	return f.EncodeArgs(args)
}

// EncodeArgs ABI-encodes args against the contract constructor.
func (f *DeployFunction) EncodeArgs(args []any) ([]byte, error) {
	if f.abi == nil {
		if len(args) > 0 {
			return nil, fmt.Errorf("%w: %s", ErrMissingABI, f.ContractName)
		}
		return []byte{}, nil
	}
	packed, err := f.abi.Pack("", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s constructor args: %w", f.ContractName, err)
	}
	return packed, nil
}

// HasAnyTag reports whether the step carries at least one of tags. An empty tags list matches every step.
func (f *DeployFunction) HasAnyTag(tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, tag := range tags {
		if slices.Contains(f.Tags, tag) {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with f.
func (f *DeployFunction) Clone() *DeployFunction {
	c := *f
	c.Tags = slices.Clone(f.Tags)
	c.Dependencies = slices.Clone(f.Dependencies)
	return &c
}
