package service

import (
	"context"
	"errors"
	"fmt"

	"synthetics_deployer/internal/app/port"
	"synthetics_deployer/internal/config"
	"synthetics_deployer/internal/deploy"
	"synthetics_deployer/internal/domain/entity"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

// PlanService evaluates registered deployment steps against a runtime environment.
type PlanService struct {
	registry      *deploy.Registry
	logger        port.Logger
	maxConcurrent int
	evaluated     *prometheus.CounterVec
}

// NewPlanService creates a PlanService. The step counter is registered with reg, reusing one that is already there.
func NewPlanService(registry *deploy.Registry, logger port.Logger, maxConcurrent int, reg prometheus.Registerer) (*PlanService, error) {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	evaluated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "deployer_steps_evaluated_total",
		Help: "Deployment steps evaluated, by network and outcome.",
	}, []string{"network", "result"})

	if err := reg.Register(evaluated); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, fmt.Errorf("register plan metrics: %w", err)
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, fmt.Errorf("register plan metrics: collector of unexpected type %T", are.ExistingCollector)
		}
		evaluated = existing
	}

	return &PlanService{
		registry:      registry,
		logger:        logger,
		maxConcurrent: maxConcurrent,
		evaluated:     evaluated,
	}, nil
}

// Plan evaluates every step carrying any of tags (all steps when tags is empty).
// Results keep registration order. Skipped steps do not have their arguments evaluated.
func (s *PlanService) Plan(ctx context.Context, env port.RuntimeEnvironment, tags []string) ([]entity.StepPlan, error) {
	functions := s.registry.Filter(tags)
	plans := make([]entity.StepPlan, len(functions))
	existingMainnet := config.IsExistingMainnetDeployment(env)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.maxConcurrent)

	for i, fn := range functions {
		eg.Go(func() error {
			plan := entity.StepPlan{
				ID:                        fn.ID,
				ContractName:              fn.ContractName,
				Network:                   env.NetworkName(),
				Tags:                      fn.Tags,
				Dependencies:              fn.Dependencies,
				ExistingMainnetDeployment: existingMainnet,
			}

			skip, err := fn.ShouldSkip(egCtx, env)
			if err != nil {
				return err
			}
			plan.Skipped = skip

			if !skip {
				args, err := fn.DeployArgs(egCtx, env)
				if err != nil {
					return err
				}
				packed, err := fn.EncodeArgs(args)
				if err != nil {
					return err
				}
				plan.ArgCount = len(args)
				plan.EncodedArgs = hexutil.Encode(packed)
			}

			plans[i] = plan
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		s.logger.Error("Failed to evaluate deployment plan", "network", env.NetworkName(), "error", err)
		return nil, err
	}

	for _, plan := range plans {
		result := "selected"
		if plan.Skipped {
			result = "skipped"
		}
		s.evaluated.WithLabelValues(plan.Network, result).Inc()
		s.logger.Debug("Deployment step evaluated", "id", plan.ID, "network", plan.Network, "result", result)
	}
	s.logger.Info("Deployment plan evaluated", "network", env.NetworkName(), "steps", len(plans))

	return plans, nil
}
