package orchestration

import (
	"strings"

	"github.com/agbru/fibbench/internal/config"
	apperrors "github.com/agbru/fibbench/internal/errors"
	"github.com/agbru/fibbench/internal/fibonacci"
)

// GetCalculatorsToRun resolves the algorithm selection into calculators.
// "all" yields every registered calculator in sorted key order; otherwise
// the comma-separated keys are returned in the order given, duplicates
// dropped.
//
// Returns:
//   - []fibonacci.Calculator: the calculators to execute.
//   - error: a ConfigError naming the first unknown key.
func GetCalculatorsToRun(cfg config.AppConfig, factory fibonacci.CalculatorFactory) ([]fibonacci.Calculator, error) {
	keys := config.SplitAlgos(cfg.Algo)
	if len(keys) == 0 || (len(keys) == 1 && keys[0] == config.DefaultAlgo) {
		keys = factory.List()
	}

	seen := make(map[string]bool, len(keys))
	calculators := make([]fibonacci.Calculator, 0, len(keys))
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		calc, err := factory.Get(k)
		if err != nil {
			return nil, apperrors.NewConfigError("unrecognized algorithm: '%s'. Valid algorithms are: 'all' or [%s]", k, strings.Join(factory.List(), ", "))
		}
		calculators = append(calculators, calc)
	}
	return calculators, nil
}

// Job is one calculator paired with the index it computes.
type Job struct {
	Index      int
	Calculator fibonacci.Calculator
	N          uint64
}

// PlanJobs assigns naiveN to exponential calculators and n to every other.
func PlanJobs(calculators []fibonacci.Calculator, n, naiveN uint64) []Job {
	jobs := make([]Job, len(calculators))
	for i, calc := range calculators {
		jobN := n
		if calc.Traits().Exponential {
			jobN = naiveN
		}
		jobs[i] = Job{Index: i, Calculator: calc, N: jobN}
	}
	return jobs
}
