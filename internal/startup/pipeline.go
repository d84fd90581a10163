// Package startup runs the ordered, named stages that bring the process up.
// Each stage carries a policy deciding whether its failure stops the process.
package startup

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Policy decides what a stage failure means for the pipeline.
type Policy int

const (
	// Fatal failures stop the pipeline.
	Fatal Policy = iota
	// Recoverable failures are logged and the pipeline continues.
	Recoverable
)

func (p Policy) String() string {
	switch p {
	case Fatal:
		return "fatal"
	case Recoverable:
		return "recoverable"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Stage is one step of the startup sequence.
type Stage struct {
	Name   string
	Policy Policy
	Run    func(ctx context.Context) error
}

// Status is the outcome of a single stage.
type Status string

const (
	StatusOK      Status = "ok"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Result records what happened to a stage.
type Result struct {
	Stage    string
	Policy   Policy
	Status   Status
	Err      error
	Duration time.Duration
}

// Pipeline runs stages in the order they were added.
type Pipeline struct {
	stages []Stage
	logger *zap.Logger
}

func New(logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{logger: logger}
}

// Add appends a stage and returns the pipeline for chaining.
func (p *Pipeline) Add(name string, policy Policy, run func(ctx context.Context) error) *Pipeline {
	p.stages = append(p.stages, Stage{Name: name, Policy: policy, Run: run})
	return p
}

// Run executes every stage. It returns one result per stage; stages after a
// fatal failure are reported as skipped. The error is non-nil only when a
// fatal stage failed or ctx was cancelled.
func (p *Pipeline) Run(ctx context.Context) ([]Result, error) {
	results := make([]Result, 0, len(p.stages))
	var fatal error

	for _, stage := range p.stages {
		if fatal == nil {
			if err := ctx.Err(); err != nil {
				fatal = fmt.Errorf("startup cancelled before stage %q: %w", stage.Name, err)
			}
		}
		if fatal != nil {
			results = append(results, Result{Stage: stage.Name, Policy: stage.Policy, Status: StatusSkipped})
			continue
		}

		start := time.Now()
		err := stage.Run(ctx)
		res := Result{Stage: stage.Name, Policy: stage.Policy, Status: StatusOK, Err: err, Duration: time.Since(start)}

		if err != nil {
			res.Status = StatusFailed
			fields := []zap.Field{
				zap.String("stage", stage.Name),
				zap.Stringer("policy", stage.Policy),
				zap.Error(err),
			}
			if stage.Policy == Fatal {
				p.logger.Error("startup stage failed", fields...)
				fatal = fmt.Errorf("startup stage %q: %w", stage.Name, err)
			} else {
				p.logger.Warn("startup stage failed, continuing", fields...)
			}
		} else {
			p.logger.Info("startup stage completed",
				zap.String("stage", stage.Name),
				zap.Duration("took", res.Duration))
		}
		results = append(results, res)
	}
	return results, fatal
}
