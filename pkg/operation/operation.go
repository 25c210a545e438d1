// Package operation implements the batch rename passes over a project tree
package operation

import (
	"context"

	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/status"
	"github.com/walteh/renamerc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation defines a runnable unit of batch work
type Operation interface {
	// Name identifies the operation in logs
	Name() string
	// Execute runs the operation to completion
	Execute(ctx context.Context) error
}

// 🔧 Options contains the dependencies for building operations
type Options struct {
	// Config is the immutable run configuration
	Config *config.Config
	// Replacer applies the ordered rule set to file content
	Replacer text.Replacer
	// Reporter renders progress and the final summary
	Reporter *status.Reporter
}

// 🔍 validate checks that all required dependencies are present
func (opts Options) validate() error {
	if opts.Config == nil {
		return errors.Errorf("config is required")
	}
	if opts.Replacer == nil {
		return errors.Errorf("replacer is required")
	}
	if opts.Reporter == nil {
		return errors.Errorf("reporter is required")
	}
	return nil
}
