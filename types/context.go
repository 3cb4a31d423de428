package types

import (
	"github.com/alex/strum/config"
	"github.com/alex/strum/logger"
)

// ProcessContext carries the shared state of one scan-and-generate run.
type ProcessContext struct {
	Config     *config.Config
	Logger     logger.Logger
	ModulePath string // module path of the project being scanned
}
