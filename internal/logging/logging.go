package logging

import "go.uber.org/zap"

// New builds the run logger: leveled console lines on stdout, where the
// operators tail it alongside the printed summary. Verbose keeps debug;
// the default floor is info.
func New(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stdout"}
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}
