package logger

import "go.uber.org/zap"

// New builds the process logger. Components receive it through their
// constructors; nothing reads a package-level logger.
func New() *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return l
}
