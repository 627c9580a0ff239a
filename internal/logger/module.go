package logger

import "go.uber.org/fx"

// Module provides the application logger.
var Module = fx.Provide(New)
