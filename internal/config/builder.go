package config

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithHistoryCapacity sets the undo history capacity.
func (b *ConfigBuilder) WithHistoryCapacity(n int) *ConfigBuilder {
	b.cfg.HistoryCapacity = n
	return b
}

// WithDrawHalfmoveLimit sets the halfmove clock limit.
func (b *ConfigBuilder) WithDrawHalfmoveLimit(n int) *ConfigBuilder {
	b.cfg.DrawHalfmoveLimit = n
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogFormat sets the log format.
func (b *ConfigBuilder) WithLogFormat(format string) *ConfigBuilder {
	b.cfg.Log.Format = format
	return b
}

// WithLogFile sets the log file.
func (b *ConfigBuilder) WithLogFile(path string) *ConfigBuilder {
	b.cfg.Log.File = path
	return b
}

// WithEnginePath sets the engine binary.
func (b *ConfigBuilder) WithEnginePath(path string) *ConfigBuilder {
	b.cfg.Engine.Path = path
	return b
}

// WithEngineLimits sets the engine search limits.
func (b *ConfigBuilder) WithEngineLimits(depth, moveTimeMillis int) *ConfigBuilder {
	b.cfg.Engine.Depth = depth
	b.cfg.Engine.MoveTimeMillis = moveTimeMillis
	return b
}

// WithSquareSize sets the rendered square size.
func (b *ConfigBuilder) WithSquareSize(px int) *ConfigBuilder {
	b.cfg.Render.SquareSize = px
	return b
}

// WithPerftWorkers sets the parallel divide worker count.
func (b *ConfigBuilder) WithPerftWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}
