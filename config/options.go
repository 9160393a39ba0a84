package config

import "time"

const (
	DefaultStart     uint  = 0
	DefaultStep      int   = 1
	DefaultSeparator       = "\t"
	DefaultLogLevel        = "info"
	DefaultCacheSize int64 = 64
)

var (
	InputLoadTimeout = 30 * time.Second
	InputConcurrency = 4
)
