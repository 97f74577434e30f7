package cache

import "time"

// Config holds configuration for the Redis cache.
type Config struct {
	// Addr is the Redis server address.
	Addr string `mapstructure:"addr" default:"localhost:6379"`
	// Password is the Redis password.
	Password string `mapstructure:"password" default:""`
	// DB is the Redis database index.
	DB int `mapstructure:"db" default:"0"`
	// DefaultMinutes is the fallback TTL in minutes.
	DefaultMinutes int `mapstructure:"default_minutes" default:"30"`
	// ShortMinutes is the TTL for near-real-time data (live channel catalogs).
	ShortMinutes int `mapstructure:"short_minutes" default:"1"`
	// LongMinutes is the TTL for near-static data (user ids, editor lists).
	LongMinutes int `mapstructure:"long_minutes" default:"60"`
}

// DefaultTTL returns the fallback expiry tier.
func (c Config) DefaultTTL() time.Duration {
	return minutesOr(c.DefaultMinutes, 30)
}

// ShortTTL returns the expiry tier for near-real-time data.
func (c Config) ShortTTL() time.Duration {
	return minutesOr(c.ShortMinutes, 1)
}

// LongTTL returns the expiry tier for near-static data.
func (c Config) LongTTL() time.Duration {
	return minutesOr(c.LongMinutes, 60)
}

func minutesOr(minutes, fallback int) time.Duration {
	if minutes <= 0 {
		minutes = fallback
	}
	return time.Duration(minutes) * time.Minute
}
