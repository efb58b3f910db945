// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the process-wide, single-threaded configuration
// consulted by both the kernel (numeric precision, recursion bound) and
// the infix shell built on top of it (prompt, number base, debug flags).
package config // import "gocas.dev/gocas/config"

import (
	"math/big"
	"math/rand"
	"time"
)

// DefaultDigits is the number of decimal digits of precision a Config
// uses for arbitrary-precision floats when none has been set.
const DefaultDigits = 17

// DefaultMaxRecursion bounds eval/expand/subs/diff/normal/series
// recursion. Exceeding it raises a runtime error (see expr.ErrRuntime).
const DefaultMaxRecursion = 100000

// A Config holds information about the configuration of the system.
// The zero value of a Config holds the default values for all settings.
type Config struct {
	prompt       string
	format       string
	ratFormat    string
	origin       int
	bigOrigin    *big.Int
	digits       int
	maxRecursion int
	debug        map[string]bool
	source       rand.Source
	random       *rand.Rand
	// Bases: 0 means C-like, base 10 with 037 for octal and 0x10 for hex.
	inputBase  int
	outputBase int
}

func (c *Config) init() {
	if c.random == nil {
		c.source = rand.NewSource(time.Now().Unix())
		c.random = rand.New(c.source)
	}
}

func (c *Config) Format() string {
	if c == nil {
		return ""
	}
	return c.format
}

func (c *Config) RatFormat() string {
	if c == nil || c.ratFormat == "" {
		return "%v/%v"
	}
	return c.ratFormat
}

func (c *Config) SetFormat(s string) {
	c.format = s
	if s == "" {
		c.ratFormat = "%v/%v"
	} else {
		c.ratFormat = s + "/" + s
	}
}

func (c *Config) Debug(s string) bool {
	if c == nil {
		return false
	}
	return c.debug[s]
}

func (c *Config) SetDebug(s string, state bool) {
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[s] = state
}

func (c *Config) Origin() int {
	if c == nil {
		return 0
	}
	return c.origin
}

func (c *Config) BigOrigin() *big.Int {
	if c == nil {
		return big.NewInt(0)
	}
	return c.bigOrigin
}

func (c *Config) SetOrigin(origin int) {
	c.origin = origin
	c.bigOrigin = big.NewInt(int64(origin))
}

func (c *Config) Prompt() string {
	return c.prompt
}

func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

func (c *Config) Random() *rand.Rand {
	c.init()
	return c.random
}

func (c *Config) RandomSeed(seed int64) {
	c.init()
	c.source.Seed(seed)
}

func (c *Config) Base() (int, int) {
	if c == nil {
		return 0, 0
	}
	return c.inputBase, c.outputBase
}

func (c *Config) InputBase() int {
	if c == nil {
		return 0
	}
	return c.inputBase
}

func (c *Config) OutputBase() int {
	if c == nil {
		return 0
	}
	return c.outputBase
}

func (c *Config) SetBase(inputBase, outputBase int) {
	c.inputBase = inputBase
	c.outputBase = outputBase
}

// Digits returns the number of decimal digits of precision used for
// arbitrary-precision floats.
func (c *Config) Digits() int {
	if c == nil || c.digits == 0 {
		return DefaultDigits
	}
	return c.digits
}

// SetDigits sets the float precision in decimal digits. digits <= 0
// restores the default.
func (c *Config) SetDigits(digits int) {
	if digits <= 0 {
		digits = DefaultDigits
	}
	c.digits = digits
}

// FloatPrecision converts Digits into a bit count suitable for
// big.Float.SetPrec: about 3.32 bits per decimal digit plus a guard
// band so round-tripping a Digits-digit decimal doesn't lose its last
// digit to rounding.
func (c *Config) FloatPrecision() uint {
	return uint(c.Digits())*332/100 + 8
}

// MaxRecursion returns the recursion bound every rewrite (eval, expand,
// subs, diff, normal, series) must respect.
func (c *Config) MaxRecursion() int {
	if c == nil || c.maxRecursion == 0 {
		return DefaultMaxRecursion
	}
	return c.maxRecursion
}

// SetMaxRecursion sets the recursion bound. n <= 0 restores the default.
func (c *Config) SetMaxRecursion(n int) {
	if n <= 0 {
		n = DefaultMaxRecursion
	}
	c.maxRecursion = n
}
