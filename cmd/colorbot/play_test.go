package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveSeed(t *testing.T) {
	now := func() time.Time { return time.Unix(0, 12345) }

	assert.Equal(t, int64(42), resolveSeed(42, now))
	assert.Equal(t, int64(12345), resolveSeed(0, now))
}
