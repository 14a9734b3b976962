package gorm_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	gormlogger "gorm.io/gorm/logger"

	adapter "github.com/northsupermart/storefront/internal/logger/adapter/gorm"
)

func TestTrace(t *testing.T) {
	fc := func() (string, int64) { return "SELECT * FROM products", 3 }

	testCases := []struct {
		name     string
		level    gormlogger.LogLevel
		slow     time.Duration
		begin    time.Time
		err      error
		contains string
	}{
		{
			name:     "error is logged",
			level:    gormlogger.Warn,
			begin:    time.Now(),
			err:      errors.New("connection refused"),
			contains: "query failed",
		},
		{
			name:  "record not found is not an error",
			level: gormlogger.Warn,
			begin: time.Now(),
			err:   gormlogger.ErrRecordNotFound,
		},
		{
			name:     "slow query warns",
			level:    gormlogger.Warn,
			slow:     time.Millisecond,
			begin:    time.Now().Add(-time.Second),
			contains: "slow query",
		},
		{
			name:  "fast query silent at warn level",
			level: gormlogger.Warn,
			slow:  time.Hour,
			begin: time.Now(),
		},
		{
			name:     "info level traces every query",
			level:    gormlogger.Info,
			begin:    time.Now(),
			contains: "SELECT * FROM products",
		},
		{
			name:  "silent drops errors",
			level: gormlogger.Silent,
			begin: time.Now(),
			err:   errors.New("boom"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer

			l := adapter.New(tc.slow).
				WithLogger(zerolog.New(&buf).Level(zerolog.TraceLevel)).
				LogMode(tc.level)

			l.Trace(context.Background(), tc.begin, fc, tc.err)

			if tc.contains == "" {
				assert.Empty(t, buf.String())
				return
			}

			assert.Contains(t, buf.String(), tc.contains)
		})
	}
}

func TestInfoWarnError(t *testing.T) {
	var buf bytes.Buffer

	l := adapter.New(0).WithLogger(zerolog.New(&buf).Level(zerolog.TraceLevel)).LogMode(gormlogger.Error)

	l.Info(context.Background(), "info %d", 1)
	l.Warn(context.Background(), "warn %d", 2)
	assert.Empty(t, buf.String())

	l.Error(context.Background(), "error %d", 3)
	assert.Contains(t, buf.String(), "error 3")
}
