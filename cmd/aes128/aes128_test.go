package main

import (
	"encoding/hex"
	"errors"
	"log/slog"
	"testing"

	"github.com/codahale/rijndael"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		key, block string
		isHex      bool
		want       string
	}{
		{"ascii", "Thats my Kung Fu", "Two One Nine Two", false, "29c3505f571420f6402299b31a02d73a"},
		{"hex", "2b7e151628aed2a6abf7158809cf4f3c", "3243f6a8885a308d313198a2e0370734", true, "3925841d02dc09fbdc118597196a0b32"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct, err := run(discard, tt.key, tt.block, tt.isHex, true)
			if err != nil {
				t.Fatal(err)
			}

			if got := hex.EncodeToString(ct); got != tt.want {
				t.Errorf("run(%q, %q) = %s, want = %s", tt.key, tt.block, got, tt.want)
			}
		})
	}
}

func TestRun_Errors(t *testing.T) {
	t.Run("short key", func(t *testing.T) {
		if _, err := run(discard, "short", "Two One Nine Two", false, false); !errors.Is(err, rijndael.ErrInvalidKeyLength) {
			t.Errorf("err = %v, want = %v", err, rijndael.ErrInvalidKeyLength)
		}
	})

	t.Run("long block", func(t *testing.T) {
		if _, err := run(discard, "Thats my Kung Fu", "Two One Nine Two!", false, false); !errors.Is(err, rijndael.ErrInvalidBlockLength) {
			t.Errorf("err = %v, want = %v", err, rijndael.ErrInvalidBlockLength)
		}
	})

	t.Run("bad hex", func(t *testing.T) {
		if _, err := run(discard, "zz", "00", true, false); err == nil {
			t.Error("run with invalid hex succeeded")
		}
	})
}

var discard = slog.New(slog.DiscardHandler) //nolint:gochecknoglobals // test logger
