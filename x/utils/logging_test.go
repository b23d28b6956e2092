package utils

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/vaulttest"
	"github.com/tendermint/tendermint/libs/log"
)

func TestLogging(t *testing.T) {
	cases := map[string]struct {
		check    bool
		handler  vault.Handler
		wantLine string
	}{
		"deliver success is info": {
			handler:  &vaulttest.Handler{DeliverResult: vault.DeliverResult{Log: "all good"}},
			wantLine: "I[",
		},
		"deliver failure is error": {
			handler:  &vaulttest.Handler{DeliverErr: errors.ErrUnauthorized},
			wantLine: "E[",
		},
		"check success is debug": {
			check:    true,
			handler:  &vaulttest.Handler{},
			wantLine: "D[",
		},
		"check failure is info": {
			check:    true,
			handler:  &vaulttest.Handler{CheckErr: errors.ErrAmount},
			wantLine: "I[",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var buf bytes.Buffer
			logger := log.NewTMLogger(log.NewSyncWriter(&buf))
			ctx := vault.WithLogger(context.Background(), logger)

			if tc.check {
				_, _ = NewLogging().Check(ctx, nil, &vaulttest.Tx{}, tc.handler)
			} else {
				_, _ = NewLogging().Deliver(ctx, nil, &vaulttest.Tx{}, tc.handler)
			}

			out := buf.String()
			if !strings.HasPrefix(out, tc.wantLine) {
				t.Fatalf("want log line starting with %q, got %q", tc.wantLine, out)
			}
			if !strings.Contains(out, "duration=") {
				t.Fatalf("duration not logged: %q", out)
			}
		})
	}
}
