// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"time"

	"github.com/bborbe/errors"
	libhttp "github.com/bborbe/http"
	"github.com/bborbe/run"
	libsentry "github.com/bborbe/sentry"
	"github.com/bborbe/service"
	"github.com/golang/glog"

	"github.com/bborbe/mcp_starter/pkg"
)

func main() {
	app := &application{}
	os.Exit(service.Main(context.Background(), app, &app.SentryDSN, &app.SentryProxy))
}

type application struct {
	SentryDSN   string `required:"false" arg:"sentry-dsn"   env:"SENTRY_DSN"   usage:"SentryDSN"            display:"length"`
	SentryProxy string `required:"false" arg:"sentry-proxy" env:"SENTRY_PROXY" usage:"Sentry Proxy"`
	Listen      string `required:"true"  arg:"listen"       env:"LISTEN"       usage:"address to listen to" default:":8000"`
	Stateless   bool   `required:"false" arg:"stateless"    env:"STATELESS"    usage:"do not issue session ids" default:"false"`

	SessionIdleTimeout time.Duration `required:"false" arg:"session-idle-timeout" env:"SESSION_IDLE_TIMEOUT" usage:"terminate sessions without requests for this long" default:"30m"`
}

func (a *application) Run(ctx context.Context, sentryClient libsentry.Client) error {
	metrics := pkg.NewMetrics()
	registry, err := pkg.NewToolRegistryWithDefaults(ctx, metrics)
	if err != nil {
		return errors.Wrapf(ctx, err, "create tool registry failed")
	}
	sessionIDManager := pkg.NewSessionIDManager(metrics, a.SessionIdleTimeout, pkg.DefaultMaxTerminatedSessions)
	mcpServer := pkg.NewMCPServer(registry)
	router := pkg.NewRouter(pkg.NewStreamableHTTPServer(mcpServer, sessionIDManager, a.Stateless))

	glog.Infof("serving tools %v on %s%s (stateless=%v)", registry.Names(), a.Listen, pkg.MCPPath, a.Stateless)
	return run.CancelOnFirstFinish(
		ctx,
		sessionIDManager.Run,
		libhttp.NewServer(a.Listen, router).Run,
	)
}
