// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/bborbe/errors"
	libhttp "github.com/bborbe/http"
	"github.com/fatih/color"
	"github.com/golang/glog"

	"github.com/bborbe/mcp_starter/pkg"
)

const (
	defaultURL = "http://127.0.0.1:8000/mcp/"
)

func main() {
	url := flag.String("url", defaultURL, "MCP streamable HTTP endpoint")
	tool := flag.String("tool", "echo", "tool to call")
	arguments := flag.String("arguments", `{"text":"Hello from Go client"}`, "tool arguments as json object")
	timeout := flag.Duration("timeout", 30*time.Second, "timeout of each http request")
	flag.Parse()

	exitCode := 0
	if err := run(context.Background(), *url, *tool, *arguments, *timeout); err != nil {
		color.Red("%v\n", err)
		exitCode = 1
	}
	glog.Flush()
	os.Exit(exitCode)
}

func run(ctx context.Context, url string, tool string, arguments string, timeout time.Duration) error {
	var args map[string]any
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return errors.Wrapf(ctx, err, "invalid arguments")
	}

	httpClient, err := libhttp.NewClientBuilder().WithTimeout(timeout).Build(ctx)
	if err != nil {
		return errors.Wrapf(ctx, err, "build http client failed")
	}
	// the builder only bounds the dial, the whole exchange gets the same limit
	httpClient.Timeout = timeout
	defer httpClient.CloseIdleConnections()

	session := pkg.NewSession()
	sequencer := pkg.NewHandshakeSequencer(httpClient, url, pkg.Implementation{
		Name:    "http-client-manual",
		Version: "1.0",
	})
	result, err := sequencer.Run(ctx, session, tool, args)
	if err != nil {
		return errors.Wrapf(ctx, err, "handshake failed")
	}

	section := color.New(color.FgCyan)
	section.Println("Initialize response:")
	printResponse(result.Initialize)
	fmt.Printf("%s: %s\n", pkg.HeaderSessionID, session.SessionID())

	section.Println("\nTools/list response:")
	printResponse(result.Tools)

	section.Printf("\nTools/call (%s) response:\n", tool)
	printResponse(result.Call)
	return nil
}

func printResponse(response *pkg.Response) {
	if response == nil {
		color.Yellow("<empty>\n")
		return
	}
	content, err := json.Marshal(response)
	if err != nil {
		color.Red("marshal response failed: %v\n", err)
		return
	}
	var out bytes.Buffer
	if err := json.Indent(&out, content, "", "  "); err != nil {
		fmt.Println(string(content))
		return
	}
	fmt.Println(out.String())
}
