// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/work-diary/internal/client"
	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/MKhiriev/work-diary/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("work-diary-client")
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	factory := func(ctx context.Context, opts client.Options) (client.Client, error) {
		return client.Build(ctx, opts, log)
	}

	if err := client.Execute(context.Background(), factory, build, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Err(err).Msg("client command failed")
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
