// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/agency-service/internal/config"
	"github.com/canonical/agency-service/pkg/authentication"
	"github.com/canonical/agency-service/pkg/rolesync"
	"github.com/canonical/agency-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	RunE: func(cmd *cobra.Command, args []string) error {
		specs, err := loadSpecs()
		if err != nil {
			return err
		}
		return serve(specs)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func verifier(ctx context.Context, specs *config.EnvSpec, b *backends) (authentication.TokenVerifierInterface, error) {
	if !specs.AuthenticationEnabled {
		b.logger.Info("Bearer authentication is disabled")
		return authentication.NewNoopVerifier(), nil
	}

	return authentication.NewJWTVerifier(
		ctx,
		authentication.Config{
			Issuer:          specs.OIDCIssuer,
			JWKSURL:         specs.OIDCJwksURL,
			AllowedSubjects: specs.OIDCAllowedSubjects,
			RequiredScope:   specs.OIDCRequiredScope,
		},
		b.tracer,
		b.monitor,
		b.logger,
	)
}

func serve(specs *config.EnvSpec) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b, err := newBackends(ctx, specs)
	if err != nil {
		return err
	}
	defer b.close()

	b.logger.Debugf("env vars: %v", specs)

	tokenVerifier, err := verifier(ctx, specs, b)
	if err != nil {
		return fmt.Errorf("failed to set up bearer authentication: %w", err)
	}

	worker := rolesync.NewWorker(b.roleSync, specs.RoleSyncSchedule, b.logger)
	if err := worker.Start(ctx); err != nil {
		return err
	}
	defer worker.Stop()

	router := web.NewRouter(
		web.Config{
			RootDomain:         specs.RootDomain,
			CORSAllowedOrigins: specs.CORSAllowedOrigins,
			SessionCookieName:  specs.SessionCookieName,
			LoginUIURL:         specs.LoginUIURL,
			InvitationLifetime: specs.InvitationLifetime,
			InviteRateLimit:    specs.InviteRateLimit,
			InviteRateBurst:    specs.InviteRateBurst,
		},
		b.storage,
		b.db,
		b.kratos,
		b.authorizer,
		b.roleSync,
		tokenVerifier,
		b.tracer,
		b.monitor,
		b.logger,
	)
	b.logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		b.logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	b.logger.Security().SystemShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	// abort a running role sync pass before the deferred worker stop
	cancel()

	return serverError
}
