/*
Copyright © 2025 Daniel Rivas <danielrivasmd@gmail.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/
package cmd

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielRivasMD/horus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/DanielRivasMD/Razor/data"
	"github.com/DanielRivasMD/Razor/site"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

const shutdownGrace = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "Serve the documentation site",
	Long:    helpServe,
	Example: exampleServe,

	Run: runServe,
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&flags.addr, "addr", "a", ":8080", "Listen address")
	serveCmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "Reload data files when they change")
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func runServe(cmd *cobra.Command, args []string) {
	store := openStore("serve")

	srv, err := site.New(cfg.Site, store, logger.Named("site"))
	horus.CheckErr(err, horus.WithOp("serve.site"), horus.WithMessage("building site"))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpSrv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", cfg.Server.Addr), zap.Bool("watch", cfg.Server.Watch))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		logger.Info("shutting down")
		return httpSrv.Shutdown(shutdownCtx)
	})
	if cfg.Server.Watch {
		g.Go(func() error {
			return data.Watch(ctx, store, logger.Named("watch"), nil)
		})
	}

	horus.CheckErr(g.Wait(), horus.WithOp("serve"), horus.WithCategory("server_error"), horus.WithMessage("serving site"))
}

////////////////////////////////////////////////////////////////////////////////////////////////////
