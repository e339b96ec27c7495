// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of UDCONV.
//
//  UDCONV is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  UDCONV is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with UDCONV.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"udconv/cnf"
	"udconv/monitoring"
	monitoringHandlers "udconv/monitoring/handlers"
	"udconv/rdb"
	"udconv/worker"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func getWorkerID() (workerID string) {
	workerID = getEnv("WORKER_ID")
	if workerID == "" {
		workerID = strconv.Itoa(os.Getpid())
	}
	return
}

// -------

type NullStatusWriter struct{}

func (n *NullStatusWriter) Write(rec rdb.JobLog) {}

// -------

// workerStatusServer exposes job statistics of a single worker
// process over HTTP.
type workerStatusServer struct {
	server *http.Server
	conf   *cnf.Conf
	logger *monitoring.WorkerJobLogger
}

func (api *workerStatusServer) Start(ctx context.Context) {
	if !api.conf.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logging.GinMiddleware())
	engine.Use(uniresp.AlwaysJSONContentType())
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	mActions := monitoringHandlers.NewActions(api.logger, api.conf.TimezoneLocation())

	protected := engine.Group("/monitoring").Use(AuthRequired(api.conf))
	protected.GET("/workers", mActions.WorkersLoad)
	protected.GET("/workers/:workerId", mActions.SingleWorkerLoad)
	protected.GET("/recent-jobs", mActions.RecentRecords)

	log.Info().Msgf("starting to listen at %s:%d", api.conf.ListenAddress, api.conf.ListenPort)
	api.server = &http.Server{
		Handler:      engine,
		Addr:         fmt.Sprintf("%s:%d", api.conf.ListenAddress, api.conf.ListenPort),
		WriteTimeout: time.Duration(api.conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(api.conf.ServerReadTimeoutSecs) * time.Second,
	}
	go func() {
		if err := api.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("worker status server error")
		}
	}()
}

func (api *workerStatusServer) Stop(ctx context.Context) error {
	log.Warn().Msg("shutting down worker status server")
	return api.server.Shutdown(ctx)
}

// -------

func runWorker(conf *cnf.Conf) {
	workerID := getWorkerID()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := conf.Redis.ValidateAndDefaults(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
		return
	}
	radapter := rdb.NewAdapter(conf.Redis, ctx)

	err := radapter.TestConnection(redisConnectionTestTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	table := loadRelationTable(conf)

	services := make([]service, 0, 4)

	var statusWriter monitoring.StatusWriter
	if conf.StatusDB != nil {
		tsWriter, err := monitoring.NewTimescaleDBWriter(
			ctx, conf.StatusDB.DB, conf.TimezoneLocation())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize status writer")
			return
		}
		statusWriter = tsWriter
		services = append(services, tsWriter)

	} else {
		log.Info().Msg("status database not configured, job stats will be kept in memory only")
		statusWriter = &NullStatusWriter{}
	}

	jobLogger := monitoring.NewWorkerJobLogger(statusWriter, conf.TimezoneLocation())
	services = append(services, jobLogger)

	ch := radapter.Subscribe()
	wrk := worker.NewWorker(workerID, radapter, table, ch, jobLogger)
	services = append(services, wrk)

	if conf.ListenAddress != "" && conf.ListenPort > 0 {
		services = append(services, &workerStatusServer{conf: conf, logger: jobLogger})

	} else {
		log.Warn().Msg("listen address/port not configured, worker status server disabled")
	}

	for _, m := range services {
		m.Start(ctx)
	}
	<-ctx.Done()
	log.Warn().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	for _, s := range services {
		wg.Add(1)
		go func(srv service) {
			defer wg.Done()
			if err := srv.Stop(shutdownCtx); err != nil {
				log.Error().Err(err).Type("service", srv).Msg("Error shutting down service")
			}
		}(s)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info().Msg("Graceful shutdown completed")
	case <-shutdownCtx.Done():
		log.Warn().Msg("Shutdown timed out")
	}
}
