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
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"udconv/cnf"
	"udconv/deprel"
	"udconv/general"
	"udconv/tagset"
)

const (
	redisConnectionTestTimeout = 120 * time.Second
)

var (
	version   string
	buildDate string
	gitCommit string
)

type service interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
}

func getEnv(name string) string {
	for _, p := range os.Environ() {
		items := strings.Split(p, "=")
		if len(items) == 2 && items[0] == name {
			return items[1]
		}
	}
	return ""
}

func getRequestOrigin(ctx *gin.Context) string {
	currOrigin, ok := ctx.Request.Header["Origin"]
	if ok {
		return currOrigin[0]
	}
	return ""
}

func additionalLogEvents() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		logging.AddLogEvent(ctx, "userAgent", ctx.Request.UserAgent())
		logging.AddLogEvent(ctx, "tag", ctx.Param("tag"))
		ctx.Next()
	}
}

func CORSMiddleware(conf *cnf.Conf) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if strings.HasSuffix(ctx.Request.URL.Path, "/openapi") {
			ctx.Header("Access-Control-Allow-Origin", "*")
			ctx.Header("Access-Control-Allow-Methods", "GET")
			ctx.Header("Access-Control-Allow-Headers", "Content-Type")

		} else {
			var allowedOrigin string
			currOrigin := getRequestOrigin(ctx)
			for _, origin := range conf.CorsAllowedOrigins {
				if currOrigin == origin {
					allowedOrigin = origin
					break
				}
			}
			if allowedOrigin != "" {
				ctx.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
				ctx.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
				ctx.Writer.Header().Set(
					"Access-Control-Allow-Headers",
					"Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With",
				)
				ctx.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
			}

			if ctx.Request.Method == "OPTIONS" {
				ctx.AbortWithStatus(204)
				return
			}
		}
		ctx.Next()
	}
}

func AuthRequired(conf *cnf.Conf) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if len(conf.AuthHeaderName) > 0 && !collections.SliceContains(conf.AuthTokens, ctx.GetHeader(conf.AuthHeaderName)) {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		}
		ctx.Next()
	}
}

func cleanVersionInfo(v string) string {
	return strings.TrimLeft(strings.Trim(v, "'"), "v")
}

// loadRelationTable provides the label partition table shared by all
// actions, either the configured custom one or the built-in.
func loadRelationTable(conf *cnf.Conf) *deprel.Table {
	if path := conf.RelationTablePath(); path != "" {
		table, err := deprel.LoadTable(path)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load relation table")
		}
		log.Info().Str("file", path).Msg("using custom relation table")
		return table
	}
	return deprel.DefaultTable()
}

func main() {
	version := general.VersionInfo{
		Version:   cleanVersionInfo(version),
		BuildDate: cleanVersionInfo(buildDate),
		GitCommit: cleanVersionInfo(gitCommit),
	}

	confPath := flag.String("conf", "", "a configuration file (required by the server, worker and test actions)")
	tagsOnly := flag.Bool("tags-only", false, "convert just tags, keep original syntactic relations (convert action)")
	metaPath := flag.String("meta", "", "a JSON metadata file attached to a single file conversion (convert action)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "UDCONV - a converter of dependency annotations to Universal Dependencies\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n\t%s [options] convert source dest\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] validate source\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s -conf config.json server\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s -conf config.json worker\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s -conf config.json test\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s version\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	action := flag.Arg(0)
	if action == "version" {
		fmt.Printf("udconv %s\nbuild date: %s\nlast commit: %s\n", version.Version, version.BuildDate, version.GitCommit)
		return
	}

	var conf *cnf.Conf
	switch action {
	case "convert", "validate":
		if *confPath != "" {
			conf = cnf.LoadConfig(*confPath)

		} else {
			conf = cnf.DefaultConfig()
		}
	default:
		conf = cnf.LoadConfig(*confPath)
	}

	if action == "worker" {
		var wPath string
		if conf.LogFile != "" {
			wPath = filepath.Join(filepath.Dir(conf.LogFile), "worker.log")
		}
		logging.SetupLogging(logging.LoggingConf{Path: wPath, Level: conf.LogLevel})
		log.Logger = log.Logger.With().Str("worker", getWorkerID()).Logger()

	} else if action == "test" {
		cnf.ValidateAndDefaults(conf)
		log.Info().Msg("config OK")
		return

	} else {
		logging.SetupLogging(logging.LoggingConf{Path: conf.LogFile, Level: conf.LogLevel})
	}

	if err := tagset.ValidateSchema(); err != nil {
		log.Fatal().Err(err).Msg("invalid tagset schema")
		return
	}

	log.Info().Msg("Starting UDCONV")
	cnf.ValidateAndDefaults(conf)

	switch action {
	case "convert":
		runConvert(conf, flag.Arg(1), flag.Arg(2), *tagsOnly, *metaPath)
	case "validate":
		runValidate(flag.Arg(1))
	case "server":
		runApiServer(conf, version)
	case "worker":
		runWorker(conf)
	default:
		log.Fatal().Msgf("Unknown action %s", action)
	}

}
