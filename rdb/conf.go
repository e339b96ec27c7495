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

package rdb

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	dfltQueryAnswerTimeoutSecs = 60
)

// Conf configures the Redis connection shared by the API server
// and the conversion workers.
type Conf struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	DB       int    `json:"db"`
	Password string `json:"password"`

	// ChannelQuery is a pub/sub channel used to notify workers
	// about newly enqueued jobs.
	ChannelQuery string `json:"channelQuery"`

	// ChannelResultPrefix is a prefix of per-job channels results
	// are announced on (the suffix is a job UUID).
	ChannelResultPrefix string `json:"channelResultPrefix"`

	// QueryAnswerTimeoutSecs limits how long the API server waits
	// for a worker to deliver a result.
	QueryAnswerTimeoutSecs int `json:"queryAnswerTimeoutSecs"`

	// CachePath enables a file cache of finished results. Empty
	// value disables caching.
	CachePath string `json:"cachePath"`
}

func (conf *Conf) ValidateAndDefaults() error {
	if conf == nil {
		return fmt.Errorf("missing `redis` configuration section")
	}
	if conf.Host == "" {
		return fmt.Errorf("missing Redis configuration attribute `host`")
	}
	if conf.Port == 0 {
		return fmt.Errorf("missing Redis configuration attribute `port`")
	}
	if conf.QueryAnswerTimeoutSecs == 0 {
		conf.QueryAnswerTimeoutSecs = dfltQueryAnswerTimeoutSecs
		log.Warn().
			Int("value", conf.QueryAnswerTimeoutSecs).
			Msg("queryAnswerTimeoutSecs not specified, using default")
	}
	return nil
}

func (conf *Conf) QueryAnswerTimeout() time.Duration {
	return time.Duration(conf.QueryAnswerTimeoutSecs) * time.Second
}
