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

// Package worker implements a conversion job consumer. Each worker
// polls the shared Redis queue, runs the requested conversion and
// publishes the result to the job's response channel.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"udconv/deprel"
	"udconv/rdb"
	"udconv/uderror"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	DefaultTickerInterval = 2 * time.Second
)

type jobLogger interface {
	Log(rec rdb.JobLog)
}

type recoveredError struct {
	error
}

type Worker struct {
	ID         string
	messages   <-chan *redis.Message
	radapter   *rdb.Adapter
	table      *deprel.Table
	ticker     time.Ticker
	jobLogger  jobLogger
	currJobLog *rdb.JobLog
}

func (w *Worker) publishResult(res rdb.FuncResult, channel string) error {
	ans, err := rdb.CreateWorkerResult(res)
	if err != nil {
		return err
	}
	var inputErr uderror.InputError
	ans.HasUserError = errors.As(res.Err(), &inputErr)
	if w.currJobLog != nil {
		ans.ProcBegin = w.currJobLog.Begin
		w.currJobLog.End = time.Now()
		w.currJobLog.Err = res.Err()
		ans.ProcEnd = w.currJobLog.End
		w.jobLogger.Log(*w.currJobLog)
		w.currJobLog = nil
	}
	return w.radapter.PublishResult(channel, ans)
}

func (w *Worker) sendPublishingErr(query rdb.Query, err error) {
	if err := w.publishResult(&rdb.ErrorResult{Func: query.Func, Error: err.Error()}, query.Channel); err != nil {
		log.Error().Err(err).Msg("failed to publish general publishing error")
	}
}

func (w *Worker) runQueryProtected(query rdb.Query) (ansErr error) {
	defer func() {
		if r := recover(); r != nil {
			ansErr = recoveredError{fmt.Errorf("recovered error: %v", r)}
			return
		}
	}()
	switch query.Func {
	case rdb.FuncConvert:
		var args rdb.ConversionArgs
		if err := json.Unmarshal(query.Args, &args); err != nil {
			ans := &rdb.ErrorResult{
				Error: fmt.Sprintf("failed to decode conversion args: %s", err),
				Func:  query.Func,
			}
			if err := w.publishResult(ans, query.Channel); err != nil {
				return err
			}
			return nil
		}
		ans := w.convertDocument(args)
		if err := w.publishResult(ans, query.Channel); err != nil {
			w.sendPublishingErr(query, err)
			return err
		}
	default:
		ans := &rdb.ErrorResult{Error: fmt.Sprintf("unknown query function: %s", query.Func)}
		if err := w.publishResult(ans, query.Channel); err != nil {
			return err
		}
	}
	return nil
}

func (w *Worker) tryNextQuery() error {

	time.Sleep(time.Duration(rand.Intn(40)) * time.Millisecond)
	query, err := w.radapter.DequeueQuery()
	if err == rdb.ErrorEmptyQueue {
		return nil

	} else if err != nil {
		return err
	}
	log.Debug().
		Str("channel", query.Channel).
		Str("func", query.Func).
		Any("args", query.Args).
		Msg("received query")

	isActive, err := w.radapter.SomeoneListens(query)
	if err != nil {
		return err
	}
	if !isActive {
		log.Warn().
			Str("func", query.Func).
			Str("channel", query.Channel).
			Any("args", query.Args).
			Msg("worker found an inactive query")
		return nil
	}

	w.currJobLog = &rdb.JobLog{
		WorkerID: w.ID,
		Func:     query.Func,
		Begin:    time.Now(),
	}

	err = w.runQueryProtected(query)
	var rcvErr recoveredError
	if errors.As(err, &rcvErr) {
		ans := &rdb.ErrorResult{
			Error: fmt.Sprintf("worker panicked: %s", rcvErr.Error()),
			Func:  query.Func,
		}
		if err := w.publishResult(ans, query.Channel); err != nil {
			return err
		}
	}
	return nil
}

func (w *Worker) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("worker exiting")
				return
			case <-w.ticker.C:
				if err := w.tryNextQuery(); err != nil {
					log.Error().Err(err).Msg("failed to process query")
				}
			case msg := <-w.messages:
				if msg.Payload == rdb.MsgNewQuery {
					if err := w.tryNextQuery(); err != nil {
						log.Error().Err(err).Msg("failed to process query")
					}
				}
			}
		}
	}()
}

func (w *Worker) Stop(ctx context.Context) error {
	log.Info().Str("workerId", w.ID).Msg("shutting down worker")
	w.ticker.Stop()
	return nil
}

func NewWorker(
	workerID string,
	radapter *rdb.Adapter,
	table *deprel.Table,
	messages <-chan *redis.Message,
	jobLogger jobLogger,
) *Worker {
	return &Worker{
		ID:        workerID,
		radapter:  radapter,
		table:     table,
		messages:  messages,
		ticker:    *time.NewTicker(DefaultTickerInterval),
		jobLogger: jobLogger,
	}
}
