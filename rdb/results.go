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
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

const (
	ResultTypeConversion ResultType = "conversion"
	ResultTypeError      ResultType = "error"
)

type ResultType string

func (rt ResultType) String() string {
	return string(rt)
}

// ----------------

// FuncResult is a value a worker function produces for
// a dequeued job.
type FuncResult interface {
	Err() error
	Type() ResultType
}

// ErrorResult describes a job which failed before it could
// produce its regular result (unknown function, undecodable
// arguments, worker panic).
type ErrorResult struct {
	Error string `json:"error"`
	Func  string `json:"func"`
}

func (res ErrorResult) Err() error {
	if res.Error != "" {
		return errors.New(res.Error)
	}
	return nil
}

func (res ErrorResult) Type() ResultType {
	return ResultTypeError
}

// ----------------

// WorkerResult wraps a serialized FuncResult for the transport
// between a worker and the API server.
type WorkerResult struct {
	ID           string          `json:"id"`
	ResultType   ResultType      `json:"resultType"`
	Value        json.RawMessage `json:"value"`
	HasUserError bool            `json:"hasUserError"`
	ProcBegin    time.Time       `json:"procBegin"`
	ProcEnd      time.Time       `json:"procEnd"`
}

// AttachValue serializes a function result into the wrapper,
// replacing any previously attached value.
func (wr *WorkerResult) AttachValue(value FuncResult) error {
	rawValue, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to attach value to worker result: %w", err)
	}
	wr.ResultType = value.Type()
	wr.Value = rawValue
	return nil
}

// FuncError extracts the error in case the wrapped value is an
// ErrorResult. For regular results it returns nil; the payload
// itself may still carry partial per-sentence failures.
func (wr *WorkerResult) FuncError() error {
	if wr.ResultType != ResultTypeError {
		return nil
	}
	var value ErrorResult
	if err := json.Unmarshal(wr.Value, &value); err != nil {
		return fmt.Errorf("failed to deserialize error result: %w", err)
	}
	return value.Err()
}

func CreateWorkerResult(value FuncResult) (*WorkerResult, error) {
	ans := &WorkerResult{ID: uuid.New().String()}
	if err := ans.AttachValue(value); err != nil {
		return nil, err
	}
	return ans, nil
}

// ----------------

// JobLog describes a single finished job the way the monitoring
// facilities consume it.
type JobLog struct {
	WorkerID     string    `json:"workerId"`
	Func         string    `json:"func"`
	Begin        time.Time `json:"begin"`
	End          time.Time `json:"end"`
	NumSentences int       `json:"numSentences"`
	NumTokens    int       `json:"numTokens"`
	Err          error     `json:"error"`
}

func (jl JobLog) TimeSpent() time.Duration {
	return jl.End.Sub(jl.Begin)
}

func (jl JobLog) MarshalJSON() ([]byte, error) {
	var errStr string
	if jl.Err != nil {
		errStr = jl.Err.Error()
	}
	return sonic.Marshal(
		struct {
			WorkerID     string    `json:"workerId"`
			Func         string    `json:"func"`
			Begin        time.Time `json:"begin"`
			End          time.Time `json:"end"`
			NumSentences int       `json:"numSentences"`
			NumTokens    int       `json:"numTokens"`
			Err          string    `json:"error,omitempty"`
		}{
			WorkerID:     jl.WorkerID,
			Func:         jl.Func,
			Begin:        jl.Begin,
			End:          jl.End,
			NumSentences: jl.NumSentences,
			NumTokens:    jl.NumTokens,
			Err:          errStr,
		},
	)
}

func (jl JobLog) ToJSON() (string, error) {
	ans, err := jl.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(ans), nil
}
