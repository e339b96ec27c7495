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

package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"udconv/deprel"
	"udconv/pipeline"
	"udconv/rdb"
	"udconv/results"
	"udconv/tagset"
	"udconv/uderror"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

type malformedTagResponse struct {
	Error  string `json:"error"`
	Tag    string `json:"tag"`
	Reason string `json:"reason"`
}

type tagsetClassesResponse struct {
	Classes map[string][]tagset.Category `json:"classes"`
}

type Actions struct {
	table         *deprel.Table
	radapter      *rdb.Adapter
	answerTimeout time.Duration
}

// Convert takes a dependency-annotated document and returns its
// converted form along with a per-sentence report. The document is
// either a raw request body (with the `tagsOnly` switch passed as
// a URL argument) or a JSON body matching rdb.ConversionArgs.
// With no Redis adapter around, the conversion runs synchronously
// within the request.
func (a *Actions) Convert(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	var args rdb.ConversionArgs
	if strings.HasPrefix(ctx.ContentType(), gin.MIMEJSON) {
		if err := json.Unmarshal(body, &args); err != nil {
			uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
			return
		}

	} else {
		args.Text = string(body)
		args.TagsOnly = ctx.Query("tagsOnly") == "1"
	}
	if strings.TrimSpace(args.Text) == "" {
		uniresp.RespondWithErrorJSON(
			ctx,
			uderror.InputError{Msg: "empty document"},
			http.StatusBadRequest,
		)
		return
	}

	if a.radapter == nil {
		a.convertSync(ctx, args)
		return
	}

	rawArgs, err := json.Marshal(args)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	wait, err := a.radapter.CacheResult(
		a.radapter.PublishQuery,
		rdb.Query{
			Func: rdb.FuncConvert,
			Args: rawArgs,
		},
	)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	select {
	case rawResult := <-wait:
		if ok := HandleWorkerError(ctx, rawResult); !ok {
			return
		}
		result, ok := TypedOrRespondError[results.ConversionResponse](ctx, rawResult)
		if !ok {
			return
		}
		if result.Error != "" {
			status := http.StatusInternalServerError
			if rawResult.HasUserError {
				status = http.StatusBadRequest
			}
			uniresp.RespondWithErrorJSON(ctx, errors.New(result.Error), status)
			return
		}
		uniresp.WriteJSONResponse(ctx.Writer, result)
	case <-time.After(a.answerTimeout):
		uniresp.RespondWithErrorJSON(
			ctx,
			uderror.TimeoutError{Msg: "timed out while waiting for worker response"},
			http.StatusServiceUnavailable,
		)
	}
}

func (a *Actions) convertSync(ctx *gin.Context, args rdb.ConversionArgs) {
	res := pipeline.New(a.table, args.TagsOnly).ConvertText(args.Text)
	if res.Error != nil {
		status := http.StatusInternalServerError
		var inputErr uderror.InputError
		if errors.As(res.Error, &inputErr) {
			status = http.StatusBadRequest
		}
		uniresp.RespondWithErrorJSON(ctx, res.Error, status)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, res)
}

// ParseTag decomposes a single positional tag into its attribute
// record. A tag the schema registry refuses produces a structured
// 422 response naming the reason.
func (a *Actions) ParseTag(ctx *gin.Context) {
	rec, err := tagset.Parse(ctx.Param("tag"))
	if err != nil {
		var tagErr tagset.MalformedTagError
		if errors.As(err, &tagErr) {
			ctx.AbortWithStatusJSON(
				http.StatusUnprocessableEntity,
				malformedTagResponse{
					Error:  tagErr.Error(),
					Tag:    tagErr.Tag,
					Reason: tagErr.Reason,
				},
			)
			return
		}
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, rec)
}

// TagsetClasses exposes the schema registry (word class name to its
// ordered attribute slots).
func (a *Actions) TagsetClasses(ctx *gin.Context) {
	classes := make(map[string][]tagset.Category)
	for _, class := range tagset.Classes() {
		slots, _ := tagset.SlotsOf(class)
		classes[class] = slots
	}
	uniresp.WriteJSONResponse(ctx.Writer, tagsetClassesResponse{Classes: classes})
}

func NewActions(
	table *deprel.Table,
	radapter *rdb.Adapter,
	answerTimeout time.Duration,
) *Actions {
	return &Actions{
		table:         table,
		radapter:      radapter,
		answerTimeout: answerTimeout,
	}
}
