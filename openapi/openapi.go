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

// Package openapi provides a handwritten OpenAPI description of the
// public HTTP endpoints.
package openapi

import "net/http"

func NewResponse(ver, url string) *APIResponse {
	schemas := createSchemas()
	paths := make(map[string]Methods)

	paths["/convert"] = Methods{
		Post: &Method{
			Description: "Converts a dependency-annotated document from its positional tags and legacy syntactic relations to Universal Dependencies.",
			OperationID: "Convert",
			Parameters: []Parameter{
				{
					Name:        "tagsOnly",
					In:          "query",
					Description: "If `1`, only tags are converted to UD part of speech and features and the original syntactic relations are kept. Applies to raw (non-JSON) request bodies.",
					Required:    false,
					Schema: ParamSchema{
						Type: "string",
						Enum: []string{"0", "1"},
					},
				},
			},
			RequestBody: &RequestBody{
				Description: "Either a raw document in CoNLL-X or a JSON object wrapping the document along with conversion switches.",
				Required:    true,
				Content: map[string]Content{
					"text/plain": {
						Schema: Schema{
							Type: "string",
						},
					},
					"application/json": {
						Schema: Schema{
							Type: "object",
							Properties: ObjectProperties{
								"text": ObjectProperty{
									Type:        "string",
									Description: "The document in CoNLL-X",
								},
								"tagsOnly": ObjectProperty{
									Type: "boolean",
								},
							},
						},
					},
				},
			},
			Responses: MethodResponses{
				http.StatusOK: {
					Description: "The converted document plus a report for each sentence.",
					Content: map[string]Content{
						"application/json": {
							Schema: Schema{
								Type:       "object",
								Properties: schemas["Conversion"].Properties,
							},
						},
					},
				},
				http.StatusBadRequest: {
					Description: "The document cannot be parsed or the arguments are invalid.",
					Content: map[string]Content{
						"application/json": {
							Schema: Schema{
								Type:       "object",
								Properties: schemas["Error"].Properties,
							},
						},
					},
				},
				http.StatusServiceUnavailable: {
					Description: "No worker answered within the configured time limit.",
					Content: map[string]Content{
						"application/json": {
							Schema: Schema{
								Type:       "object",
								Properties: schemas["Error"].Properties,
							},
						},
					},
				},
			},
		},
	}

	paths["/parse-tag/{tag}"] = Methods{
		Post: &Method{
			Description: "Decomposes a single positional tag into its named attributes.",
			OperationID: "ParseTag",
			Parameters: []Parameter{
				{
					Name:        "tag",
					In:          "path",
					Description: "A colon-separated positional tag (e.g. `subst:sg:nom:m1`)",
					Required:    true,
					Schema: ParamSchema{
						Type: "string",
					},
				},
			},
			Responses: MethodResponses{
				http.StatusOK: {
					Description: "The parsed attribute record.",
					Content: map[string]Content{
						"application/json": {
							Schema: Schema{
								Type:       "object",
								Properties: schemas["ParsedTag"].Properties,
							},
						},
					},
				},
				http.StatusUnprocessableEntity: {
					Description: "The tag does not match the tagset schema.",
					Content: map[string]Content{
						"application/json": {
							Schema: Schema{
								Type:       "object",
								Properties: schemas["MalformedTag"].Properties,
							},
						},
					},
				},
			},
		},
	}

	paths["/tagset/classes"] = Methods{
		Get: &Method{
			Description: "Shows the tagset schema registry - all the known word classes along with their ordered attribute slots.",
			OperationID: "TagsetClasses",
			Responses: MethodResponses{
				http.StatusOK: {
					Description: "The schema registry.",
					Content: map[string]Content{
						"application/json": {
							Schema: Schema{
								Type:       "object",
								Properties: schemas["TagsetClasses"].Properties,
							},
						},
					},
				},
			},
		},
	}

	return &APIResponse{
		OpenAPI: "3.1.0",
		Info: Info{
			Title:       "UDConv - convert dependency annotations to Universal Dependencies",
			Description: "Converts positional morphological tags and legacy syntactic relations of dependency treebanks to Universal Dependencies.",
			Version:     ver,
		},
		Servers: []Server{
			{URL: url},
		},
		Paths: paths,
	}
}
