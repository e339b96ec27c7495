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

package openapi

func createSchemas() ObjectProperties {
	ans := make(ObjectProperties)
	ans["Conversion"] = ObjectProperty{
		Type: "object",
		Properties: ObjectProperties{
			"output": ObjectProperty{
				Type:        "string",
				Description: "The converted document in CoNLL-U",
			},
			"reports": ObjectProperty{
				Type: "array",
				Items: &arrayItem{
					Type:        "object",
					Description: "Outcome of a single sentence conversion",
					Properties: ObjectProperties{
						"index": ObjectProperty{
							Type: "integer",
						},
						"skipped": ObjectProperty{
							Type: "boolean",
						},
						"error": ObjectProperty{
							Type: "string",
						},
						"nonProjectiveEdges": ObjectProperty{
							Type: "integer",
						},
						"warnings": ObjectProperty{
							Type: "array",
							Items: &arrayItem{
								Type: "object",
								Properties: ObjectProperties{
									"tokenId": ObjectProperty{
										Type: "integer",
									},
									"message": ObjectProperty{
										Type: "string",
									},
								},
							},
						},
					},
				},
			},
			"numSentences": ObjectProperty{
				Type: "integer",
			},
			"numTokens": ObjectProperty{
				Type: "integer",
			},
			"numClean": ObjectProperty{
				Type: "integer",
			},
			"numWithWarnings": ObjectProperty{
				Type: "integer",
			},
			"numSkipped": ObjectProperty{
				Type: "integer",
			},
			"tagsOnly": ObjectProperty{
				Type: "boolean",
			},
			"resultType": ObjectProperty{
				Type: "string",
				Enum: []any{"conversion"},
			},
		},
	}
	ans["ParsedTag"] = ObjectProperty{
		Type: "object",
		Properties: ObjectProperties{
			"class": ObjectProperty{
				Type: "string",
			},
			"raw": ObjectProperty{
				Type: "string",
			},
			"fields": ObjectProperty{
				Type: "array",
				Items: &arrayItem{
					Type: "string",
				},
			},
			"values": ObjectProperty{
				Type: "object",
				AdditionalProperties: &AdditionalProperty{
					Type: "string",
				},
			},
		},
	}
	ans["TagsetClasses"] = ObjectProperty{
		Type: "object",
		Properties: ObjectProperties{
			"classes": ObjectProperty{
				Type:        "object",
				Description: "A word class name mapped to its ordered attribute slots",
				AdditionalProperties: &AdditionalProperty{
					Type: "array",
				},
			},
		},
	}
	ans["MalformedTag"] = ObjectProperty{
		Type: "object",
		Properties: ObjectProperties{
			"error": ObjectProperty{
				Type: "string",
			},
			"tag": ObjectProperty{
				Type: "string",
			},
			"reason": ObjectProperty{
				Type: "string",
			},
		},
	}
	ans["Error"] = ObjectProperty{
		Type: "object",
		Properties: ObjectProperties{
			"error": ObjectProperty{
				Type: "string",
			},
		},
	}
	return ans
}
