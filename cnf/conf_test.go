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

package cnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAndDefaults(t *testing.T) {
	conf := &Conf{ListenAddress: "127.0.0.1"}
	ValidateAndDefaults(conf)
	assert.Equal(t, dfltServerWriteTimeoutSecs, conf.ServerWriteTimeoutSecs)
	assert.Equal(t, "http://127.0.0.1", conf.PublicURL)
	assert.Equal(t, dfltMaxNumConcurrentJobs, conf.MaxNumConcurrentJobs)
	assert.Equal(t, dfltTimeZone, conf.TimeZone)
	assert.NotNil(t, conf.TimezoneLocation())
}

func TestValidateAndDefaultsKeepsExplicitValues(t *testing.T) {
	conf := &Conf{
		ListenAddress:          "127.0.0.1",
		PublicURL:              "https://udconv.example.org",
		ServerWriteTimeoutSecs: 60,
		MaxNumConcurrentJobs:   2,
		TimeZone:               "UTC",
	}
	ValidateAndDefaults(conf)
	assert.Equal(t, "https://udconv.example.org", conf.PublicURL)
	assert.Equal(t, 60, conf.ServerWriteTimeoutSecs)
	assert.Equal(t, 2, conf.MaxNumConcurrentJobs)
	assert.Equal(t, "UTC", conf.TimeZone)
}

func TestRelationTablePath(t *testing.T) {
	conf := &Conf{
		SourcesRootPath:   "/var/opt/udconv",
		RelationTableFile: "relations.json",
	}
	assert.Equal(t, "/var/opt/udconv/relations.json", conf.RelationTablePath())
}

func TestRelationTablePathAbsolute(t *testing.T) {
	conf := &Conf{
		SourcesRootPath:   "/var/opt/udconv",
		RelationTableFile: "/etc/udconv/relations.json",
	}
	assert.Equal(t, "/etc/udconv/relations.json", conf.RelationTablePath())
}

func TestRelationTablePathUnset(t *testing.T) {
	conf := &Conf{SourcesRootPath: "/var/opt/udconv"}
	assert.Equal(t, "", conf.RelationTablePath())
}

func TestDefaultConfig(t *testing.T) {
	conf := DefaultConfig()
	assert.False(t, conf.IsDebugMode())
	assert.NotNil(t, conf.TimezoneLocation())
	assert.Equal(t, dfltMaxNumConcurrentJobs, conf.MaxNumConcurrentJobs)
}
