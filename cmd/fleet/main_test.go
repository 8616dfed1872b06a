/*
 * Copyright (C) 2019-Present Pivotal Software, Inc. All rights reserved.
 *
 * This program and the accompanying materials are made available under the terms
 * of the Apache License, Version 2.0 (the "License”); you may not use this file
 * except in compliance with the License. You may obtain a copy of the License at:
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software distributed
 * under the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR
 * CONDITIONS OF ANY KIND, either express or implied. See the License for the
 * specific language governing permissions and limitations under the License.
 */

package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fleet/pkg/vehicle"
)

func TestCmdMain(t *testing.T) {
	spec.Run(t, "cmd main", testMain, spec.Report(report.Terminal{}))
}

func testMain(t *testing.T, describe spec.G, it spec.S) {
	var subject Runner

	describe("NewRunner()", func() {
		describe("with the default configuration", func() {
			it.Before(func() {
				var err error
				subject, err = NewRunner(Config{})
				require.NoError(t, err)
			})

			it("uses the canonical fleet", func() {
				require.Len(t, subject.Fleet(), 3)
				assert.Equal(t, vehicle.Model("Sedan"), subject.Fleet()[0].Model())
				assert.Equal(t, vehicle.Model("Jetliner"), subject.Fleet()[1].Model())
				assert.Equal(t, vehicle.Model("Yacht"), subject.Fleet()[2].Model())
			})

			it("keeps colour off", func() {
				assert.False(t, subject.Config().Color)
			})

			it("is not strict", func() {
				assert.False(t, subject.Config().Strict)
			})
		})

		describe("with a fleet list", func() {
			it.Before(func() {
				var err error
				subject, err = NewRunner(Config{FleetList: "boat:Ferry,car:Coupe"})
				require.NoError(t, err)
			})

			it("builds the listed fleet", func() {
				require.Len(t, subject.Fleet(), 2)
				assert.Equal(t, vehicle.KindBoat, subject.Fleet()[0].Kind())
				assert.Equal(t, vehicle.KindCar, subject.Fleet()[1].Kind())
			})
		})

		describe("with an invalid fleet list", func() {
			it("returns an invalid construction error", func() {
				_, err := NewRunner(Config{FleetList: "tank:Sherman"})
				assert.True(t, errors.Is(err, vehicle.ErrInvalidConstruction))
			})

			it("rejects empty models when strict", func() {
				_, err := NewRunner(Config{FleetList: "car:", Strict: true})
				assert.True(t, errors.Is(err, vehicle.ErrInvalidConstruction))
			})
		})
	})

	describe("Run()", func() {
		var out *bytes.Buffer

		it.Before(func() {
			var err error
			subject, err = NewRunner(Config{})
			require.NoError(t, err)

			out = new(bytes.Buffer)
			require.NoError(t, subject.Run(out))
		})

		it("prints the canonical movement sequence", func() {
			assert.Equal(t, "--- Starting Movement Sequence ---\n"+
				"The Sedan is Driving down the highway.\n"+
				"The Jetliner is Flying in the sky.\n"+
				"The Yacht is Sailing down the river.\n"+
				"--- Movement Sequence Finished ---\n", out.String())
		})

		describe("Summary()", func() {
			var rpt string

			it.Before(func() {
				w := new(bytes.Buffer)
				subject.Summary(w)
				rpt = w.String()
			})

			it("counts each kind", func() {
				assert.Regexp(t, `Car\s+1`, rpt)
				assert.Regexp(t, `Plane\s+1`, rpt)
				assert.Regexp(t, `Boat\s+1`, rpt)
			})

			it("prints the total", func() {
				assert.Regexp(t, `Total\s+3`, rpt)
			})
		})

		describe("Log()", func() {
			var rpt string

			it.Before(func() {
				w := new(bytes.Buffer)
				subject.Log(w)
				rpt = w.String()
			})

			it("prints the header", func() {
				assert.Contains(t, rpt, "Sequencer log")
			})

			it("prints the phase transitions", func() {
				assert.Contains(t, rpt, "Idle --> Moving")
				assert.Contains(t, rpt, "Moving --> Finished")
			})

			it("prints each vehicle moved", func() {
				assert.Contains(t, rpt, "Jetliner")
			})
		})
	})

	describe("newLogger()", func() {
		var logger *zap.SugaredLogger

		it.Before(func() {
			logger = newLogger(new(bytes.Buffer))
			assert.NotNil(t, logger)
		})

		it("sets the log level to Debug", func() {
			dsl := logger.Desugar()
			assert.True(t, dsl.Core().Enabled(zapcore.DebugLevel))
		})
	})
}
