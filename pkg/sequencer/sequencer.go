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

package sequencer

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/looplab/fsm"
	"go.uber.org/zap"

	"fleet/pkg/fleet"
)

const (
	StartBanner  = "--- Starting Movement Sequence ---"
	FinishBanner = "--- Movement Sequence Finished ---"
)

const (
	StateIdle     = "Idle"
	StateMoving   = "Moving"
	StateFinished = "Finished"

	startSequence  = "start_sequence"
	moveVehicle    = "move_vehicle"
	finishSequence = "finish_sequence"
)

type Sequencer interface {
	Lines(f fleet.Fleet) []string
	Perform(f fleet.Fleet, w io.Writer) error
}

type sequencer struct {
	logger *zap.SugaredLogger
	au     aurora.Aurora
}

// Lines returns the banners with one movement line per vehicle between them,
// in fleet order.
func (s *sequencer) Lines(f fleet.Fleet) []string {
	lines := make([]string, 0, len(f)+2)
	s.run(f, func(line string) error {
		lines = append(lines, line)
		return nil
	})
	return lines
}

// Perform writes Lines to w, one per line. It stops at the first write error.
func (s *sequencer) Perform(f fleet.Fleet, w io.Writer) error {
	return s.run(f, func(line string) error {
		_, err := fmt.Fprintln(w, line)
		return err
	})
}

func (s *sequencer) run(f fleet.Fleet, emit func(line string) error) error {
	phase := s.newPhase()

	s.advance(phase, startSequence)
	if err := emit(s.au.Green(StartBanner).Bold().String()); err != nil {
		return err
	}

	for i, v := range f {
		s.advance(phase, moveVehicle)
		s.logger.Debugw("moving vehicle", "position", i, "kind", string(v.Kind()), "model", string(v.Model()))
		if err := emit(v.DescribeMovement()); err != nil {
			return err
		}
	}

	s.advance(phase, finishSequence)
	return emit(s.au.Magenta(FinishBanner).Bold().String())
}

func (s *sequencer) advance(phase *fsm.FSM, eventName string) {
	err := phase.Event(eventName)
	if err != nil {
		switch err.(type) {
		case fsm.NoTransitionError:
			// moving from one vehicle to the next stays in StateMoving
		default:
			panic(err.Error())
		}
	}
}

func (s *sequencer) newPhase() *fsm.FSM {
	return fsm.NewFSM(
		StateIdle,
		fsm.Events{
			{Name: startSequence, Src: []string{StateIdle}, Dst: StateMoving},
			{Name: moveVehicle, Src: []string{StateMoving}, Dst: StateMoving},
			{Name: finishSequence, Src: []string{StateMoving}, Dst: StateFinished},
		},
		fsm.Callbacks{
			"enter_state": func(e *fsm.Event) {
				s.logger.Debugf("%s --> %s", e.Src, e.Dst)
			},
		},
	)
}

// NewSequencer returns a Sequencer that logs to logger, or nowhere if logger
// is nil. Banners are coloured only when color is true.
func NewSequencer(logger *zap.SugaredLogger, color bool) Sequencer {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &sequencer{
		logger: logger,
		au:     aurora.NewAurora(color),
	}
}
