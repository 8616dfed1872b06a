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

package fleet

import (
	"fmt"
	"strings"

	"fleet/pkg/vehicle"
)

type Fleet []vehicle.Vehicle

// Canonical is the Sedan, Jetliner and Yacht line-up used when nothing else is asked for.
func Canonical() Fleet {
	return Fleet{
		vehicle.NewCar("Sedan"),
		vehicle.NewPlane("Jetliner"),
		vehicle.NewBoat("Yacht"),
	}
}

func (f Fleet) Kinds() map[vehicle.Kind]int {
	counts := make(map[vehicle.Kind]int)
	for _, v := range f {
		counts[v.Kind()]++
	}
	return counts
}

// Parse reads a list of the form "car:Sedan,plane:Jetliner". The kind is
// trimmed, the model is kept exactly as written.
func Parse(list string, strict bool) (Fleet, error) {
	f := make(Fleet, 0)
	if strings.TrimSpace(list) == "" {
		return f, nil
	}

	build := vehicle.New
	if strict {
		build = vehicle.NewStrict
	}

	for i, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)

		parts := strings.SplitN(entry, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("fleet entry %d (%q) is not kind:model: %w", i+1, entry, vehicle.ErrInvalidConstruction)
		}

		v, err := build(vehicle.Kind(strings.TrimSpace(parts[0])), vehicle.Model(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("fleet entry %d: %w", i+1, err)
		}

		f = append(f, v)
	}

	return f, nil
}
