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

package vehicle

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConstruction is wrapped by every error returned while building a Vehicle.
var ErrInvalidConstruction = errors.New("invalid construction argument")

type constructor func(model Model) Vehicle

type registration struct {
	kind  Kind
	build constructor
}

// Registration order is the order Kinds() reports.
var registry = []registration{
	{kind: KindCar, build: NewCar},
	{kind: KindPlane, build: NewPlane},
	{kind: KindBoat, build: NewBoat},
}

func Kinds() []Kind {
	kinds := make([]Kind, 0, len(registry))
	for _, r := range registry {
		kinds = append(kinds, r.kind)
	}
	return kinds
}

// New builds a Vehicle of the named kind. Kind lookup ignores case; the model
// is accepted as given, empty included.
func New(kind Kind, model Model) (Vehicle, error) {
	for _, r := range registry {
		if strings.EqualFold(string(r.kind), string(kind)) {
			return r.build(model), nil
		}
	}

	return nil, fmt.Errorf("unknown vehicle kind %q: %w", kind, ErrInvalidConstruction)
}

// NewStrict is New, but also rejects a blank model.
func NewStrict(kind Kind, model Model) (Vehicle, error) {
	if strings.TrimSpace(string(model)) == "" {
		return nil, fmt.Errorf("empty model for vehicle kind %q: %w", kind, ErrInvalidConstruction)
	}

	return New(kind, model)
}
