// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package abstract

// Config is used to configure the construction of a tree. It consists of
// the transform applied to each source node and any observer provided by
// the instantiator.
type Config[S, T any] struct {

	// Transform decides which source nodes are retained and produces their
	// payloads. It must not be nil.
	Transform Transform[S, T]

	// Recorder, if non-nil, is told the full enumeration index of every
	// retained node in buffer order.
	Recorder Recorder

	// CapacityHint pre-sizes the buffer. It has no effect on the result.
	CapacityHint int
}

type config[S, T any] struct {
	Config[S, T]
	sp *stackPool[S]
}

func makeConfig[S, T any](c Config[S, T]) config[S, T] {
	if c.Transform == nil {
		panic("flattree: nil transform")
	}
	if c.CapacityHint < 0 {
		c.CapacityHint = 0
	}
	return config[S, T]{
		Config: c,
		sp:     getStackPool[S](),
	}
}
