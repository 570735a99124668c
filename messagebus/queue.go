// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// internal constants
const (
	queueSize = 1000
)

// Message - a command and its binary parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// Queue - single consumer queue, Send blocks when full
type Queue struct {
	c chan Message
}

// BroadcastQueue - every listener receives every message sent after it
// started listening
type BroadcastQueue struct {
	sync.RWMutex
	listeners []chan Message
}

// the exported buses
type busses struct {
	Committed *BroadcastQueue // one message per committed instruction
	TestQueue *Queue          // for tests
}

// Bus - all available message queues
var Bus = busses{
	Committed: &BroadcastQueue{},
	TestQueue: &Queue{
		c: make(chan Message, queueSize),
	},
}

// Send - queue a message
func (queue *Queue) Send(command string, parameters ...[]byte) {
	queue.c <- Message{
		Command:    command,
		Parameters: parameters,
	}
}

// Chan - channel to read from
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Send - deliver to each listener that has room
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}

	queue.RLock()
	defer queue.RUnlock()

	for _, listener := range queue.listeners {
		select {
		case listener <- m:
		default:
		}
	}
}

// Chan - register a listener with a buffer of size messages
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = queueSize
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.listeners = append(queue.listeners, c)
	queue.Unlock()

	return c
}

// Release - stop delivering to a listener and close its channel
func (queue *BroadcastQueue) Release(listener <-chan Message) {
	queue.Lock()
	defer queue.Unlock()

	for i, c := range queue.listeners {
		if (<-chan Message)(c) == listener {
			queue.listeners = append(queue.listeners[:i], queue.listeners[i+1:]...)
			close(c)
			return
		}
	}
}

// Listeners - number of registered listeners
func (queue *BroadcastQueue) Listeners() int {
	queue.RLock()
	defer queue.RUnlock()
	return len(queue.listeners)
}
