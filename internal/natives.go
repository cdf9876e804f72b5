package internal

import "time"

func defineGlobals(e *env) {
	defineClock(e)
}

func defineClock(e *env) {
	clock := &nativeFn{
		name:       "clock",
		arityValue: 0,
		callFn: func(exec *Interpreter, arguments []interface{}) (interface{}, error) {
			return float64(time.Now().UnixNano()) / float64(time.Second), nil
		},
	}
	e.define(clock.name, clock)
}
