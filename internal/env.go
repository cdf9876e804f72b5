package internal

import "fmt"

// env is one scope frame. enclosing is set once by newEnv; a frame lives as
// long as a running block, call or closure still points at it.
type env struct {
	enclosing *env
	values    map[string]interface{}
}

func newEnv(enclosing *env) *env {
	return &env{
		enclosing: enclosing,
		values:    make(map[string]interface{}),
	}
}

func undefinedVar(name *Token) *RuntimeError {
	return runtimeErr(KindUndefinedVariable, fmt.Errorf("%w '%s'.", errUndefinedVar, name.lexeme), name)
}

func (e *env) get(name *Token) (interface{}, error) {
	if value, ok := e.values[name.lexeme]; ok {
		return value, nil
	}
	if e.enclosing != nil {
		return e.enclosing.get(name)
	}
	return nil, undefinedVar(name)
}

func (e *env) define(name string, value interface{}) {
	e.values[name] = value
}

func (e *env) assign(name *Token, value interface{}) error {
	if _, ok := e.values[name.lexeme]; ok {
		e.values[name.lexeme] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.assign(name, value)
	}
	return undefinedVar(name)
}

func (e *env) ancestor(distance int) *env {
	environment := e
	for i := 0; i < distance && environment != nil; i++ {
		environment = environment.enclosing
	}
	return environment
}

// getAt reads name from exactly distance frames up, without searching
func (e *env) getAt(distance int, name *Token) (interface{}, error) {
	if frame := e.ancestor(distance); frame != nil {
		if value, ok := frame.values[name.lexeme]; ok {
			return value, nil
		}
	}
	return nil, undefinedVar(name)
}

func (e *env) assignAt(distance int, name *Token, value interface{}) error {
	if frame := e.ancestor(distance); frame != nil {
		if _, ok := frame.values[name.lexeme]; ok {
			frame.values[name.lexeme] = value
			return nil
		}
	}
	return undefinedVar(name)
}
