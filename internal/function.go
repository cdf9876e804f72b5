package internal

import "fmt"

type callable interface {
	arity() int
	call(exec *Interpreter, arguments []interface{}) (interface{}, error)
	String() string
}

// returnValue is the signal a return statement sends to its function.
// It travels beside errors, never as one.
type returnValue struct {
	value interface{}
}

type function struct {
	declaration *fnStmt
	closure     *env
}

func (f *function) arity() int {
	return len(f.declaration.params)
}

func (f *function) call(exec *Interpreter, arguments []interface{}) (interface{}, error) {
	env := newEnv(f.closure)
	for i, param := range f.declaration.params {
		env.define(param.lexeme, arguments[i])
	}

	result, err := exec.executeBlock(f.declaration.body, env)
	if err != nil {
		return nil, err
	}
	if result != nil {
		return result.value, nil
	}
	return nil, nil
}

func (f *function) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.name.lexeme)
}

type nativeFn struct {
	name       string
	arityValue int
	callFn     func(exec *Interpreter, arguments []interface{}) (interface{}, error)
}

func (n *nativeFn) arity() int {
	return n.arityValue
}

func (n *nativeFn) call(exec *Interpreter, arguments []interface{}) (interface{}, error) {
	return n.callFn(exec, arguments)
}

func (n *nativeFn) String() string {
	return fmt.Sprintf("<native fn %s>", n.name)
}
