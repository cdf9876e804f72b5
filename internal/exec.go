package internal

import (
	"fmt"
	"io/ioutil"

	"github.com/sirupsen/logrus"
)

// Printer receives the output of print statements
type Printer interface {
	Println(a ...interface{}) (n int, err error)
}

// SideTable maps a variable or assignment node id to the number of frames
// between its use and its declaration. Missing ids are globals.
type SideTable map[int]int

// Interpreter evaluates resolved statements
type Interpreter struct {
	globals *env
	env     *env
	locals  SideTable

	printer Printer
	log     *logrus.Entry

	depth    int
	maxDepth int
}

// NewInterpreter creates an interpreter with a fresh global frame. A nil
// cfg means DefaultConfig and a nil log discards log output.
func NewInterpreter(p Printer, cfg *Config, log *logrus.Entry) *Interpreter {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if log == nil {
		logger := logrus.New()
		logger.SetOutput(ioutil.Discard)
		log = logrus.NewEntry(logger)
	}

	globals := newEnv(nil)
	defineGlobals(globals)

	return &Interpreter{
		globals:  globals,
		env:      globals,
		locals:   make(SideTable),
		printer:  p,
		log:      log,
		maxDepth: cfg.MaxCallDepth,
	}
}

// Resolve records the scope distance of every local variable use in stmts
func (e *Interpreter) Resolve(stmts []Stmt) error {
	return newResolver(e.locals).resolve(stmts)
}

// Interpret runs stmts in order and stops at the first runtime error
func (e *Interpreter) Interpret(stmts []Stmt) error {
	for _, s := range stmts {
		ret, err := e.execute(s)
		if err != nil {
			if runErr, ok := err.(*RuntimeError); ok {
				e.log.WithFields(logrus.Fields{
					"kind": runErr.Kind.String(),
					"line": runErr.Token.line,
				}).Debug("runtime error")
			}
			return err
		}
		if ret != nil {
			// A top level return ends the program
			return nil
		}
	}
	return nil
}

func (e *Interpreter) execute(stmt Stmt) (*returnValue, error) {
	switch s := stmt.(type) {
	case *exprStmt:
		_, err := e.evaluate(s.expression)
		return nil, err
	case *printStmt:
		value, err := e.evaluate(s.expression)
		if err != nil {
			return nil, err
		}
		if _, err := e.printer.Println(stringify(value)); err != nil {
			e.log.WithError(err).Warn("print failed")
		}
		return nil, nil
	case *varStmt:
		value, err := e.evaluate(s.initializer)
		if err != nil {
			return nil, err
		}
		e.env.define(s.name.lexeme, value)
		return nil, nil
	case *blockStmt:
		return e.executeBlock(s.stmts, newEnv(e.env))
	case *ifStmt:
		cond, err := e.evaluate(s.condition)
		if err != nil {
			return nil, err
		}
		if truthy(cond) {
			return e.execute(s.thenBranch)
		}
		if s.elseBranch != nil {
			return e.execute(s.elseBranch)
		}
		return nil, nil
	case *whileStmt:
		return e.executeWhile(s)
	case *fnStmt:
		e.env.define(s.name.lexeme, &function{
			declaration: s,
			closure:     e.env,
		})
		return nil, nil
	case *returnStmt:
		value, err := e.evaluate(s.value)
		if err != nil {
			return nil, err
		}
		return &returnValue{value: value}, nil
	case *classStmt:
		methods := make(map[string]*function, len(s.methods))
		for _, m := range s.methods {
			methods[m.name.lexeme] = &function{
				declaration: m,
				closure:     e.env,
			}
		}
		e.env.define(s.name.lexeme, &class{
			name:    s.name.lexeme,
			methods: methods,
		})
		return nil, nil
	}
	panic(fmt.Sprintf("unexpected statement %T", stmt))
}

// executeBlock runs stmts inside env and always restores the previous frame
func (e *Interpreter) executeBlock(stmts []Stmt, env *env) (*returnValue, error) {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env
	for _, s := range stmts {
		ret, err := e.execute(s)
		if err != nil || ret != nil {
			return ret, err
		}
	}
	return nil, nil
}

func (e *Interpreter) executeWhile(stmt *whileStmt) (*returnValue, error) {
	for {
		cond, err := e.evaluate(stmt.condition)
		if err != nil {
			return nil, err
		}
		if !truthy(cond) {
			return nil, nil
		}
		ret, err := e.execute(stmt.body)
		if err != nil || ret != nil {
			return ret, err
		}
	}
}

func (e *Interpreter) evaluate(expr Expr) (interface{}, error) {
	switch x := expr.(type) {
	case *literalExpr:
		return x.value, nil
	case *groupingExpr:
		return e.evaluate(x.expression)
	case *emptyExpr:
		return nil, nil
	case *variableExpr:
		return e.lookUpVariable(x.id, x.name)
	case *assignExpr:
		return e.evaluateAssign(x)
	case *unaryExpr:
		return e.evaluateUnary(x)
	case *binaryExpr:
		return e.evaluateBinary(x)
	case *logicalExpr:
		return e.evaluateLogical(x)
	case *callExpr:
		return e.evaluateCall(x)
	}
	panic(fmt.Sprintf("unexpected expression %T", expr))
}

func (e *Interpreter) lookUpVariable(id int, name *Token) (interface{}, error) {
	if distance, ok := e.locals[id]; ok {
		return e.env.getAt(distance, name)
	}
	return e.globals.get(name)
}

func (e *Interpreter) evaluateAssign(expr *assignExpr) (interface{}, error) {
	value, err := e.evaluate(expr.value)
	if err != nil {
		return nil, err
	}
	if distance, ok := e.locals[expr.id]; ok {
		err = e.env.assignAt(distance, expr.name, value)
	} else {
		err = e.globals.assign(expr.name, value)
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (e *Interpreter) evaluateUnary(expr *unaryExpr) (interface{}, error) {
	right, err := e.evaluate(expr.right)
	if err != nil {
		return nil, err
	}
	value, kind, err := applyUnary(unaryOperators[expr.operator.token], right)
	if err != nil {
		return nil, runtimeErr(kind, err, expr.operator)
	}
	return value, nil
}

func (e *Interpreter) evaluateBinary(expr *binaryExpr) (interface{}, error) {
	left, err := e.evaluate(expr.left)
	if err != nil {
		return nil, err
	}
	right, err := e.evaluate(expr.right)
	if err != nil {
		return nil, err
	}
	value, kind, err := applyBinary(binaryOperators[expr.operator.token], left, right)
	if err != nil {
		return nil, runtimeErr(kind, err, expr.operator)
	}
	return value, nil
}

// evaluateLogical yields the deciding operand itself, not a boolean
func (e *Interpreter) evaluateLogical(expr *logicalExpr) (interface{}, error) {
	left, err := e.evaluate(expr.left)
	if err != nil {
		return nil, err
	}

	if expr.operator.token == tkOr {
		if truthy(left) {
			return left, nil
		}
	} else if !truthy(left) {
		return left, nil
	}

	return e.evaluate(expr.right)
}

func (e *Interpreter) evaluateCall(expr *callExpr) (interface{}, error) {
	callee, err := e.evaluate(expr.callee)
	if err != nil {
		return nil, err
	}

	arguments := make([]interface{}, len(expr.arguments))
	for i := range expr.arguments {
		if arguments[i], err = e.evaluate(expr.arguments[i]); err != nil {
			return nil, err
		}
	}

	fn, isFn := callee.(callable)
	if !isFn {
		return nil, runtimeErr(KindNotCallable, fmt.Errorf("%w Got %s.", errOnlyFunction, typeName(callee)), expr.paren)
	}

	if len(arguments) != fn.arity() {
		return nil, runtimeErr(
			KindArity,
			fmt.Errorf("%w: expected %d but got %d.", errInvalidNumberArguments, fn.arity(), len(arguments)),
			expr.paren,
		)
	}

	if e.depth >= e.maxDepth {
		return nil, runtimeErr(KindStackOverflow, errStackOverflow, expr.paren)
	}
	e.depth++
	defer func() {
		e.depth--
	}()

	return fn.call(e, arguments)
}
