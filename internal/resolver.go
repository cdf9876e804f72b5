package internal

import "fmt"

type functionType int

const (
	fnNone functionType = iota
	fnFunction
	fnMethod
)

// resolver walks the tree once before execution. Each scope maps a name to
// whether its declaration has finished; the global scope is never on the
// stack.
type resolver struct {
	locals SideTable
	scopes []map[string]bool

	currentFunction functionType
}

// Resolve computes the side table for stmts. The first error aborts the pass.
func Resolve(stmts []Stmt) (SideTable, error) {
	locals := make(SideTable)
	if err := newResolver(locals).resolve(stmts); err != nil {
		return nil, err
	}
	return locals, nil
}

func newResolver(locals SideTable) *resolver {
	return &resolver{
		locals: locals,
	}
}

func (r *resolver) resolve(stmts []Stmt) error {
	for _, s := range stmts {
		if err := r.resolveStmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) resolveStmt(stmt Stmt) error {
	switch s := stmt.(type) {
	case *blockStmt:
		r.beginScope()
		defer r.endScope()
		return r.resolve(s.stmts)
	case *varStmt:
		if err := r.declare(s.name); err != nil {
			return err
		}
		if err := r.resolveExpr(s.initializer); err != nil {
			return err
		}
		r.define(s.name)
		return nil
	case *fnStmt:
		if err := r.declare(s.name); err != nil {
			return err
		}
		r.define(s.name)
		return r.resolveFunction(s, fnFunction)
	case *classStmt:
		if err := r.declare(s.name); err != nil {
			return err
		}
		r.define(s.name)
		for _, m := range s.methods {
			if err := r.resolveFunction(m, fnMethod); err != nil {
				return err
			}
		}
		return nil
	case *exprStmt:
		return r.resolveExpr(s.expression)
	case *printStmt:
		return r.resolveExpr(s.expression)
	case *ifStmt:
		if err := r.resolveExpr(s.condition); err != nil {
			return err
		}
		if err := r.resolveStmt(s.thenBranch); err != nil {
			return err
		}
		if s.elseBranch != nil {
			return r.resolveStmt(s.elseBranch)
		}
		return nil
	case *whileStmt:
		if err := r.resolveExpr(s.condition); err != nil {
			return err
		}
		return r.resolveStmt(s.body)
	case *returnStmt:
		if r.currentFunction == fnNone {
			return &ResolveError{Token: s.keyword, Err: errTopLevelReturn}
		}
		return r.resolveExpr(s.value)
	}
	panic(fmt.Sprintf("unexpected statement %T", stmt))
}

func (r *resolver) resolveFunction(fn *fnStmt, kind functionType) error {
	enclosing := r.currentFunction
	r.currentFunction = kind
	defer func() {
		r.currentFunction = enclosing
	}()

	r.beginScope()
	defer r.endScope()
	for _, param := range fn.params {
		if err := r.declare(param); err != nil {
			return err
		}
		r.define(param)
	}
	return r.resolve(fn.body)
}

func (r *resolver) resolveExpr(expr Expr) error {
	switch x := expr.(type) {
	case *variableExpr:
		if len(r.scopes) > 0 {
			if defined, declared := r.scopes[len(r.scopes)-1][x.name.lexeme]; declared && !defined {
				return &ResolveError{Token: x.name, Err: errOwnInitializer}
			}
		}
		r.resolveLocal(x.id, x.name)
		return nil
	case *assignExpr:
		if err := r.resolveExpr(x.value); err != nil {
			return err
		}
		r.resolveLocal(x.id, x.name)
		return nil
	case *binaryExpr:
		if err := r.resolveExpr(x.left); err != nil {
			return err
		}
		return r.resolveExpr(x.right)
	case *logicalExpr:
		if err := r.resolveExpr(x.left); err != nil {
			return err
		}
		return r.resolveExpr(x.right)
	case *unaryExpr:
		return r.resolveExpr(x.right)
	case *groupingExpr:
		return r.resolveExpr(x.expression)
	case *callExpr:
		if err := r.resolveExpr(x.callee); err != nil {
			return err
		}
		for _, arg := range x.arguments {
			if err := r.resolveExpr(arg); err != nil {
				return err
			}
		}
		return nil
	case *literalExpr, *emptyExpr:
		return nil
	}
	panic(fmt.Sprintf("unexpected expression %T", expr))
}

// resolveLocal records how many scopes separate the use from the innermost
// declaration. Nothing is recorded for globals.
func (r *resolver) resolveLocal(id int, name *Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.lexeme]; ok {
			r.locals[id] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *resolver) declare(name *Token) error {
	if len(r.scopes) == 0 {
		return nil
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.lexeme]; ok {
		return &ResolveError{Token: name, Err: errAlreadyDeclared}
	}
	scope[name.lexeme] = false
	return nil
}

func (r *resolver) define(name *Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.lexeme] = true
}
