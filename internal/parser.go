package internal

const maxFunctionParams = 255

// nodeIDs hands out the identities the resolver side table is keyed on.
// A session shares one source across parses so ids never repeat.
type nodeIDs struct {
	last int
}

func (n *nodeIDs) next() int {
	n.last++
	return n.last
}

// parseBailout unwinds the parser to the enclosing declaration
type parseBailout struct {
	err      error
	token    *Token
	position int
}

// parser stores parser data
type parser struct {
	tokens  []Token
	current int

	ids    *nodeIDs
	errors []*ParseError

	// blocks counts the braced bodies being parsed
	blocks int
}

// Parse turns tokens into statements. A malformed declaration is
// reported once and skipped; the remaining declarations are still parsed.
func Parse(tokens []Token) ([]Stmt, []*ParseError) {
	return newParser(tokens, &nodeIDs{}).parse()
}

func newParser(tokens []Token, ids *nodeIDs) *parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].token != tkEOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].line
		}
		tokens = append(tokens[:len(tokens):len(tokens)], Token{token: tkEOF, line: line})
	}
	return &parser{
		tokens: tokens,
		ids:    ids,
	}
}

func (p *parser) parse() ([]Stmt, []*ParseError) {
	stmts := make([]Stmt, 0)
	for !p.isAtEnd() {
		if st := p.parseStmt(); st != nil {
			stmts = append(stmts, st)
		}
	}
	return stmts, p.errors
}

func (p *parser) parseStmt() (s Stmt) {
	defer func() {
		if r := recover(); r != nil {
			bailout, ok := r.(parseBailout)
			if !ok {
				panic(r)
			}
			p.synchronize()
			p.errors = append(p.errors, &ParseError{
				Err:      bailout.err,
				Token:    bailout.token,
				Position: bailout.position,
				Recovery: p.current,
			})
			s = nil
		}
	}()
	return p.declaration()
}

func (p *parser) declaration() Stmt {
	if p.match(tkClass) {
		return p.class()
	}
	if p.match(tkFun) {
		return p.fn()
	}
	if p.match(tkVar) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *parser) class() Stmt {
	name := p.consume(tkIdentifier, errExpectedClassName)
	p.consume(tkLeftBrace, errExpectedOpeningBrace)

	var methods []*fnStmt
	for !p.check(tkRightBrace) && !p.isAtEnd() {
		methods = append(methods, p.fn())
	}

	p.consume(tkRightBrace, errExpectedClosingBrace)

	return &classStmt{
		name:    name,
		methods: methods,
	}
}

func (p *parser) fn() *fnStmt {
	name := p.consume(tkIdentifier, errExpectedFunctionName)
	p.consume(tkLeftParen, errExpectedParen)

	var params []*Token
	if !p.check(tkRightParen) {
		for {
			if len(params) == maxFunctionParams {
				p.setError(errMaxParameters, p.peek())
			}
			params = append(params, p.consume(tkIdentifier, errExpectedFunctionParam))
			if !p.match(tkComma) {
				break
			}
		}
	}
	p.consume(tkRightParen, errUnclosedParams)

	p.consume(tkLeftBrace, errExpectedOpeningBrace)
	body := p.block()

	return &fnStmt{
		name:   name,
		params: params,
		body:   body,
	}
}

func (p *parser) varDeclaration() Stmt {
	name := p.consume(tkIdentifier, errExpectedIdentifier)
	p.consume(tkEqual, errExpectedInitializer)
	init := p.expression()
	p.consume(tkSemicolon, errExpectedSemicolon)

	return &varStmt{
		name:        name,
		initializer: init,
	}
}

func (p *parser) statement() Stmt {
	if p.match(tkFor) {
		return p.forLoop()
	}
	if p.match(tkIf) {
		return p.ifStmt()
	}
	if p.match(tkPrint) {
		return p.print()
	}
	if p.match(tkReturn) {
		return p.ret()
	}
	if p.match(tkWhile) {
		return p.while()
	}
	if p.match(tkLeftBrace) {
		return &blockStmt{stmts: p.block()}
	}
	return p.expressionStmt()
}

// forLoop has no node of its own: it becomes a block holding the
// initializer and a while loop whose body runs the increment last.
func (p *parser) forLoop() Stmt {
	keyword := p.previous()
	p.consume(tkLeftParen, errExpectedParen)

	var init Stmt
	if p.match(tkSemicolon) {
		init = nil
	} else if p.match(tkVar) {
		init = p.varDeclaration()
	} else {
		init = p.expressionStmt()
	}

	var cond Expr
	if !p.check(tkSemicolon) {
		cond = p.expression()
	}
	p.consume(tkSemicolon, errExpectedSemicolon)

	var inc Expr
	if !p.check(tkRightParen) {
		inc = p.expression()
	}
	p.consume(tkRightParen, errUnclosedParen)

	body := p.statement()

	loopBody := []Stmt{body}
	if inc != nil {
		loopBody = append(loopBody, &exprStmt{expression: inc})
	}
	if cond == nil {
		cond = &literalExpr{value: true}
	}

	var stmts []Stmt
	if init != nil {
		stmts = append(stmts, init)
	}
	stmts = append(stmts, &whileStmt{
		keyword:   keyword,
		condition: cond,
		body:      &blockStmt{stmts: loopBody},
	})
	return &blockStmt{stmts: stmts}
}

func (p *parser) ifStmt() Stmt {
	st := &ifStmt{
		keyword: p.previous(),
	}

	p.consume(tkLeftParen, errExpectedParen)
	st.condition = p.expression()
	p.consume(tkRightParen, errUnclosedParen)

	st.thenBranch = p.statement()
	if p.match(tkElse) {
		st.elseBranch = p.statement()
	}

	return st
}

func (p *parser) print() Stmt {
	keyword := p.previous()
	value := p.expression()
	p.consume(tkSemicolon, errExpectedSemicolon)
	return &printStmt{
		keyword:    keyword,
		expression: value,
	}
}

func (p *parser) ret() Stmt {
	keyword := p.previous()
	var value Expr = &emptyExpr{}
	if !p.check(tkSemicolon) {
		value = p.expression()
	}
	p.consume(tkSemicolon, errExpectedSemicolon)
	return &returnStmt{
		keyword: keyword,
		value:   value,
	}
}

func (p *parser) while() Stmt {
	keyword := p.previous()
	p.consume(tkLeftParen, errExpectedParen)
	cond := p.expression()
	p.consume(tkRightParen, errUnclosedParen)
	body := p.statement()
	return &whileStmt{
		keyword:   keyword,
		condition: cond,
		body:      body,
	}
}

// block recovers per declaration, so a malformed statement inside a body
// is reported once and the rest of the body stays in it.
func (p *parser) block() []Stmt {
	p.blocks++
	defer func() {
		p.blocks--
	}()

	stmts := make([]Stmt, 0)
	for !p.check(tkRightBrace) && !p.isAtEnd() {
		if st := p.parseStmt(); st != nil {
			stmts = append(stmts, st)
		}
	}
	p.consume(tkRightBrace, errExpectedClosingBrace)
	return stmts
}

func (p *parser) expressionStmt() Stmt {
	expr := p.expression()
	p.consume(tkSemicolon, errExpectedSemicolon)
	return &exprStmt{
		expression: expr,
	}
}

func (p *parser) expression() Expr {
	return p.assignment()
}

func (p *parser) assignment() Expr {
	expr := p.or()
	if p.match(tkEqual) {
		equal := p.previous()
		value := p.assignment()

		if variable, isVar := expr.(*variableExpr); isVar {
			return &assignExpr{
				id:    p.ids.next(),
				name:  variable.name,
				value: value,
			}
		}

		p.setError(errInvalidAssignTarget, equal)
	}
	return expr
}

func (p *parser) or() Expr {
	expr := p.and()
	for p.match(tkOr) {
		operator := p.previous()
		right := p.and()
		expr = &logicalExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) and() Expr {
	expr := p.equality()
	for p.match(tkAnd) {
		operator := p.previous()
		right := p.equality()
		expr = &logicalExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) equality() Expr {
	expr := p.comparison()
	for p.match(tkEqualEqual, tkBangEqual) {
		operator := p.previous()
		right := p.comparison()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) comparison() Expr {
	expr := p.term()
	for p.match(tkGreater, tkGreaterEqual, tkLess, tkLessEqual) {
		operator := p.previous()
		right := p.term()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) term() Expr {
	expr := p.factor()
	for p.match(tkPlus, tkMinus) {
		operator := p.previous()
		right := p.factor()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) factor() Expr {
	expr := p.unary()
	for p.match(tkSlash, tkStar) {
		operator := p.previous()
		right := p.unary()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) unary() Expr {
	if p.match(tkBang, tkMinus) {
		operator := p.previous()
		right := p.unary()
		return &unaryExpr{
			operator: operator,
			right:    right,
		}
	}
	return p.call()
}

func (p *parser) call() Expr {
	expr := p.primary()
	for p.match(tkLeftParen) {
		expr = p.finishCall(expr)
	}
	return expr
}

func (p *parser) finishCall(callee Expr) Expr {
	arguments := make([]Expr, 0)
	if !p.check(tkRightParen) {
		for {
			if len(arguments) == maxFunctionParams {
				p.setError(errMaxArguments, p.peek())
			}
			arguments = append(arguments, p.expression())
			if !p.match(tkComma) {
				break
			}
		}
	}
	paren := p.consume(tkRightParen, errUnclosedArgs)
	return &callExpr{
		callee:    callee,
		paren:     paren,
		arguments: arguments,
	}
}

func (p *parser) primary() Expr {
	if p.match(tkNumber, tkString) {
		return &literalExpr{value: p.previous().literal}
	}
	if p.match(tkFalse) {
		return &literalExpr{value: false}
	}
	if p.match(tkTrue) {
		return &literalExpr{value: true}
	}
	if p.match(tkNil) {
		return &literalExpr{value: nil}
	}
	if p.match(tkIdentifier) {
		return &variableExpr{
			id:   p.ids.next(),
			name: p.previous(),
		}
	}
	if p.match(tkLeftParen) {
		expr := p.expression()
		p.consume(tkRightParen, errUnclosedParen)
		return &groupingExpr{expression: expr}
	}

	p.fatalError(errUndefinedExpr, p.peek())
	return &emptyExpr{}
}

func (p *parser) consume(tk TokenType, err error) *Token {
	if p.check(tk) {
		return p.advance()
	}

	p.fatalError(err, p.peek())
	return nil
}

// setError records err and lets parsing continue
func (p *parser) setError(err error, tk *Token) {
	p.errors = append(p.errors, &ParseError{
		Err:      err,
		Token:    tk,
		Position: p.current,
		Recovery: p.current,
	})
}

// fatalError abandons the current declaration
func (p *parser) fatalError(err error, tk *Token) {
	panic(parseBailout{
		err:      err,
		token:    tk,
		position: p.current,
	})
}

func (p *parser) advance() *Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(tokens ...TokenType) bool {
	for _, token := range tokens {
		if p.check(token) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(token TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().token == token
}

func (p *parser) peek() *Token {
	return &p.tokens[p.current]
}

func (p *parser) previous() *Token {
	return &p.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().token == tkEOF
}

func (p *parser) synchronize() {
	if p.closesBlock() {
		return
	}
	if !p.isAtEnd() {
		p.advance()
	}
	for !p.isAtEnd() {
		if p.previous().token == tkSemicolon || p.closesBlock() {
			return
		}

		switch p.peek().token {
		case tkClass, tkFun, tkVar, tkFor, tkIf, tkWhile, tkPrint, tkReturn:
			return
		}

		p.advance()
	}
}

// closesBlock reports a '}' that ends the body being parsed
func (p *parser) closesBlock() bool {
	return p.blocks > 0 && p.check(tkRightBrace)
}
