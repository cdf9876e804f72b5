package internal

import (
	"errors"
	"fmt"
)

// ScanError is a recoverable lexer error
type ScanError struct {
	Line int
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// ParseError records a failed declaration. Position is the index of the
// offending token and Recovery the index where parsing resumed.
type ParseError struct {
	Err      error
	Token    *Token
	Position int
	Recovery int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Token.line, where(e.Token), e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ResolveError aborts the resolver pass
type ResolveError struct {
	Token *Token
	Err   error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Token.line, where(e.Token), e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// ErrorKind classifies runtime errors
type ErrorKind int

const (
	KindTypeMismatch ErrorKind = iota
	KindUndefinedVariable
	KindNotCallable
	KindArity
	KindUnexpectedNil
	KindStackOverflow
)

func (k ErrorKind) String() string {
	switch k {
	case KindTypeMismatch:
		return "typeMismatch"
	case KindUndefinedVariable:
		return "undefinedVariable"
	case KindNotCallable:
		return "notCallable"
	case KindArity:
		return "arity"
	case KindUnexpectedNil:
		return "unexpectedNil"
	case KindStackOverflow:
		return "stackOverflow"
	}
	return "unknown"
}

// RuntimeError aborts interpretation of the current top level statement
type RuntimeError struct {
	Kind  ErrorKind
	Token *Token
	Err   error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Runtime error%s: %s", e.Token.line, where(e.Token), e.Err)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

func runtimeErr(kind ErrorKind, err error, tk *Token) *RuntimeError {
	return &RuntimeError{Kind: kind, Token: tk, Err: err}
}

func where(tk *Token) string {
	if tk == nil {
		return ""
	}
	if tk.token == tkEOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", tk.lexeme)
}

// Lexer errors
var errUnexpectedChar = errors.New("Unexpected character.")
var errUnclosedString = errors.New("Unterminated string.")
var errMalformedNumber = errors.New("Malformed number literal.")

// Parser errors
var errUnclosedParen = errors.New("Expect ')' after expression.")
var errUnclosedArgs = errors.New("Expect ')' after arguments.")
var errUnclosedParams = errors.New("Expect ')' after parameters.")
var errUndefinedExpr = errors.New("Expect expression.")
var errInvalidAssignTarget = errors.New("Invalid assignment target.")
var errMaxArguments = errors.New("Can't have more than 255 arguments.")
var errMaxParameters = errors.New("Can't have more than 255 parameters.")
var errExpectedIdentifier = errors.New("Expect variable name.")
var errExpectedInitializer = errors.New("Expect '=' after variable name.")
var errExpectedSemicolon = errors.New("Expect ';' after statement.")
var errExpectedFunctionName = errors.New("Expect function name.")
var errExpectedFunctionParam = errors.New("Expect parameter name.")
var errExpectedClassName = errors.New("Expect class name.")
var errExpectedParen = errors.New("Expect '('.")
var errExpectedOpeningBrace = errors.New("Expect '{'.")
var errExpectedClosingBrace = errors.New("Expect '}'.")

// Resolver errors
var errOwnInitializer = errors.New("Can't read local variable in its own initializer.")
var errAlreadyDeclared = errors.New("Already a variable with this name in this scope.")
var errTopLevelReturn = errors.New("Can't return from top-level code.")

// Runtime errors
var errUndefinedVar = errors.New("Undefined variable")
var errOnlyNumbers = errors.New("Operand must be a number.")
var errOnlyBools = errors.New("Operand must be a boolean.")
var errOperandsNumbers = errors.New("Operands must be numbers.")
var errOperandsNumbersOrStrings = errors.New("Operands must be two numbers or two strings.")
var errOperandsSameType = errors.New("Operands must have the same type.")
var errUnexpectedNil = errors.New("Unexpected nil operand.")
var errOnlyFunction = errors.New("Can only call functions and classes.")
var errInvalidNumberArguments = errors.New("Wrong number of arguments")
var errStackOverflow = errors.New("Stack overflow.")
