package internal

// class supports declaration and instantiation only. Methods are kept
// with their closures but nothing dispatches them yet.
type class struct {
	name    string
	methods map[string]*function
}

func (c *class) arity() int {
	return 0
}

func (c *class) call(exec *Interpreter, arguments []interface{}) (interface{}, error) {
	return &instance{class: c}, nil
}

func (c *class) String() string {
	return c.name
}

type instance struct {
	class *class
}

func (o *instance) String() string {
	return o.class.name + " instance"
}
