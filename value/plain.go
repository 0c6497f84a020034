package value

// Plain creates values in process without an engine behind them.
// It satisfies jsbridge.Context.
type Plain struct{}

func (Plain) CreateNull() Value { return NewNull() }

func (Plain) CreateUndefined() Value { return NewUndefined() }

func (Plain) CreateBoolean(b bool) Value { return NewBoolean(b) }

func (Plain) CreateNumber(n Number) Value { return NewNumber(n) }

func (Plain) CreateString(s string) Value { return NewString(s) }
