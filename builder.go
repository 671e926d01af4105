package iso8583

import "sync"

// Builder pool for reuse
var builderPool = sync.Pool{
	New: func() interface{} {
		return &Builder{
			errors: make([]error, 0, 4),
		}
	},
}

// Builder is a fluent, pooled helper for assembling a Message field by
// field. It defers every SetMTI/SetField error until Build/MustBuild so
// call chains read linearly instead of checking an error after each step.
type Builder struct {
	msg    *Message
	errors []error
}

// NewBuilder retrieves a Builder from the pool and attaches a fresh
// Message built with opts (see NewMessage).
func NewBuilder(opts ...MessageOption) *Builder {
	b := builderPool.Get().(*Builder)
	b.msg = NewMessage(opts...)
	b.errors = b.errors[:0]
	return b
}

// Release returns the builder to the pool. Call this after Build/MustBuild
// has transferred ownership of the underlying Message elsewhere.
func (b *Builder) Release() {
	b.msg = nil
	b.errors = b.errors[:0]
	builderPool.Put(b)
}

// MTI sets the Message Type Indicator.
func (b *Builder) MTI(mti string) *Builder {
	if err := b.msg.SetMTI(mti); err != nil {
		b.errors = append(b.errors, err)
	}
	return b
}

// Field sets one field's logical value.
func (b *Builder) Field(fieldNum int, value string) *Builder {
	if err := b.msg.SetField(fieldNum, value); err != nil {
		b.errors = append(b.errors, err)
	}
	return b
}

func (b *Builder) PAN(pan string) *Builder {
	return b.Field(2, pan)
}

func (b *Builder) ProcessingCode(code string) *Builder {
	return b.Field(3, code)
}

func (b *Builder) Amount(amount string) *Builder {
	return b.Field(4, amount)
}

func (b *Builder) STAN(stan string) *Builder {
	return b.Field(11, stan)
}

func (b *Builder) Build() (*Message, error) {
	if len(b.errors) > 0 {
		return nil, b.errors[0]
	}
	msg := b.msg
	b.msg = nil // Transfer ownership
	return msg, nil
}

func (b *Builder) MustBuild() *Message {
	if len(b.errors) > 0 {
		panic(b.errors[0])
	}
	msg := b.msg
	b.msg = nil // Transfer ownership
	return msg
}
