package validations

// MessageFunc produces message text from the resource that failed validation.
// property is nil unless the resource is ModelAware and its model knows the attribute.
type MessageFunc func(resource any, property *Property) string

// Message is either absent (zero value), a literal text or a deferred producer.
type Message struct {
	text     string
	producer MessageFunc
	set      bool
}

// Literal wraps text that is used verbatim.
func Literal(text string) Message {
	return Message{text: text, set: true}
}

// Deferred wraps a producer evaluated once, when the violation is built.
// A nil producer yields an absent message.
func Deferred(fn MessageFunc) Message {
	if fn == nil {
		return Message{}
	}
	return Message{producer: fn, set: true}
}

// IsSet reports whether the message carries text or a producer.
func (m Message) IsSet() bool { return m.set }

// IsDeferred reports whether the message is produced lazily.
func (m Message) IsDeferred() bool { return m.producer != nil }

// Text returns the literal text. It is empty for deferred and absent messages.
func (m Message) Text() string { return m.text }

func (m Message) evaluate(resource any, property *Property) string {
	if m.producer != nil {
		return m.producer(resource, property)
	}
	return m.text
}
