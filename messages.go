package montecarlo

type MessageId int

type MessageWithId[M any] struct {
	Id      MessageId
	Message M
}

// Messages is a double buffered message queue. Messages sent during a tick stay
// readable for that tick and the following one. The driver calls Update once
// per tick, after all readers had their chance to read.
type Messages[M any] struct {
	_ noCopy

	prevId MessageId
	curr   []MessageWithId[M]
	prev   []MessageWithId[M]
}

func (m *Messages[M]) AppendTo(target []MessageWithId[M]) []MessageWithId[M] {
	target = append(target, m.prev...)
	target = append(target, m.curr...)
	return target
}

func (m *Messages[M]) Send(message M) {
	m.prevId += 1

	m.curr = append(m.curr, MessageWithId[M]{
		Id:      m.prevId,
		Message: message,
	})
}

func (m *Messages[M]) Update() {
	m.curr, m.prev = m.prev, m.curr

	// reuse the memory of the current buffer
	clear(m.curr)
	m.curr = m.curr[:0]
}

// Reader returns a new reader that has not yet seen any message.
func (m *Messages[M]) Reader() *MessageReader[M] {
	return &MessageReader[M]{messages: m}
}

type MessageReader[M any] struct {
	_ noCopy

	messages *Messages[M]
	lastId   MessageId

	scratch       []M
	scratchWithId []MessageWithId[M]
}

// Read returns all messages this reader has not seen yet. The returned slice is
// only valid until the next call to Read.
func (r *MessageReader[M]) Read() []M {
	r.scratchWithId = r.messages.AppendTo(r.scratchWithId[:0])

	buffer := r.scratchWithId

	// skip messages we've already read
	for len(buffer) > 0 {
		if buffer[0].Id > r.lastId {
			break
		}

		buffer = buffer[1:]
	}

	if len(buffer) > 0 {
		r.lastId = buffer[len(buffer)-1].Id
	}

	messages := r.scratch[:0]
	for _, message := range buffer {
		messages = append(messages, message.Message)
	}

	r.scratch = messages

	return messages
}
