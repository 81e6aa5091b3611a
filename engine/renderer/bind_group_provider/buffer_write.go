package bind_group_provider

// BufferWrite is one queued uniform upload. Data lands Offset bytes into the buffer
// registered at Binding on Provider; the write is dropped if no such buffer exists.
type BufferWrite struct {
	Provider BindGroupProvider
	Binding  int
	Offset   uint64
	Data     []byte
}
