package rtcrelay

// BorrowedBytes is a non-owning view over a buffer owned by the native engine.
// The view is only valid while the callback that delivered it is running.
// Sinks that need the bytes after Forward returns must call Clone before
// returning.
type BorrowedBytes struct {
	data []byte
}

// Borrow wraps data in a BorrowedBytes view without copying it.
func Borrow(data []byte) BorrowedBytes {
	return BorrowedBytes{data: data}
}

// Bytes returns the underlying buffer. The slice aliases native memory.
func (b BorrowedBytes) Bytes() []byte {
	return b.data
}

// Len returns the length of the view.
func (b BorrowedBytes) Len() int {
	return len(b.data)
}

// IsNil reports whether the view wraps a nil buffer.
func (b BorrowedBytes) IsNil() bool {
	return b.data == nil
}

// Clone copies the viewed bytes into memory owned by the caller.
func (b BorrowedBytes) Clone() []byte {
	if b.data == nil {
		return nil
	}
	owned := make([]byte, len(b.data))
	copy(owned, b.data)
	return owned
}
