package ports

// Buffers hands out byte slices of at least the requested length. Slices
// returned to Put must not be used afterwards.
type Buffers interface {
	Get(length int) []byte
	Put(buf []byte)
}
