package compress

// Compress encodes payloads before they leave the process (cache entries,
// queued events) and decodes them on the way back in.
type Compress interface {
	Encode(data []byte) ([]byte, error)
	Decode(data []byte) ([]byte, error)
}
