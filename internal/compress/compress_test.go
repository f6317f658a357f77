package compress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodecsRoundTrip(t *testing.T) {
	payload := []byte(`[{"id":"a","target":"b","link_type":"WARMUP","display_order":1}]`)

	codecs := map[string]Compress{
		"nop":    NewNop(),
		"gzip":   NewGZip(),
		"brotli": NewBrotli(),
		"lz4":    NewLZ4(),
	}

	for name, codec := range codecs {
		encoded, err := codec.Encode(payload)
		assert.NoError(t, err, name)

		decoded, err := codec.Decode(encoded)
		assert.NoError(t, err, name)
		assert.Equal(t, payload, decoded, name)
	}
}
