package chess

// Tag names the engine reads or maintains.
const (
	EventTag  = "Event"
	WhiteTag  = "White"
	BlackTag  = "Black"
	ResultTag = "Result"
	SetupTag  = "SetUp"
	FENTag    = "FEN"
)

// Tag is one header pair.
type Tag struct {
	Key   string
	Value string
}

// Header is an insertion-ordered tag mapping. Re-setting an existing key
// keeps its position; deleting and re-adding moves it to the end.
type Header struct {
	keys   []string
	values map[string]string
}

// NewHeader creates an empty header.
func NewHeader() *Header {
	return &Header{values: make(map[string]string)}
}

// Set assigns value to key.
func (h *Header) Set(key, value string) {
	if _, ok := h.values[key]; !ok {
		h.keys = append(h.keys, key)
	}
	h.values[key] = value
}

// Get returns the value of key.
func (h *Header) Get(key string) (string, bool) {
	v, ok := h.values[key]
	return v, ok
}

// Delete removes key.
func (h *Header) Delete(key string) {
	if _, ok := h.values[key]; !ok {
		return
	}
	delete(h.values, key)
	for i, k := range h.keys {
		if k == key {
			h.keys = append(h.keys[:i], h.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of tags.
func (h *Header) Len() int {
	return len(h.keys)
}

// Clear removes every tag.
func (h *Header) Clear() {
	h.keys = nil
	h.values = make(map[string]string)
}

// Tags returns the tags in insertion order.
func (h *Header) Tags() []Tag {
	tags := make([]Tag, len(h.keys))
	for i, k := range h.keys {
		tags[i] = Tag{Key: k, Value: h.values[k]}
	}
	return tags
}
