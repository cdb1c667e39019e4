package storage

// MemStore is a volatile backend used when durable storage is unavailable and
// in tests. State lasts for the session only.
type MemStore struct {
	entries map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{entries: make(map[string][]byte)}
}

func (s *MemStore) Get(key string) ([]byte, bool) {
	data, ok := s.entries[key]
	return data, ok
}

func (s *MemStore) Put(key string, data []byte) error {
	s.entries[key] = append([]byte(nil), data...)
	return nil
}

func (s *MemStore) Close() error {
	return nil
}
