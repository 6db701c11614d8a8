package store

// MemStore is an in-memory ObjectStore for tests and local runs.
type MemStore struct {
	objects map[string]map[string][]byte

	// GetErr and PutErr, when set, are returned for the matching key
	// instead of performing the operation.
	GetErr map[string]error
	PutErr map[string]error
}

func NewMemStore() *MemStore {
	return &MemStore{objects: make(map[string]map[string][]byte)}
}

func (m *MemStore) Get(bucket, key string) ([]byte, error) {
	if err, ok := m.GetErr[key]; ok {
		return nil, err
	}
	b, ok := m.objects[bucket]
	if !ok {
		return nil, &NotFoundError{Bucket: bucket, Key: key}
	}
	body, ok := b[key]
	if !ok {
		return nil, &NotFoundError{Bucket: bucket, Key: key}
	}
	return body, nil
}

func (m *MemStore) Put(bucket, key string, body []byte) error {
	if err, ok := m.PutErr[key]; ok {
		return err
	}
	if m.objects[bucket] == nil {
		m.objects[bucket] = make(map[string][]byte)
	}
	m.objects[bucket][key] = append([]byte(nil), body...)
	return nil
}
