package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
)

// Document is a single schemaless record inside a collection.
type Document map[string]interface{}

// DocumentStore is a generic JSON document store persisted to a single file.
// Collections are keyed by name, documents by a store-generated "id" field.
// Every mutation flushes the whole file; that is plenty for a mock backend and
// keeps the on-disk file readable and hand-editable.
type DocumentStore struct {
	path        string
	mu          sync.RWMutex
	collections map[string][]Document
}

// NewDocumentStore opens (or initializes) the store file at path.
func NewDocumentStore(path string) (*DocumentStore, error) {
	store := &DocumentStore{
		path:        path,
		collections: make(map[string][]Document),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}
		return nil, fmt.Errorf("failed to read store file %s: %w", path, err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &store.collections); err != nil {
			return nil, fmt.Errorf("failed to parse store file %s: %w", path, err)
		}
	}
	return store, nil
}

// List returns all documents of a collection. An unknown collection is an
// empty list, not an error, matching how a fresh db.json behaves.
func (s *DocumentStore) List(collection string) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]Document, len(s.collections[collection]))
	copy(docs, s.collections[collection])
	return docs, nil
}

// Get returns the document with the given id from a collection.
func (s *DocumentStore) Get(collection, id string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.collections[collection] {
		if docID(doc) == id {
			return doc, nil
		}
	}
	return nil, fmt.Errorf("document with ID %s not found in %s", id, collection)
}

// Insert adds a document to a collection, assigning a UUID id if the document
// does not carry one, and persists the store.
func (s *DocumentStore) Insert(collection string, doc Document) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if docID(doc) == "" {
		doc["id"] = uuid.New().String()
	}
	s.collections[collection] = append(s.collections[collection], doc)
	if err := s.flush(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Replace swaps the document with the given id for doc and persists the store.
func (s *DocumentStore) Replace(collection, id string, doc Document) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.collections[collection] {
		if docID(existing) == id {
			doc["id"] = id
			s.collections[collection][i] = doc
			if err := s.flush(); err != nil {
				return nil, err
			}
			return doc, nil
		}
	}
	return nil, fmt.Errorf("document with ID %s not found in %s for update", id, collection)
}

// Delete removes the document with the given id and persists the store.
func (s *DocumentStore) Delete(collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	for i, doc := range docs {
		if docID(doc) == id {
			s.collections[collection] = append(docs[:i], docs[i+1:]...)
			return s.flush()
		}
	}
	return fmt.Errorf("document with ID %s not found in %s for deletion", id, collection)
}

// flush writes the store file. Callers must hold the write lock.
func (s *DocumentStore) flush() error {
	data, err := json.MarshalIndent(s.collections, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write store file %s: %w", s.path, err)
	}
	return nil
}

func docID(doc Document) string {
	id, _ := doc["id"].(string)
	return id
}
