package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/dfontes/prazo/internal/domain"
)

// ClientsKey is the single KV key holding the serialized client list.
const ClientsKey = "allClientCards"

// RecordStore owns the persisted client list: one JSON array under a fixed
// key in the KV collaborator. It carries no cache; every Load round-trips so
// reads that follow a Save from another view stay consistent.
type RecordStore struct {
	kv KV

	// CurrentClientCode tracks the client a session is working on. It is an
	// explicit field rather than package state so independent store
	// instances never interfere.
	CurrentClientCode string
}

// NewRecordStore creates a RecordStore over the given KV collaborator.
func NewRecordStore(kv KV) *RecordStore {
	return &RecordStore{kv: kv}
}

// Load deserializes the persisted client list. An absent or malformed blob
// yields an empty list: stale or corrupted storage must never be fatal.
func (s *RecordStore) Load(ctx context.Context) ([]domain.Client, error) {
	raw, ok, err := s.kv.Get(ctx, ClientsKey)
	if err != nil {
		return nil, fmt.Errorf("loading clients: %w", err)
	}
	if !ok || raw == "" {
		return []domain.Client{}, nil
	}
	var clients []domain.Client
	if err := json.Unmarshal([]byte(raw), &clients); err != nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

// Save serializes and persists the full client list synchronously. Callers
// must Save after every mutation; there is no implicit auto-save.
func (s *RecordStore) Save(ctx context.Context, clients []domain.Client) error {
	raw, err := json.Marshal(clients)
	if err != nil {
		return fmt.Errorf("serializing clients: %w", err)
	}
	if err := s.kv.Set(ctx, ClientsKey, string(raw)); err != nil {
		return fmt.Errorf("saving clients: %w", err)
	}
	return nil
}

// FindByCode returns the index of the client whose code matches, or -1.
// Codes match case-insensitively.
func FindByCode(clients []domain.Client, code string) int {
	for i := range clients {
		if strings.EqualFold(clients[i].Code, code) {
			return i
		}
	}
	return -1
}

// FindByNameOrCode resolves a search query: exact code match first, then a
// case-insensitive substring match on the client name. The first match in
// store order wins. Returns -1 when nothing matches.
func FindByNameOrCode(clients []domain.Client, query string) int {
	query = strings.TrimSpace(query)
	if query == "" {
		return -1
	}
	if i := FindByCode(clients, query); i != -1 {
		return i
	}
	needle := strings.ToLower(query)
	for i := range clients {
		if strings.Contains(strings.ToLower(clients[i].Name), needle) {
			return i
		}
	}
	return -1
}

// SortByCode orders clients by code with numeric-aware comparison, so
// "C2" sorts before "C10".
func SortByCode(clients []domain.Client) {
	sort.SliceStable(clients, func(i, j int) bool {
		return naturalLess(clients[i].Code, clients[j].Code)
	})
}

// naturalLess compares strings chunk-wise, treating digit runs as numbers.
func naturalLess(a, b string) bool {
	for a != "" && b != "" {
		aChunk, aNum, aRest := nextChunk(a)
		bChunk, bNum, bRest := nextChunk(b)
		if aNum && bNum {
			// Compare digit runs numerically: shorter (trimmed) run is smaller.
			at, bt := strings.TrimLeft(aChunk, "0"), strings.TrimLeft(bChunk, "0")
			if len(at) != len(bt) {
				return len(at) < len(bt)
			}
			if at != bt {
				return at < bt
			}
		} else if aChunk != bChunk {
			return aChunk < bChunk
		}
		a, b = aRest, bRest
	}
	return len(a) < len(b)
}

func nextChunk(s string) (chunk string, numeric bool, rest string) {
	if s == "" {
		return "", false, ""
	}
	isDigit := func(c byte) bool { return c >= '0' && c <= '9' }
	numeric = isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == numeric {
		i++
	}
	return s[:i], numeric, s[i:]
}
