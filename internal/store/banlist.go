package store

import (
	"encoding/json"
	"log"
	"os"
	"strings"
)

// BanList is the persisted set of assistant names permanently barred from
// (re)creation. Names are stored lowercased; the set only ever grows.
type BanList struct {
	path  string
	names map[string]struct{}
}

type banListFile struct {
	Banned []string `json:"banned"`
}

// LoadBanList reads the ban list from path. A missing or malformed file is
// not an error: the list starts empty and the problem is only logged.
func LoadBanList(path string) *BanList {
	b := &BanList{path: path, names: make(map[string]struct{})}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("store: reading ban list %s: %v", path, err)
		}
		return b
	}

	var f banListFile
	if err := json.Unmarshal(data, &f); err != nil {
		log.Printf("store: parsing ban list %s: %v (starting empty)", path, err)
		return b
	}
	for _, name := range f.Banned {
		b.names[strings.ToLower(name)] = struct{}{}
	}
	return b
}

func (b *BanList) Contains(name string) bool {
	_, ok := b.names[strings.ToLower(name)]
	return ok
}

// Add marks a name as banned. Idempotent; callers persist via Save.
func (b *BanList) Add(name string) {
	b.names[strings.ToLower(name)] = struct{}{}
}

func (b *BanList) Names() []string {
	names := make([]string, 0, len(b.names))
	for n := range b.names {
		names = append(names, n)
	}
	return names
}

func (b *BanList) Save() error {
	data, err := json.MarshalIndent(banListFile{Banned: b.Names()}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(b.path, data, 0644)
}
