package store

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"sort"
	"strings"
	"unicode/utf8"
)

// Creation rejection reasons, reported inline to the caller and never
// persisted.
var (
	ErrNoCreator       = errors.New("creator name is required")
	ErrNoName          = errors.New("assistant name is required")
	ErrPurposeTooShort = errors.New("purpose must be at least 15 characters")
	ErrNameBanned      = errors.New("this assistant name has been banned")
)

const minPurposeLen = 15

// Profile describes one assistant persona. The purpose statement is the
// entire knowledge scope the assistant is allowed to answer within.
type Profile struct {
	Name      string `json:"name"`
	Purpose   string `json:"description"`
	ImagePath string `json:"imagePath,omitempty"`
	Creator   string `json:"creator,omitempty"`
}

type profilesFile struct {
	Profiles []Profile `json:"profiles"`
}

// ProfileStore owns the live profile collection for the process lifetime and
// persists it as a whole on every change. The ban list has veto power over
// admission: banned names can neither be created nor loaded.
type ProfileStore struct {
	path     string
	banned   *BanList
	profiles map[string]Profile
}

// LoadProfileStore reads the profile store from path, filtering out any
// entry whose name is banned. Missing or malformed files start the store
// empty; this is logged, never fatal.
func LoadProfileStore(path string, banned *BanList) *ProfileStore {
	s := &ProfileStore{path: path, banned: banned, profiles: make(map[string]Profile)}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("store: reading profiles %s: %v", path, err)
		}
		return s
	}

	var f profilesFile
	if err := json.Unmarshal(data, &f); err != nil {
		log.Printf("store: parsing profiles %s: %v (starting empty)", path, err)
		return s
	}
	for _, p := range f.Profiles {
		if p.Name == "" || banned.Contains(p.Name) {
			continue
		}
		s.profiles[p.Name] = p
	}
	return s
}

// Create validates and stores a new profile, overwriting any existing entry
// with the same exact name, then persists the full store.
func (s *ProfileStore) Create(name, purpose, creator string) (Profile, error) {
	name = strings.TrimSpace(name)
	purpose = strings.TrimSpace(purpose)
	creator = strings.TrimSpace(creator)

	if creator == "" {
		return Profile{}, ErrNoCreator
	}
	if name == "" {
		return Profile{}, ErrNoName
	}
	if utf8.RuneCountInString(purpose) < minPurposeLen {
		return Profile{}, ErrPurposeTooShort
	}
	if s.banned.Contains(name) {
		return Profile{}, ErrNameBanned
	}

	p := Profile{Name: name, Purpose: purpose, Creator: creator}
	s.profiles[name] = p
	if err := s.save(); err != nil {
		log.Printf("store: saving profiles: %v", err)
	}
	return p, nil
}

// Ban removes the profile from the live store and adds its name to the ban
// list, persisting both. The assistant's conversation log is deliberately
// left orphaned on disk.
func (s *ProfileStore) Ban(name string) {
	delete(s.profiles, name)
	s.banned.Add(name)
	if err := s.banned.Save(); err != nil {
		log.Printf("store: saving ban list: %v", err)
	}
	if err := s.save(); err != nil {
		log.Printf("store: saving profiles: %v", err)
	}
}

func (s *ProfileStore) Get(name string) (Profile, bool) {
	p, ok := s.profiles[name]
	return p, ok
}

// All returns the live profiles sorted by name.
func (s *ProfileStore) All() []Profile {
	out := make([]Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *ProfileStore) save() error {
	f := profilesFile{Profiles: []Profile{}}
	for _, p := range s.profiles {
		if s.banned.Contains(p.Name) {
			continue
		}
		f.Profiles = append(f.Profiles, p)
	}
	sort.Slice(f.Profiles, func(i, j int) bool { return f.Profiles[i].Name < f.Profiles[j].Name })

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
