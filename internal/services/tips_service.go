package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Tip is one entry of the career advice file. The file is hand edited, so
// entries are kept as free-form objects.
type Tip map[string]any

type TipsService struct {
	Path string
}

func NewTipsService(path string) *TipsService {
	return &TipsService{Path: path}
}

// Load reads the tips file on every call so edits show up without a restart.
// A missing file means no tips.
func (s *TipsService) Load() ([]Tip, error) {
	b, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return []Tip{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read tips %s: %w", s.Path, err)
	}

	tips := []Tip{}
	if err := json.Unmarshal(b, &tips); err != nil {
		return nil, fmt.Errorf("parse tips %s: %w", s.Path, err)
	}
	return tips, nil
}
