package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/gomutex/godocx"
)

const DocxMediaType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

var ErrInvalidCVRequest = errors.New("name and at least one skill are required")

type CVService struct {
	OutputDir string
}

func NewCVService(outputDir string) *CVService {
	return &CVService{OutputDir: outputDir}
}

// GeneratedCV is a document written to disk. Content holds the bytes this
// call produced, which later calls for a colliding file name cannot change.
// DownloadName is the file name offered to the client.
type GeneratedCV struct {
	Path         string
	DownloadName string
	Content      []byte
}

// Generate writes a one page CV listing the comma separated skills and
// returns where it was saved. An existing file for the same name is replaced
// atomically, so concurrent requests never see a half written document.
func (s *CVService) Generate(name, skills string) (*GeneratedCV, error) {
	name = strings.TrimSpace(name)
	var list []string
	for _, skill := range strings.Split(skills, ",") {
		if skill = strings.TrimSpace(skill); skill != "" {
			list = append(list, skill)
		}
	}
	if name == "" || len(list) == 0 {
		return nil, ErrInvalidCVRequest
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("new cv document: %w", err)
	}
	if _, err := doc.AddHeading("Curriculum Vitae - "+name, 1); err != nil {
		return nil, fmt.Errorf("add cv heading: %w", err)
	}
	doc.AddParagraph("Skills:")
	for _, skill := range list {
		doc.AddParagraph("• " + skill)
	}

	if err := os.MkdirAll(s.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create cv dir: %w", err)
	}
	tmp, err := os.CreateTemp(s.OutputDir, "cv-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create cv file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()

	path := filepath.Join(s.OutputDir, safeFileName(name)+"_cv.docx")
	if err := doc.SaveTo(tmpPath); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("write cv: %w", err)
	}
	content, err := os.ReadFile(tmpPath)
	if err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("read cv: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("write cv: %w", err)
	}
	return &GeneratedCV{Path: path, DownloadName: name + "_cv.docx", Content: content}, nil
}

// safeFileName replaces spaces with underscores and drops anything that is not
// a letter, digit, '-' or '_'.
func safeFileName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r == ' ':
			b.WriteRune('_')
		case r == '-' || r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "cv"
	}
	return b.String()
}
