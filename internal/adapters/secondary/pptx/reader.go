// Package pptx reads the OOXML presentation container directly:
// a zip archive of XML parts plus relationship files tying them
// together. Only the pieces the converter needs are parsed: slide
// order, shape roles, text frames, embedded media, notes.
package pptx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fredcamaral/pptx2slidev/internal/domain/ports"
)

// Part size caps. These guard against zip bombs; 50 MB is generous for
// any legitimate PPTX part.
const (
	maxPartSize  = 50 << 20
	maxTotalSize = 200 << 20
	maxEntries   = 10000
)

// Relationship type URIs from the OOXML spec.
const (
	relTypeSlide      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relTypeNotesSlide = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesSlide"
	relTypeVideo      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/video"
)

// Reader implements ports.PresentationReader over .pptx files.
type Reader struct{}

var _ ports.PresentationReader = (*Reader)(nil)

// NewReader creates a PPTX container reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read parses the presentation at path into the transfer form consumed
// by the extractor.
func (r *Reader) Read(ctx context.Context, path string) (*ports.SourcePresentation, error) {
	f, err := os.Open(path) // #nosec G304 - path is the user-supplied input file
	if err != nil {
		return nil, fmt.Errorf("opening presentation: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stating presentation: %w", err)
	}
	if info.Size() > maxTotalSize {
		return nil, fmt.Errorf("presentation size %d exceeds maximum allowed (%d bytes)", info.Size(), maxTotalSize)
	}

	zr, err := zip.NewReader(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("opening pptx container: %w", err)
	}
	if len(zr.File) > maxEntries {
		return nil, fmt.Errorf("container has too many entries (%d > %d)", len(zr.File), maxEntries)
	}

	slidePaths, err := r.slideOrder(zr)
	if err != nil {
		return nil, err
	}

	src := &ports.SourcePresentation{Slides: make([]ports.SourceSlide, 0, len(slidePaths))}
	for _, slidePath := range slidePaths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		slide, err := r.readSlide(zr, slidePath)
		if err != nil {
			return nil, fmt.Errorf("reading slide %s: %w", slidePath, err)
		}
		src.Slides = append(src.Slides, slide)
	}

	return src, nil
}

// slideOrder resolves ppt/presentation.xml's sldIdLst through the
// presentation relationships into ordered slide part names.
func (r *Reader) slideOrder(zr *zip.Reader) ([]string, error) {
	data, err := readPart(zr, "ppt/presentation.xml")
	if err != nil {
		return nil, fmt.Errorf("reading presentation.xml: %w", err)
	}

	// sldId carries two id attributes: the numeric slide id and the
	// r:id relationship reference. Only the namespaced one matters
	// here, so the walk picks attributes by namespace, not local name.
	relIDs, err := slideRelIDs(data)
	if err != nil {
		return nil, fmt.Errorf("parsing presentation.xml: %w", err)
	}

	rels, err := readRelationships(zr, "ppt/_rels/presentation.xml.rels")
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(relIDs))
	for _, relID := range relIDs {
		for _, rel := range rels {
			if rel.ID != relID || rel.Type != relTypeSlide {
				continue
			}
			target := rel.Target
			if !strings.HasPrefix(target, "ppt/") {
				target = resolveRelativePath("ppt", target)
			}
			paths = append(paths, target)
			break
		}
	}
	return paths, nil
}

const relNamespace = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

// slideRelIDs extracts the ordered r:id references from sldIdLst.
func slideRelIDs(data []byte) ([]string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var ids []string
	inList := false
	for {
		token, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				return ids, nil
			}
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "sldIdLst":
				inList = true
			case "sldId":
				if !inList {
					continue
				}
				for _, attr := range t.Attr {
					if attr.Name.Local == "id" && attr.Name.Space == relNamespace {
						ids = append(ids, attr.Value)
					}
				}
			}
		case xml.EndElement:
			if t.Name.Local == "sldIdLst" {
				return ids, nil
			}
		}
	}
}

// readPart reads one named part from the container, enforcing the
// per-part size cap.
func readPart(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		if f.UncompressedSize64 > maxPartSize {
			return nil, fmt.Errorf("part %s exceeds maximum allowed size (%d bytes)", name, maxPartSize)
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening part %s: %w", name, err)
		}
		defer func() { _ = rc.Close() }()

		data, err := io.ReadAll(io.LimitReader(rc, maxPartSize+1))
		if err != nil {
			return nil, fmt.Errorf("reading part %s: %w", name, err)
		}
		if len(data) > maxPartSize {
			return nil, fmt.Errorf("part %s actual size exceeds maximum allowed size", name)
		}
		return data, nil
	}
	return nil, fmt.Errorf("part not found in container: %s", name)
}

type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type relationships struct {
	XMLName       xml.Name       `xml:"Relationships"`
	Relationships []relationship `xml:"Relationship"`
}

// readRelationships parses a .rels part. A missing part is not an
// error: slides without images or notes have no relationships file.
func readRelationships(zr *zip.Reader, path string) ([]relationship, error) {
	data, err := readPart(zr, path)
	if err != nil {
		return nil, nil
	}
	var rels relationships
	if err := xml.Unmarshal(data, &rels); err != nil {
		return nil, fmt.Errorf("parsing relationships %s: %w", path, err)
	}
	return rels.Relationships, nil
}

// resolveRelativePath resolves rel against the directory base inside
// the container, honoring "." and "..".
func resolveRelativePath(base, rel string) string {
	if strings.HasPrefix(rel, "/") {
		return strings.TrimPrefix(rel, "/")
	}

	result := strings.Split(base, "/")
	for _, part := range strings.Split(rel, "/") {
		switch part {
		case "..":
			if len(result) > 0 {
				result = result[:len(result)-1]
			}
		case ".", "":
		default:
			result = append(result, part)
		}
	}
	return strings.Join(result, "/")
}

func partDir(path string) string {
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return ""
	}
	return path[:idx]
}
