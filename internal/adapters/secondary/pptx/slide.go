package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/fredcamaral/pptx2slidev/internal/domain/ports"
)

// blob is the eager-read ImageBlob implementation. A failed media read
// is carried as err so the extractor can skip the shape without the
// whole slide failing.
type blob struct {
	name string
	data []byte
	err  error
}

func (b *blob) Name() string { return b.name }

func (b *blob) Bytes() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.data, nil
}

// readSlide parses one slide part plus its relationships into shapes in
// document order, with notes attached from the related notes slide.
func (r *Reader) readSlide(zr *zip.Reader, path string) (ports.SourceSlide, error) {
	data, err := readPart(zr, path)
	if err != nil {
		return ports.SourceSlide{}, err
	}

	relsPath := strings.Replace(path, "slides/", "slides/_rels/", 1) + ".rels"
	rels, err := readRelationships(zr, relsPath)
	if err != nil {
		return ports.SourceSlide{}, err
	}

	slide := ports.SourceSlide{
		Shapes: parseShapeTree(data, func(relID string) ports.ImageBlob {
			return resolveMedia(zr, rels, path, relID)
		}, func(relID string) bool {
			return relIsVideo(rels, relID)
		}),
	}

	slide.Notes = r.readNotes(zr, rels, path)
	return slide, nil
}

// resolveMedia reads the media part behind an r:embed relationship ID.
func resolveMedia(zr *zip.Reader, rels []relationship, slidePath, relID string) ports.ImageBlob {
	for _, rel := range rels {
		if rel.ID != relID {
			continue
		}
		target := rel.Target
		if !strings.HasPrefix(target, "ppt/") {
			target = resolveRelativePath(partDir(slidePath), target)
		}
		data, err := readPart(zr, target)
		return &blob{name: target, data: data, err: err}
	}
	return &blob{name: relID, err: errors.New("media relationship not found: " + relID)}
}

func relIsVideo(rels []relationship, relID string) bool {
	for _, rel := range rels {
		if rel.ID == relID && rel.Type == relTypeVideo {
			return true
		}
	}
	return false
}

// parseShapeTree walks the slide XML token stream. It recognizes text
// shapes (p:sp with a txBody), pictures (p:pic with a blip embed) and
// tables (graphicFrame with a:tbl); anything else becomes ShapeUnknown
// and is dropped at the end.
func parseShapeTree(data []byte, media func(relID string) ports.ImageBlob, isVideo func(relID string) bool) []ports.SourceShape {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var shapes []ports.SourceShape

	var (
		inSp, inPic, inGraphicFrame  bool
		inTxBody, inParagraph, inRun bool
		sawTable                     bool
		videoShape                   bool
		current                      ports.SourceShape
		para                         ports.SourceParagraph
		runText                      strings.Builder
	)

	flushShape := func() {
		if current.Kind == ports.ShapeUnknown {
			return
		}
		shapes = append(shapes, current)
	}

	for {
		token, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			// Malformed slide XML: keep whatever parsed cleanly.
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "sp":
				inSp = true
				current = ports.SourceShape{Kind: ports.ShapeUnknown}
			case "pic":
				inPic = true
				videoShape = false
				current = ports.SourceShape{Kind: ports.ShapeUnknown}
			case "graphicFrame":
				inGraphicFrame = true
				sawTable = false
				current = ports.SourceShape{Kind: ports.ShapeUnknown}
			case "tbl":
				if inGraphicFrame {
					sawTable = true
				}
			case "ph":
				if inSp {
					for _, attr := range t.Attr {
						if attr.Name.Local == "type" {
							current.Placeholder = attr.Value
							switch attr.Value {
							case "title", "ctrTitle":
								current.IsTitle = true
							}
						}
					}
				}
			case "txBody":
				if inSp {
					inTxBody = true
					current.Kind = ports.ShapeText
				}
			case "p":
				if inTxBody {
					inParagraph = true
					para = ports.SourceParagraph{}
				}
			case "pPr":
				if inParagraph {
					for _, attr := range t.Attr {
						if attr.Name.Local == "lvl" {
							if v, err := strconv.Atoi(attr.Value); err == nil && v >= 0 {
								para.Level = v
							}
						}
					}
				}
			case "r", "br":
				if inParagraph {
					inRun = true
				}
			case "t":
				if inParagraph {
					runText.Reset()
					inRun = true
				}
			case "videoFile":
				if inPic {
					videoShape = true
				}
			case "blip":
				if inPic {
					for _, attr := range t.Attr {
						if attr.Name.Local == "embed" {
							current.Kind = ports.ShapeImage
							current.Image = media(attr.Value)
							if isVideo(attr.Value) {
								videoShape = true
							}
						}
					}
				}
			}
		case xml.CharData:
			if inRun {
				runText.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				if inParagraph {
					para.Text += runText.String()
					runText.Reset()
				}
				inRun = false
			case "p":
				if inParagraph {
					current.Paragraphs = append(current.Paragraphs, para)
					inParagraph = false
				}
			case "txBody":
				inTxBody = false
			case "sp":
				if inSp {
					flushShape()
					inSp = false
					current = ports.SourceShape{Kind: ports.ShapeUnknown}
				}
			case "pic":
				if inPic {
					if videoShape {
						current.Kind = ports.ShapeVideo
					}
					flushShape()
					inPic = false
					current = ports.SourceShape{Kind: ports.ShapeUnknown}
				}
			case "graphicFrame":
				if inGraphicFrame {
					if sawTable {
						current.Kind = ports.ShapeTable
						flushShape()
					}
					inGraphicFrame = false
					current = ports.SourceShape{Kind: ports.ShapeUnknown}
				}
			}
		}
	}

	return shapes
}

// readNotes parses the slide's notes part, if related, concatenating
// the paragraphs of the body placeholder.
func (r *Reader) readNotes(zr *zip.Reader, rels []relationship, slidePath string) string {
	for _, rel := range rels {
		if rel.Type != relTypeNotesSlide {
			continue
		}
		target := rel.Target
		if !strings.HasPrefix(target, "ppt/") {
			target = resolveRelativePath(partDir(slidePath), target)
		}
		data, err := readPart(zr, target)
		if err != nil {
			continue
		}
		return parseNotesXML(data)
	}
	return ""
}

// parseNotesXML extracts the text of the notes body placeholder. Notes
// slides also carry slide-image and slide-number placeholders, which
// are skipped.
func parseNotesXML(data []byte) string {
	shapes := parseShapeTree(data, func(string) ports.ImageBlob { return nil }, func(string) bool { return false })

	var lines []string
	for _, shape := range shapes {
		if shape.Kind != ports.ShapeText || shape.Placeholder != "body" {
			continue
		}
		for _, p := range shape.Paragraphs {
			if strings.TrimSpace(p.Text) != "" {
				lines = append(lines, p.Text)
			}
		}
	}
	return strings.Join(lines, "\n")
}
