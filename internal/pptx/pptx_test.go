package pptx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"
)

func readPart(t *testing.T, zr *zip.Reader, name string) string {
	t.Helper()
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				t.Fatalf("open %s: %v", name, err)
			}
			defer rc.Close()
			data, err := io.ReadAll(rc)
			if err != nil {
				t.Fatalf("read %s: %v", name, err)
			}
			return string(data)
		}
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func hasPart(zr *zip.Reader, name string) bool {
	for _, f := range zr.File {
		if f.Name == name {
			return true
		}
	}
	return false
}

func buildZip(t *testing.T, b *Builder) *zip.Reader {
	t.Helper()
	data, err := b.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("not a zip: %v", err)
	}
	return zr
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestBuilder_MinimalDeck(t *testing.T) {
	b := NewBuilder(DefaultTheme(), "Test Deck")
	b.AddTitleSlide("Test Deck", "For students")
	b.AddContentSlide("First", []string{"point one", "point two"}, nil, "")

	zr := buildZip(t, b)

	for _, part := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/slide2.xml",
		"docProps/core.xml",
		"docProps/app.xml",
	} {
		if !hasPart(zr, part) {
			t.Errorf("missing part %s", part)
		}
	}

	pres := readPart(t, zr, "ppt/presentation.xml")
	if !strings.Contains(pres, `cx="12192000" cy="6858000"`) {
		t.Error("presentation must declare 16:9 slide size")
	}
	if strings.Contains(pres, "notesMasterIdLst") {
		t.Error("deck without notes must not declare a notes master")
	}

	slide2 := readPart(t, zr, "ppt/slides/slide2.xml")
	if !strings.Contains(slide2, "point one") || !strings.Contains(slide2, "point two") {
		t.Error("bullets missing from slide body")
	}
}

func TestBuilder_SpeakerNotes(t *testing.T) {
	b := NewBuilder(DefaultTheme(), "Deck")
	b.AddTitleSlide("Deck", "")
	b.AddContentSlide("H", []string{"b"}, nil, "remember to pause here")

	zr := buildZip(t, b)

	if !hasPart(zr, "ppt/notesMasters/notesMaster1.xml") {
		t.Error("notes master missing")
	}
	notes := readPart(t, zr, "ppt/notesSlides/notesSlide2.xml")
	if !strings.Contains(notes, "remember to pause here") {
		t.Error("notes text missing")
	}
	pres := readPart(t, zr, "ppt/presentation.xml")
	if !strings.Contains(pres, "notesMasterIdLst") {
		t.Error("presentation must declare the notes master")
	}
}

func TestBuilder_EmbedsDecodablePNG(t *testing.T) {
	b := NewBuilder(DefaultTheme(), "Deck")
	b.AddContentSlide("H", []string{"b"}, &Image{Data: pngBytes(t, 40, 20), Alt: "a tiny chart"}, "")

	zr := buildZip(t, b)

	if !hasPart(zr, "ppt/media/image1.png") {
		t.Fatal("media part missing")
	}
	slide := readPart(t, zr, "ppt/slides/slide1.xml")
	if !strings.Contains(slide, "<p:pic>") {
		t.Error("picture element missing")
	}
	rels := readPart(t, zr, "ppt/slides/_rels/slide1.xml.rels")
	if !strings.Contains(rels, "media/image1.png") {
		t.Error("image relationship missing")
	}
	types := readPart(t, zr, "[Content_Types].xml")
	if !strings.Contains(types, `Extension="png"`) {
		t.Error("png content type missing")
	}
}

func TestBuilder_RejectsUndecodableImage(t *testing.T) {
	b := NewBuilder(DefaultTheme(), "Deck")
	b.AddContentSlide("H", []string{"b"}, &Image{Data: []byte("GIF89a not really")}, "")

	zr := buildZip(t, b)

	if hasPart(zr, "ppt/media/image1.png") || hasPart(zr, "ppt/media/image1.jpeg") {
		t.Error("undecodable image must not be embedded")
	}
	slide := readPart(t, zr, "ppt/slides/slide1.xml")
	if strings.Contains(slide, "<p:pic>") {
		t.Error("slide must omit picture when image is undecodable")
	}
}

func TestBuilder_QuizSlideMarksCorrectOption(t *testing.T) {
	b := NewBuilder(DefaultTheme(), "Deck")
	b.AddQuizSlide("Which planet is largest?", []string{"Mars", "Jupiter", "Venus", "Earth"}, 1)

	zr := buildZip(t, b)
	slide := readPart(t, zr, "ppt/slides/slide1.xml")
	if !strings.Contains(slide, "✓ B. Jupiter") {
		t.Error("correct option marker missing")
	}
	if !strings.Contains(slide, "A. Mars") {
		t.Error("options missing")
	}
}

func TestBuilder_EscapesXML(t *testing.T) {
	b := NewBuilder(DefaultTheme(), "Deck")
	b.AddContentSlide(`Acids & <Bases>`, []string{`pH < 7 means "acidic"`}, nil, "")

	zr := buildZip(t, b)
	slide := readPart(t, zr, "ppt/slides/slide1.xml")
	if strings.Contains(slide, "Acids & <Bases>") {
		t.Error("heading not escaped")
	}
	if !strings.Contains(slide, "Acids &amp; &lt;Bases&gt;") {
		t.Error("escaped heading missing")
	}
}

func TestPictureXML_ScalesToFit(t *testing.T) {
	// 超宽图：宽钉在放置框宽度，高按比例缩放（4:1）
	xml := pictureXML(5, "wide", 4000, 1000)
	wantW := imageBoxW
	wantH := int64(1000) * emuPerPixel * imageBoxW / (int64(4000) * emuPerPixel)
	if !strings.Contains(xml, fmt.Sprintf(`cx="%d"`, wantW)) {
		t.Errorf("width not clamped to %d: %s", wantW, xml)
	}
	if !strings.Contains(xml, fmt.Sprintf(`cy="%d"`, wantH)) {
		t.Errorf("height not scaled to %d: %s", wantH, xml)
	}
}

func TestEmu(t *testing.T) {
	if got := emu(1.0); got != 914400 {
		t.Errorf("emu(1.0) = %d", got)
	}
	inches := 13.333
	if got := emu(13.333); got != int64(inches*914400) {
		t.Errorf("emu(13.333) = %d", got)
	}
}
