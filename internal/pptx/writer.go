package pptx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strings"
	"time"
)

// EMU 每像素换算（96 DPI）
const emuPerPixel = 9525

// 图片放置区域：右侧 5.6x5.0 英寸，起点 (7.2, 1.7)
var (
	imageBoxX = emu(7.2)
	imageBoxY = emu(1.7)
	imageBoxW = emu(5.6)
	imageBoxH = emu(5.0)
)

// Image 待嵌入的图片字节及替代文本
type Image struct {
	Data []byte
	Alt  string
}

type slide struct {
	xml      string
	imageIdx int // 0 表示无图，>0 为 media 序号
	imageExt string
	notes    string
}

type media struct {
	data []byte
	ext  string
}

// Builder 逐页累积幻灯片，最终序列化为 PPTX 字节流。
// 非并发安全，每个文档使用独立实例。
type Builder struct {
	theme  Theme
	title  string
	slides []slide
	medias []media
	now    time.Time
}

// NewBuilder 创建指定主题的文档构建器
func NewBuilder(theme Theme, title string) *Builder {
	return &Builder{
		theme: theme.normalize(),
		title: title,
		now:   time.Now().UTC(),
	}
}

// SlideCount 已添加的幻灯片数量
func (b *Builder) SlideCount() int {
	return len(b.slides)
}

// AddTitleSlide 添加封面页：大标题居中加副标题
func (b *Builder) AddTitleSlide(title, subtitle string) {
	var sb strings.Builder
	sb.WriteString(b.slidePrefix())
	sb.WriteString(textBox(2, "Title",
		emu(0.9), emu(2.3), emu(10.5), emu(1.6),
		[]para{{text: title, size: 4400, bold: true, color: b.theme.TitleColor, font: b.theme.HeadingFont}}))
	sb.WriteString(shapeRect(3, "Accent Bar", emu(0.9), emu(4.05), emu(2.8), emu(0.1), b.theme.Accent))
	if subtitle != "" {
		sb.WriteString(textBox(4, "Subtitle",
			emu(0.9), emu(4.4), emu(10.5), emu(0.9),
			[]para{{text: subtitle, size: 2000, color: b.theme.SubtitleColor, font: b.theme.BodyFont}}))
	}
	sb.WriteString(b.slideSuffix())
	b.slides = append(b.slides, slide{xml: sb.String()})
}

// AddContentSlide 添加正文页：标题、项目符号列表，可选配图与备注。
// 图片仅接受 JPEG/PNG，解码失败时静默省略。
func (b *Builder) AddContentSlide(heading string, bullets []string, img *Image, notes string) {
	s := slide{notes: notes}

	if img != nil && len(img.Data) > 0 {
		if ext, w, h, ok := sniffImage(img.Data); ok {
			b.medias = append(b.medias, media{data: img.Data, ext: ext})
			s.imageIdx = len(b.medias)
			s.imageExt = ext
			s.xml = b.contentSlideXML(heading, bullets, s.imageIdx, img.Alt, w, h)
			b.slides = append(b.slides, s)
			return
		}
	}
	s.xml = b.contentSlideXML(heading, bullets, 0, "", 0, 0)
	b.slides = append(b.slides, s)
}

// AddQuizSlide 添加测验页：问题加四个选项，正确项以对勾和强调色标出
func (b *Builder) AddQuizSlide(question string, options []string, correctIndex int) {
	var sb strings.Builder
	sb.WriteString(b.slidePrefix())
	sb.WriteString(textBox(2, "Title",
		emu(0.6), emu(0.3), emu(11.8), emu(1.0),
		[]para{{text: "Quick Check", size: 3400, bold: true, color: b.theme.TitleColor, font: b.theme.HeadingFont}}))
	sb.WriteString(shapeRect(3, "Accent Bar", emu(0.6), emu(1.25), emu(2.5), emu(0.08), b.theme.Accent))

	paras := []para{{text: question, size: 2200, bold: true, color: b.theme.BodyColor, font: b.theme.BodyFont, spaceAfter: 1200}}
	for i, opt := range options {
		p := para{
			text:  fmt.Sprintf("%c. %s", 'A'+i, opt),
			size:  1800,
			color: b.theme.BodyColor,
			font:  b.theme.BodyFont,
		}
		if i == correctIndex {
			p.text = "✓ " + p.text
			p.bold = true
			p.color = b.theme.Accent
		}
		paras = append(paras, p)
	}
	sb.WriteString(textBox(4, "Body",
		emu(0.8), emu(1.7), emu(10.8), emu(4.8), paras))
	sb.WriteString(b.slideSuffix())
	b.slides = append(b.slides, slide{xml: sb.String()})
}

func (b *Builder) contentSlideXML(heading string, bullets []string, imageIdx int, alt string, imgW, imgH int) string {
	var sb strings.Builder
	sb.WriteString(b.slidePrefix())
	sb.WriteString(textBox(2, "Title",
		emu(0.6), emu(0.3), emu(11.8), emu(1.0),
		[]para{{text: heading, size: 3400, bold: true, color: b.theme.TitleColor, font: b.theme.HeadingFont}}))
	sb.WriteString(shapeRect(3, "Accent Bar", emu(0.6), emu(1.25), emu(2.5), emu(0.08), b.theme.Accent))

	bodyTop := 1.5
	if len(bullets) <= 3 {
		bodyTop = 2.1
	}
	bodyWidth := 11.6
	if imageIdx > 0 {
		bodyWidth = 6.1
	}
	var paras []para
	for _, bl := range bullets {
		paras = append(paras, para{
			text:       "• " + bl,
			size:       1800,
			color:      b.theme.BodyColor,
			font:       b.theme.BodyFont,
			spaceAfter: 900,
		})
	}
	sb.WriteString(textBox(4, "Body",
		emu(0.8), emu(bodyTop), emu(bodyWidth), emu(5.1), paras))

	if imageIdx > 0 {
		sb.WriteString(pictureXML(5, alt, imgW, imgH))
	}
	sb.WriteString(b.slideSuffix())
	return sb.String()
}

func (b *Builder) slidePrefix() string {
	return xmlHeader + `<p:sld ` + nsDecl + `>` +
		`<p:cSld>` +
		`<p:bg><p:bgPr><a:solidFill><a:srgbClr val="` + b.theme.Background + `"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>` +
		`<p:spTree>` +
		`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
		`<p:grpSpPr/>`
}

func (b *Builder) slideSuffix() string {
	return `</p:spTree></p:cSld>` +
		`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>` +
		`</p:sld>`
}

// para 文本框内的单个段落
type para struct {
	text       string
	size       int // 百分之一磅
	bold       bool
	color      string
	font       string
	spaceAfter int // 百分之一磅，0 表示不设
}

func textBox(id int, name string, x, y, w, h int64, paras []para) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`, id, xmlEscape(name))
	fmt.Fprintf(&sb, `<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:noFill/></p:spPr>`, x, y, w, h)
	sb.WriteString(`<p:txBody><a:bodyPr wrap="square" rtlCol="0"><a:normAutofit/></a:bodyPr><a:lstStyle/>`)
	for _, p := range paras {
		sb.WriteString(`<a:p>`)
		if p.spaceAfter > 0 {
			fmt.Fprintf(&sb, `<a:pPr><a:spcAft><a:spcPts val="%d"/></a:spcAft></a:pPr>`, p.spaceAfter)
		}
		bold := ""
		if p.bold {
			bold = ` b="1"`
		}
		fmt.Fprintf(&sb, `<a:r><a:rPr lang="en-US" sz="%d"%s dirty="0"><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:latin typeface="%s"/></a:rPr><a:t>%s</a:t></a:r>`,
			p.size, bold, p.color, xmlEscape(p.font), xmlEscape(p.text))
		sb.WriteString(`</a:p>`)
	}
	sb.WriteString(`</p:txBody></p:sp>`)
	return sb.String()
}

func shapeRect(id int, name string, x, y, w, h int64, fill string) string {
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>`+
		`<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`+
		`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom>`+
		`<a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:ln><a:noFill/></a:ln></p:spPr>`+
		`<p:txBody><a:bodyPr/><a:lstStyle/><a:p/></p:txBody></p:sp>`,
		id, xmlEscape(name), x, y, w, h, fill)
}

// pictureXML 按原始像素比例缩放图片以适配放置区域并居中
func pictureXML(id int, alt string, pxW, pxH int) string {
	w := int64(pxW) * emuPerPixel
	h := int64(pxH) * emuPerPixel
	if w > imageBoxW {
		h = h * imageBoxW / w
		w = imageBoxW
	}
	if h > imageBoxH {
		w = w * imageBoxH / h
		h = imageBoxH
	}
	x := imageBoxX + (imageBoxW-w)/2
	y := imageBoxY + (imageBoxH-h)/2
	return fmt.Sprintf(`<p:pic>`+
		`<p:nvPicPr><p:cNvPr id="%d" name="Picture" descr="%s"/><p:cNvPicPr><a:picLocks noChangeAspect="1"/></p:cNvPicPr><p:nvPr/></p:nvPicPr>`+
		`<p:blipFill><a:blip r:embed="rId2"/><a:stretch><a:fillRect/></a:stretch></p:blipFill>`+
		`<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`+
		`</p:pic>`,
		id, xmlEscape(alt), x, y, w, h)
}

// sniffImage 识别 JPEG/PNG 并读取像素尺寸，其余格式拒绝
func sniffImage(data []byte) (ext string, w, h int, ok bool) {
	switch http.DetectContentType(data) {
	case "image/jpeg":
		ext = "jpeg"
	case "image/png":
		ext = "png"
	default:
		return "", 0, 0, false
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return "", 0, 0, false
	}
	return ext, cfg.Width, cfg.Height, true
}

// Bytes 序列化为 PPTX（OPC zip 包）
func (b *Builder) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	var notesSlides []int
	var mediaExts []string
	for i, s := range b.slides {
		if s.notes != "" {
			notesSlides = append(notesSlides, i+1)
		}
		if s.imageIdx > 0 {
			mediaExts = append(mediaExts, s.imageExt)
		}
	}
	hasNotes := len(notesSlides) > 0
	created := b.now.Format("2006-01-02T15:04:05Z")

	parts := []struct {
		name string
		data string
	}{
		{"[Content_Types].xml", contentTypesXML(len(b.slides), notesSlides, mediaExts)},
		{"_rels/.rels", rootRelsXML()},
		{"docProps/core.xml", corePropsXML(b.title, created)},
		{"docProps/app.xml", appPropsXML(len(b.slides))},
		{"ppt/presentation.xml", presentationXML(len(b.slides), hasNotes)},
		{"ppt/_rels/presentation.xml.rels", presentationRelsXML(len(b.slides), hasNotes)},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML(b.theme)},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsXML()},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayoutXML()},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRelsXML()},
		{"ppt/theme/theme1.xml", themeXML("Deck", b.theme)},
	}
	if hasNotes {
		parts = append(parts,
			struct{ name, data string }{"ppt/theme/theme2.xml", themeXML("Notes", b.theme)},
			struct{ name, data string }{"ppt/notesMasters/notesMaster1.xml", notesMasterXML()},
			struct{ name, data string }{"ppt/notesMasters/_rels/notesMaster1.xml.rels", notesMasterRelsXML()},
		)
	}

	for i, s := range b.slides {
		num := i + 1
		parts = append(parts, struct{ name, data string }{
			fmt.Sprintf("ppt/slides/slide%d.xml", num), s.xml,
		})

		var rels strings.Builder
		rels.WriteString(xmlHeader)
		rels.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
		rels.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>`)
		if s.imageIdx > 0 {
			fmt.Fprintf(&rels, `<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="../media/image%d.%s"/>`, s.imageIdx, s.imageExt)
		}
		if s.notes != "" {
			fmt.Fprintf(&rels, `<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesSlide" Target="../notesSlides/notesSlide%d.xml"/>`, num)
			parts = append(parts,
				struct{ name, data string }{fmt.Sprintf("ppt/notesSlides/notesSlide%d.xml", num), notesSlideXML(s.notes)},
				struct{ name, data string }{fmt.Sprintf("ppt/notesSlides/_rels/notesSlide%d.xml.rels", num), notesSlideRelsXML(num)},
			)
		}
		rels.WriteString(`</Relationships>`)
		parts = append(parts, struct{ name, data string }{
			fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", num), rels.String(),
		})
	}

	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, fmt.Errorf("create part %s: %w", p.name, err)
		}
		if _, err := w.Write([]byte(p.data)); err != nil {
			return nil, fmt.Errorf("write part %s: %w", p.name, err)
		}
	}
	for i, m := range b.medias {
		w, err := zw.Create(fmt.Sprintf("ppt/media/image%d.%s", i+1, m.ext))
		if err != nil {
			return nil, fmt.Errorf("create media %d: %w", i+1, err)
		}
		if _, err := w.Write(m.data); err != nil {
			return nil, fmt.Errorf("write media %d: %w", i+1, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize package: %w", err)
	}
	return buf.Bytes(), nil
}
