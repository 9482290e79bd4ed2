package pptx

import (
	"fmt"
	"strings"
)

// OOXML 命名空间声明，所有根元素共用
const nsDecl = `xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"`

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// 16:9 幻灯片尺寸 (EMU)
const (
	slideWidthEMU  = 12192000
	slideHeightEMU = 6858000
)

// emu 英寸转 EMU
func emu(inches float64) int64 {
	return int64(inches * 914400)
}

// xmlEscape 文本节点转义
func xmlEscape(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}

// contentTypesXML 生成 [Content_Types].xml
func contentTypesXML(slideCount int, notesSlides []int, mediaExts []string) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	seen := map[string]bool{}
	for _, ext := range mediaExts {
		if seen[ext] {
			continue
		}
		seen[ext] = true
		switch ext {
		case "jpeg":
			b.WriteString(`<Default Extension="jpeg" ContentType="image/jpeg"/>`)
		case "png":
			b.WriteString(`<Default Extension="png" ContentType="image/png"/>`)
		}
	}
	b.WriteString(`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`)
	for i := 1; i <= slideCount; i++ {
		fmt.Fprintf(&b, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i)
	}
	if len(notesSlides) > 0 {
		b.WriteString(`<Override PartName="/ppt/notesMasters/notesMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.notesMaster+xml"/>`)
		b.WriteString(`<Override PartName="/ppt/theme/theme2.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`)
		for _, i := range notesSlides {
			fmt.Fprintf(&b, `<Override PartName="/ppt/notesSlides/notesSlide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.notesSlide+xml"/>`, i)
		}
	}
	b.WriteString(`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>`)
	b.WriteString(`<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extendedproperties+xml"/>`)
	b.WriteString(`</Types>`)
	return b.String()
}

// rootRelsXML 包级 _rels/.rels
func rootRelsXML() string {
	return xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/>` +
		`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>` +
		`<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>` +
		`</Relationships>`
}

// corePropsXML docProps/core.xml
func corePropsXML(title, createdISO string) string {
	return xmlHeader + `<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">` +
		`<dc:title>` + xmlEscape(title) + `</dc:title>` +
		`<dcterms:created xsi:type="dcterms:W3CDTF">` + createdISO + `</dcterms:created>` +
		`<dcterms:modified xsi:type="dcterms:W3CDTF">` + createdISO + `</dcterms:modified>` +
		`</cp:coreProperties>`
}

// appPropsXML docProps/app.xml
func appPropsXML(slideCount int) string {
	return xmlHeader + `<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties" xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">` +
		`<Application>eduslide-api</Application>` +
		fmt.Sprintf(`<Slides>%d</Slides>`, slideCount) +
		`</Properties>`
}

// presentationXML ppt/presentation.xml
func presentationXML(slideCount int, hasNotes bool) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:presentation ` + nsDecl + `>`)
	b.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	if hasNotes {
		b.WriteString(`<p:notesMasterIdLst><p:notesMasterId r:id="rId2"/></p:notesMasterIdLst>`)
	}
	b.WriteString(`<p:sldIdLst>`)
	for i := 1; i <= slideCount; i++ {
		// rId 从 3 开始，1/2 留给 master/notesMaster
		fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, 255+i, i+2)
	}
	b.WriteString(`</p:sldIdLst>`)
	fmt.Fprintf(&b, `<p:sldSz cx="%d" cy="%d"/>`, slideWidthEMU, slideHeightEMU)
	b.WriteString(`<p:notesSz cx="6858000" cy="9144000"/>`)
	b.WriteString(`</p:presentation>`)
	return b.String()
}

// presentationRelsXML ppt/_rels/presentation.xml.rels
func presentationRelsXML(slideCount int, hasNotes bool) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	b.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>`)
	if hasNotes {
		b.WriteString(`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesMaster" Target="notesMasters/notesMaster1.xml"/>`)
	}
	for i := 1; i <= slideCount; i++ {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`, i+2, i)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

// slideMasterXML ppt/slideMasters/slideMaster1.xml
func slideMasterXML(theme Theme) string {
	return xmlHeader + `<p:sldMaster ` + nsDecl + `>` +
		`<p:cSld>` +
		`<p:bg><p:bgPr><a:solidFill><a:srgbClr val="` + theme.Background + `"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>` +
		emptySpTree() +
		`</p:cSld>` +
		`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>` +
		`<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst>` +
		`<p:txStyles><p:titleStyle/><p:bodyStyle/><p:otherStyle/></p:txStyles>` +
		`</p:sldMaster>`
}

func slideMasterRelsXML() string {
	return xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>` +
		`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="../theme/theme1.xml"/>` +
		`</Relationships>`
}

// slideLayoutXML 单一空白版式；所有页面都用文本框自行排版
func slideLayoutXML() string {
	return xmlHeader + `<p:sldLayout ` + nsDecl + ` type="blank" preserve="1">` +
		`<p:cSld name="Blank">` + emptySpTree() + `</p:cSld>` +
		`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>` +
		`</p:sldLayout>`
}

func slideLayoutRelsXML() string {
	return xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="../slideMasters/slideMaster1.xml"/>` +
		`</Relationships>`
}

// notesMasterXML ppt/notesMasters/notesMaster1.xml
func notesMasterXML() string {
	return xmlHeader + `<p:notesMaster ` + nsDecl + `>` +
		`<p:cSld>` + emptySpTree() + `</p:cSld>` +
		`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>` +
		`</p:notesMaster>`
}

func notesMasterRelsXML() string {
	return xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="../theme/theme2.xml"/>` +
		`</Relationships>`
}

// notesSlideXML 备注页：正文占位符承载演讲者备注
func notesSlideXML(notes string) string {
	return xmlHeader + `<p:notes ` + nsDecl + `>` +
		`<p:cSld><p:spTree>` +
		`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
		`<p:grpSpPr/>` +
		`<p:sp>` +
		`<p:nvSpPr><p:cNvPr id="2" name="Notes Placeholder"/><p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr><p:ph type="body" idx="1"/></p:nvPr></p:nvSpPr>` +
		`<p:spPr/>` +
		`<p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:r><a:rPr lang="en-US" dirty="0"/><a:t>` + xmlEscape(notes) + `</a:t></a:r></a:p></p:txBody>` +
		`</p:sp>` +
		`</p:spTree></p:cSld>` +
		`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>` +
		`</p:notes>`
}

func notesSlideRelsXML(slideIndex int) string {
	return xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesMaster" Target="../notesMasters/notesMaster1.xml"/>` +
		fmt.Sprintf(`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="../slides/slide%d.xml"/>`, slideIndex) +
		`</Relationships>`
}

func emptySpTree() string {
	return `<p:spTree>` +
		`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
		`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>` +
		`</p:spTree>`
}

// themeXML DrawingML 主题 part。配色来自文档主题，字体区分标题/正文。
func themeXML(name string, theme Theme) string {
	clr := `<a:clrScheme name="` + name + `">` +
		`<a:dk1><a:srgbClr val="` + theme.TitleColor + `"/></a:dk1>` +
		`<a:lt1><a:srgbClr val="` + theme.Background + `"/></a:lt1>` +
		`<a:dk2><a:srgbClr val="` + theme.BodyColor + `"/></a:dk2>` +
		`<a:lt2><a:srgbClr val="` + theme.SubtitleColor + `"/></a:lt2>` +
		`<a:accent1><a:srgbClr val="` + theme.Accent + `"/></a:accent1>` +
		`<a:accent2><a:srgbClr val="` + theme.Accent + `"/></a:accent2>` +
		`<a:accent3><a:srgbClr val="` + theme.Accent + `"/></a:accent3>` +
		`<a:accent4><a:srgbClr val="` + theme.Accent + `"/></a:accent4>` +
		`<a:accent5><a:srgbClr val="` + theme.Accent + `"/></a:accent5>` +
		`<a:accent6><a:srgbClr val="` + theme.Accent + `"/></a:accent6>` +
		`<a:hlink><a:srgbClr val="` + theme.Accent + `"/></a:hlink>` +
		`<a:folHlink><a:srgbClr val="` + theme.SubtitleColor + `"/></a:folHlink>` +
		`</a:clrScheme>`

	fonts := `<a:fontScheme name="` + name + `">` +
		`<a:majorFont><a:latin typeface="` + theme.HeadingFont + `"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont>` +
		`<a:minorFont><a:latin typeface="` + theme.BodyFont + `"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont>` +
		`</a:fontScheme>`

	fill := `<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>`
	ln := `<a:ln w="6350" cap="flat" cmpd="sng" algn="ctr"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:prstDash val="solid"/></a:ln>`
	effect := `<a:effectStyle><a:effectLst/></a:effectStyle>`

	fmtScheme := `<a:fmtScheme name="` + name + `">` +
		`<a:fillStyleLst>` + fill + fill + fill + `</a:fillStyleLst>` +
		`<a:lnStyleLst>` + ln + ln + ln + `</a:lnStyleLst>` +
		`<a:effectStyleLst>` + effect + effect + effect + `</a:effectStyleLst>` +
		`<a:bgFillStyleLst>` + fill + fill + fill + `</a:bgFillStyleLst>` +
		`</a:fmtScheme>`

	return xmlHeader + `<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="` + name + `">` +
		`<a:themeElements>` + clr + fonts + fmtScheme + `</a:themeElements>` +
		`<a:objectDefaults/><a:extraClrSchemeLst/>` +
		`</a:theme>`
}
